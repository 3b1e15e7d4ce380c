package core

// Stats summarises the most recent steps of a session.
type Stats struct {
	Generation        int
	Population        int
	Changed           int
	Frontier          int
	AveragePopulation float64
}

// Update records one step. The population average is an exponential moving
// average weighted 0.9/0.1.
func (s *Stats) Update(generation, population, changed, frontier int) {
	s.Generation = generation
	s.Population = population
	s.Changed = changed
	s.Frontier = frontier

	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
