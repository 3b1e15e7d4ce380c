package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"cgol/internal/app"
	"cgol/internal/bench"
	"cgol/internal/core"
)

func main() {
	cfg := app.NewConfig()
	seeds := 4
	steps := 500
	workers := runtime.NumCPU()
	engines := strings.Join(core.SimNames(), ",")

	err := app.ParseWith("life-bench", cfg, os.Args[1:], func(p *flaggy.Parser) {
		p.Description = "Runs every engine headless on several seeds and checks they agree"
		p.Int(&seeds, "n", "seeds", "Number of seeds, counted up from --seed")
		p.Int(&steps, "t", "steps", "Ticks per session")
		p.Int(&workers, "w", "workers", "Sessions run in parallel")
		p.String(&engines, "E", "engines", "Comma separated engines to compare")
	})
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	opts := bench.Options{
		Engines: strings.Split(engines, ","),
		Steps:   steps,
		Workers: workers,
		Config:  cfg.Life(),
	}
	for i := 0; i < seeds; i++ {
		opts.Seeds = append(opts.Seeds, cfg.Seed+int64(i))
	}

	fmt.Printf("Running %d engines x %d seeds on %dx%d (%d steps, %d workers)\n",
		len(opts.Engines), seeds, cfg.Width, cfg.Height, steps, workers)

	start := time.Now()
	results, err := bench.Run(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}

	failed := 0
	for _, a := range bench.Compare(results) {
		verdict := aurora.Green("agree").String()
		if !a.Agree {
			verdict = aurora.Red("DIFFER").Bold().String()
			failed++
		}
		fmt.Printf("seed %d: %s\n", a.Seed, verdict)
		for _, r := range a.Results {
			fmt.Printf("  %-6s gen=%d pop=%d changes=%d hash=%016x %s\n",
				aurora.Cyan(r.Engine), r.Generations, r.Population, r.Changes, r.Hash, r.Elapsed.Round(time.Microsecond))
		}
	}
	fmt.Printf("Finished in %s\n", time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}
