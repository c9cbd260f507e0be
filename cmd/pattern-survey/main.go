package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"gridlife/internal/life"
	"gridlife/internal/seed"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"
)

type scenarioResult struct {
	pattern     string
	initial     int
	final       int
	peak        int
	generations int
	firstRepeat int
	period      int
}

func (r scenarioResult) String() string {
	cycle := "none"
	if r.period > 0 {
		cycle = fmt.Sprintf("period %d from gen %d", r.period, r.firstRepeat)
	}
	return fmt.Sprintf("%-12s start=%-4d end=%-4d peak=%-4d gens=%-4d cycle=%s",
		r.pattern, r.initial, r.final, r.peak, r.generations, cycle)
}

// runScenario seeds a fresh grid and steps it until steps generations pass or
// a previously seen state recurs.
func runScenario(ctx context.Context, cfg life.Config, name string, opts seed.Options, steps int) (scenarioResult, error) {
	res := scenarioResult{pattern: name}
	g, err := cfg.NewGrid()
	if err != nil {
		return res, err
	}
	if res.initial, err = seed.Apply(g, name, opts); err != nil {
		return res, err
	}
	res.peak = res.initial

	seen := map[string]int{g.Fingerprint(): 0}
	for gen := 1; gen <= steps; gen++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		g = life.Step(g)
		res.generations = gen
		res.peak = max(res.peak, g.Population())
		fp := g.Fingerprint()
		if prev, ok := seen[fp]; ok {
			res.firstRepeat = prev
			res.period = gen - prev
			break
		}
		seen[fp] = gen
	}
	res.final = g.Population()
	return res, nil
}

func survey(ctx context.Context, cfg life.Config, names []string, opts seed.Options, steps, workers int) ([]scenarioResult, error) {
	results := make([]scenarioResult, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, name := range names {
		eg.Go(func() error {
			res, err := runScenario(ctx, cfg, name, opts, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func main() {
	cfg := life.DefaultConfig()
	opts := seed.DefaultOptions()
	steps := 300
	workers := runtime.NumCPU()

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Rows, "r", "rows", "grid rows")
	flaggy.Int(&cfg.Cols, "c", "cols", "grid columns")
	flaggy.Int(&steps, "n", "steps", "generations to simulate per pattern")
	flaggy.Int(&workers, "w", "workers", "patterns simulated at once")
	flaggy.Int64(&opts.Seed, "s", "seed", "seed for the random pattern")
	flaggy.Float64(&opts.Density, "d", "density", "alive probability for the random pattern")
	flaggy.Parse()

	if workers <= 0 {
		workers = 1
	}

	names := seed.Names()
	log.Printf("Surveying %d patterns on %dx%d (%d workers, %d steps)", len(names), cfg.Rows, cfg.Cols, workers, steps)

	start := time.Now()
	results, err := survey(context.Background(), cfg, names, opts, steps, workers)
	if err != nil {
		log.Fatalf("survey: %v", err)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].peak > results[j].peak })
	for _, r := range results {
		fmt.Println(r)
	}
	log.Printf("Done in %v", time.Since(start).Round(time.Millisecond))
}
