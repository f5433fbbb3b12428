package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"sandmaker/internal/core"
	"sandmaker/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type runResult struct {
	seed    int64
	ticks   int
	elapsed time.Duration
	counts  map[sand.Kind]int
	dump    string
}

func main() {
	simName := flag.String("sim", sand.SimName, "registered simulation to run ("+strings.Join(core.SimNames(), ", ")+")")
	steps := flag.Int("steps", 1000, "ticks to simulate per run")
	width := flag.Int("w", 150, "grid width")
	height := flag.Int("h", 150, "grid height")
	seed := flag.Int64("seed", 1, "seed of the first run")
	runs := flag.Int("runs", 1, "number of runs, seeded seed, seed+1, ...")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	terrain := flag.Bool("terrain", true, "seed generated terrain before running")
	pour := flag.Int("pour", 25, "paint water and acid every N ticks; 0 disables")
	dump := flag.Bool("dump", false, "print the final grid of each run")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	var overrides kvList
	flag.Var(&overrides, "set", "engine parameter override in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{
		"w":       strconv.Itoa(*width),
		"h":       strconv.Itoa(*height),
		"terrain": strconv.FormatBool(*terrain),
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "ignoring override %q: expected key=value\n", kv)
			continue
		}
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	logger := core.NewLogger(*logLevel, os.Stderr)

	results := make([]runResult, *runs)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < max(*workers, 1); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				runOpts := maps.Clone(opts)
				runOpts["seed"] = strconv.FormatInt(*seed+int64(i), 10)
				res, err := run(*simName, runOpts, *steps, *pour, *dump, logger)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				results[i] = res
			}
		}()
	}
	for i := 0; i < *runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var total time.Duration
	totalTicks := 0
	for _, r := range results {
		total += r.elapsed
		totalTicks += r.ticks
		fmt.Printf("seed %d: %d ticks in %v (%.0f ticks/s)\n", r.seed, r.ticks, r.elapsed.Round(time.Millisecond), perSecond(r.ticks, r.elapsed))
		for _, k := range sand.Kinds() {
			fmt.Printf("  %-8s %d\n", k, r.counts[k])
		}
		if *dump {
			fmt.Print(r.dump)
		}
	}
	if *runs > 1 {
		fmt.Printf("\nTotal: %d ticks in %v of run time (%.0f ticks/s per run)\n", totalTicks, total.Round(time.Millisecond), perSecond(totalTicks, total))
	}
}

func run(name string, opts map[string]string, steps, pour int, dump bool, logger core.Logger) (runResult, error) {
	sim, err := core.New(name, opts)
	if err != nil {
		return runResult{}, err
	}
	world, ok := sim.(*sand.World)
	if !ok {
		return runResult{}, fmt.Errorf("sim %q is a %T, not a sandbox", name, sim)
	}
	world.SetLogger(logger)
	size := world.Size()

	start := time.Now()
	for t := 0; t < steps; t++ {
		if pour > 0 && t%pour == 0 {
			x := 1 + (t/pour*7)%max(size.W-2, 1)
			world.Paint(x, 2, sand.Water, 2)
			world.Paint(size.W-1-x, 2, sand.Acid, 1)
		}
		world.Step()
	}
	elapsed := time.Since(start)

	res := runResult{
		seed:    world.Config().Seed,
		ticks:   steps,
		elapsed: elapsed,
		counts:  make(map[sand.Kind]int),
	}
	for _, k := range sand.Kinds() {
		res.counts[k] = world.Grid().Count(k)
	}
	if dump {
		res.dump = world.Dump()
	}
	return res, nil
}

func perSecond(ticks int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(ticks) / d.Seconds()
}
