package sim

import (
	"time"

	"mazeglow/internal/config"
	"mazeglow/internal/maze"
)

// SweepResult describes one maze carved during a sweep.
type SweepResult struct {
	Seed    int64
	Origin  string
	Ticks   uint64
	Report  maze.Report
	Elapsed time.Duration
	Err     error
}

// Sweep carves one maze per seed, one after another, and reports each in
// seed order. A failing seed is recorded and the sweep moves on.
func Sweep(base config.Config, seeds []int64) []SweepResult {
	results := make([]SweepResult, 0, len(seeds))
	for _, seed := range seeds {
		results = append(results, carveSeed(base, seed))
	}
	return results
}

func carveSeed(base config.Config, seed int64) SweepResult {
	start := time.Now()
	cfg := base
	cfg.Seed = seed
	res := SweepResult{Seed: seed}
	b, err := NewBoard(cfg)
	if err != nil {
		res.Err = err
		return res
	}
	for b.Mode() == ModeCarving && res.Err == nil {
		res.Err = b.RunUntilIdle(1 << 16)
	}
	res.Origin = pointString(b.Seed())
	res.Ticks = b.Ticks()
	res.Report = maze.Analyze(b.Grid(), b.Seed())
	res.Elapsed = time.Since(start)
	return res
}
