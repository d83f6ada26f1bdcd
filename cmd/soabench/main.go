// Command soabench simulates a simple particle workload on a soa world.
//
// Profiling:
//
//	go run ./cmd/soabench -config bench.toml -profile cpu
//	go tool pprof -http=":8000" cpu.pprof
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/oliverbestmann/soa/internal/bench"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "soabench: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a toml config file")
	profileMode := flag.String("profile", "", "Override profile.mode: none, cpu or mem")
	entities := flag.Int("entities", -1, "Override workload.entities")
	flag.Parse()

	cfg := bench.Defaults()

	if *configPath != "" {
		loaded, err := bench.Load(*configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if *profileMode != "" {
		cfg.Profile.Mode = *profileMode
	}

	if *entities >= 0 {
		cfg.Workload.Entities = *entities
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := bench.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	defer func() { _ = logger.Sync() }()

	switch cfg.Profile.Mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile.Path), profile.NoShutdownHook, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(cfg.Profile.Path), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	logger.Info("Starting workload",
		zap.Int("entities", cfg.Workload.Entities),
		zap.Int("frames", cfg.Workload.Frames),
		zap.Int("shapes", cfg.Workload.Shapes),
		zap.String("profile", cfg.Profile.Mode),
	)

	result := bench.Run(cfg.Workload, logger)

	var perFrame float64
	if result.Frames > 0 {
		perFrame = float64(result.Duration.Microseconds()) / float64(result.Frames)
	}

	logger.Info("Workload done",
		zap.Int("entities", result.Entities),
		zap.Int("blocks", result.Blocks),
		zap.Int("moving", result.Moving),
		zap.Duration("duration", result.Duration),
		zap.Float64("us_per_frame", perFrame),
		zap.Float64("checksum", result.Checksum),
	)

	return nil
}
