// Profiling:
// go build ./profile/pools
// ./pools -config kolam.toml
// go tool pprof -http=":8000" -nodefraction=0.001 ./pools mem.pprof

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/edwinsyarief/kolam"
	"github.com/edwinsyarief/kolam/internal/config"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	Items []int64
}

func (*comp2) AutoReset(c *comp2) {
	c.Items = c.Items[:0]
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			return err
		}
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	p := profile.Start(profileMode(cfg.Profile.Mode), profile.ProfilePath(cfg.Profile.Path), profile.NoShutdownHook, profile.Quiet)
	start := time.Now()
	slots, err := churn(cfg.Profile, log)
	p.Stop()
	if err != nil {
		return err
	}

	log.Info("profile finished",
		zap.String("mode", cfg.Profile.Mode),
		zap.Int("rounds", cfg.Profile.Rounds),
		zap.Int("iterations", cfg.Profile.Iterations),
		zap.Int("slots", slots),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// churn allocates, mutates, copies and recycles cfg.Slots slots per
// iteration. It returns the number of slots issued across all pools in the
// last round.
func churn(cfg config.ProfileConfig, log *zap.Logger) (int, error) {
	reg := kolam.NewRegistry(kolam.WithLogger(log))
	total := 0
	held := make([]int, cfg.Slots)
	for range cfg.Rounds {
		pools := kolam.NewPools(reg, kolam.WithDefaultCapacity(cfg.Capacity))
		p1, err := kolam.PoolOf[comp1](pools)
		if err != nil {
			return 0, err
		}
		p2, err := kolam.PoolOf[comp2](pools)
		if err != nil {
			return 0, err
		}
		for range cfg.Iterations {
			for i := range held {
				held[i] = p1.New()
				c := p1.Get(held[i])
				c.V += int64(i)
				c.W += c.V
				s := p2.New()
				items := &p2.Get(s).Items
				*items = append(*items, c.W)
				p2.Recycle(s)
			}
			if len(held) > 1 {
				p1.Copy(held[0], held[len(held)-1])
			}
			for _, idx := range held {
				pools.Recycle(p1.Identity().ID, idx)
			}
		}
		total = 0
		pools.Each(func(v kolam.View) { total += v.Len() })
	}
	return total, nil
}

func profileMode(mode string) func(*profile.Profile) {
	switch mode {
	case "cpu":
		return profile.CPUProfile
	case "mem":
		return profile.MemProfile
	default:
		return profile.MemProfileAllocs
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
