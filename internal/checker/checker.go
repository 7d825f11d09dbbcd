package checker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/settings-loader/internal/db"
	"github.com/BuzzLyutic/settings-loader/internal/dbconfig"
	"github.com/BuzzLyutic/settings-loader/internal/model"
)

// PingFunc verifies one configuration is reachable.
type PingFunc func(ctx context.Context, cfg dbconfig.Config) error

// Checker runs connectivity checks for configured aliases on a fixed-size
// worker pool. Failures are reported, never fatal.
type Checker struct {
	logger *zap.Logger
	count  int
	ping   PingFunc
}

func New(logger *zap.Logger, count int) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if count < 1 {
		count = 1
	}
	return &Checker{logger: logger, count: count, ping: db.Ping}
}

// WithPing overrides the PostgreSQL ping, used by tests.
func (c *Checker) WithPing(ping PingFunc) *Checker {
	c.ping = ping
	return c
}

type job struct {
	alias string
	cfg   dbconfig.Config
}

// Run checks every alias concurrently and returns one result per alias.
func (c *Checker) Run(ctx context.Context, configs map[string]dbconfig.Config) []model.CheckResult {
	jobs := make(chan job)
	results := make(chan model.CheckResult, len(configs))

	var wg sync.WaitGroup
	for i := 0; i < c.count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- c.check(ctx, j)
			}
		}()
	}

	for alias, cfg := range configs {
		jobs <- job{alias: alias, cfg: cfg}
	}
	close(jobs)
	wg.Wait()
	close(results)

	out := make([]model.CheckResult, 0, len(configs))
	for r := range results {
		if r.OK {
			c.logger.Info("database check passed",
				zap.String("alias", r.Alias), zap.String("engine", r.Engine))
		} else if r.Skipped {
			c.logger.Info("database check skipped",
				zap.String("alias", r.Alias), zap.String("engine", r.Engine))
		} else {
			c.logger.Warn("database check failed",
				zap.String("alias", r.Alias),
				zap.String("engine", r.Engine),
				zap.String("error", r.Error),
			)
		}
		out = append(out, r)
	}
	return out
}

func (c *Checker) check(ctx context.Context, j job) model.CheckResult {
	res := model.CheckResult{Alias: j.alias, Engine: j.cfg.Engine()}

	switch j.cfg.Engine() {
	case "postgresql":
		if err := c.ping(ctx, j.cfg); err != nil {
			res.Error = err.Error()
			return res
		}
		res.OK = true
	case "sqlite":
		if err := checkSQLitePath(j.cfg.Credentials().Name); err != nil {
			res.Error = err.Error()
			return res
		}
		res.OK = true
	default:
		// No driver wired in for this engine.
		res.Skipped = true
	}
	return res
}

func checkSQLitePath(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
