package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/peterbourgon/badger"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
)

type profileConfig struct {
	*rootConfig

	interval time.Duration
	count    int
}

func (cfg *profileConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 'i', LongName: "interval", Value: ffval.NewValueDefault(&cfg.interval, time.Second), Usage: "time between ticks"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'n', LongName: "count", Value: ffval.NewValue(&cfg.count), Usage: "number of ticks, 0 to tick until interrupted"})
}

func (cfg *profileConfig) Exec(ctx context.Context, args []string) error {
	if cfg.interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}

	w, site, err := cfg.target("profile")
	if err != nil {
		return err
	}

	cfg.debug.Printf("interval %s, count %d", cfg.interval, cfg.count)

	stamp := cfg.tracer.FprofileStart(w, site, "%s", strings.Join(args, " "))

	var g run.Group

	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return cfg.tick(ctx, &stamp, w, site)
		}, func(error) {
			cancel()
		})
	}

	{
		g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	}

	err = g.Run()
	cfg.tracer.Fprofile(&stamp, w, site, "done")
	return err
}

// tick writes a profile tick every interval, until the count is reached or the
// context is canceled. Reaching the count is a normal exit.
func (cfg *profileConfig) tick(ctx context.Context, stamp *badger.Stamp, w io.Writer, site badger.CallSite) error {
	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	for n := 1; cfg.count <= 0 || n <= cfg.count; n++ {
		select {
		case <-ticker.C:
			cfg.tracer.Fprofile(stamp, w, site, "tick %d", n)
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}
