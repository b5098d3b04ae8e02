package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
)

type dumpConfig struct {
	*rootConfig

	caption string
	limit   int
}

func (cfg *dumpConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 'c', LongName: "caption", Value: ffval.NewValue(&cfg.caption), Usage: "caption, default is the path or stdin", Placeholder: "TEXT"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'n', LongName: "limit", Value: ffval.NewValueDefault(&cfg.limit, 4096), Usage: "maximum number of bytes to dump, 0 for no limit"})
}

func (cfg *dumpConfig) Exec(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("at most one path is allowed")
	}

	var (
		path    = "-"
		r       = cfg.stdin
		caption = "stdin"
	)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		path, r, caption = args[0], f, args[0]
	}
	if cfg.caption != "" {
		caption = cfg.caption
	}
	if cfg.limit > 0 {
		r = io.LimitReader(r, int64(cfg.limit))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	cfg.debug.Printf("read %d byte(s) from %s", len(data), path)

	w, site, err := cfg.target("dump")
	if err != nil {
		return err
	}

	cfg.tracer.FprintArray(w, site, caption, data)
	return nil
}
