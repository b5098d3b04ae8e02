package main

import (
	"context"
	"strings"
)

type traceConfig struct {
	*rootConfig
}

func (cfg *traceConfig) Exec(ctx context.Context, args []string) error {
	w, site, err := cfg.target("trace")
	if err != nil {
		return err
	}

	cfg.tracer.Fprintf(w, site, "%s", strings.Join(args, " "))
	return nil
}
