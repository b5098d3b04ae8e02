package main

import (
	"context"

	"github.com/fatih/color"
)

type pathConfig struct {
	*rootConfig
}

var pathColor = color.New(color.FgGreen)

func (cfg *pathConfig) Exec(ctx context.Context, args []string) error {
	path := cfg.tracer.DefaultTraceFilePath()
	_, err := pathColor.Fprintln(cfg.stdout, path)
	return err
}
