package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type markConfig struct {
	*rootConfig
}

var markEntropy = ulid.DefaultEntropy()

func (cfg *markConfig) Exec(ctx context.Context, args []string) error {
	w, site, err := cfg.target("mark")
	if err != nil {
		return err
	}

	id := ulid.MustNew(ulid.Timestamp(time.Now()), markEntropy)

	message := "mark " + id.String()
	if len(args) > 0 {
		message += " " + strings.Join(args, " ")
	}

	cfg.tracer.Fprintf(w, site, "%s", message)
	fmt.Fprintln(cfg.stdout, id.String())
	return nil
}
