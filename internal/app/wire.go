package app

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"lemmyopml/internal/credentials"
	"lemmyopml/internal/lemmy"
	exportsvc "lemmyopml/internal/services/export"
	subscribesvc "lemmyopml/internal/services/subscribe"
)

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	client := lemmy.New(cfg.Instance, httpClient)

	return &App{
		Client:      client,
		Credentials: credentials.Resolve(cfg.Password, cfg.PassFile),
		Export:      exportsvc.New(client, logger),
		Subscribe:   subscribesvc.New(client, logger, subscribesvc.WithDelay(cfg.SubscribeDelay)),
		Log:         logger,
	}, nil
}

// newLogger is silent unless --debug or --log-file asks for output.
func newLogger(cfg Config) (*log.Logger, error) {
	var w io.Writer = io.Discard
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	case cfg.Debug:
		w = os.Stderr
	}
	return log.New(w, "", log.LstdFlags), nil
}
