package commands

import (
	"time"

	"github.com/spf13/cobra"

	"lemmyopml/internal/app"
	"lemmyopml/internal/domain"
)

var (
	password string
	passFile string
	logFile  string
	debug    bool
	timeout  time.Duration
)

// Execute runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:          "lemmyopml",
		Short:        "Export and import Lemmy community subscriptions as OPML",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&password, "password", "", "password used to log in")
	root.PersistentFlags().StringVar(&passFile, "pass-file", "", "file containing the password used to log in (and nothing else)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "more verbose logging")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP request timeout (default 30s)")

	root.AddCommand(exportCmd(), importCmd())
	return root.Execute()
}

// buildApp loads file defaults, merges the persistent flags, and wires the
// dependency graph for one invocation.
func buildApp(instance, username string) (*app.App, app.Config, error) {
	cfg := app.Config{
		Instance: instance,
		Username: username,
		Password: password,
		PassFile: passFile,
		Timeout:  timeout,
		Debug:    debug,
		LogFile:  logFile,
	}

	var fc app.FileConfig
	if path, err := app.DefaultConfigPath(); err == nil {
		fc, err = app.LoadFileConfig(path)
		if err != nil {
			return nil, cfg, err
		}
	}
	cfg.ApplyDefaults(fc)

	a, err := app.NewWire(cfg)
	return a, cfg, err
}

// login resolves the password and exchanges it for a session token.
func login(a *app.App, username string) (domain.Token, error) {
	pw, err := a.Credentials.Password()
	if err != nil {
		return "", err
	}
	return a.Client.Login(username, pw)
}
