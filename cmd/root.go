// Package cmd implements the bettero CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bettero/internal/api"
	"bettero/internal/config"
	"bettero/internal/logging"
	"bettero/internal/session"
	"bettero/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagBaseURL string
	flagPage    int
	flagNoCache bool
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "bettero",
	Short: "Personal finance tracker CLI",
	Long:  "Track accounts, transactions, bills, budget plans, and stocks from your terminal.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Expense API base URL (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&flagPage, "page", "p", 1, "Page of the result list")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the local response cache")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose diagnostic logging")
}

// appEnv bundles the shared dependencies every command needs.
type appEnv struct {
	cfg    config.Config
	client *api.Client
	store  *store.Store
}

// Close releases the store. Loggers flush on process exit.
func (e *appEnv) Close() {
	if e.store != nil {
		_ = e.store.Close()
	}
}

// newAppEnv wires config, store, session, logger, and client together.
func newAppEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagBaseURL != "" {
		cfg.API.BaseURL = flagBaseURL
	}

	st, err := store.Open(config.StorePath())
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	sess, err := session.New(st)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("loading session: %w", err)
	}

	logger := logging.NewOrNop(config.LogPath(), flagDebug)

	opts := []api.Option{
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout()),
	}
	if !flagNoCache && !cfg.Cache.Disable {
		opts = append(opts, api.WithCache(st, cfg.Cache.MaxAge()))
	}

	return &appEnv{
		cfg:    cfg,
		client: api.New(cfg.API.BaseURL, sess, opts...),
		store:  st,
	}, nil
}

// requireAuth refreshes the access token before protected work. An expired
// pair sends the user back to `bettero login`.
func requireAuth(ctx context.Context, env *appEnv) error {
	if err := env.client.EnsureFresh(ctx); err != nil {
		if errors.Is(err, session.ErrUnauthenticated) {
			return errors.New("not logged in, run `bettero login` first")
		}
		return err
	}
	return nil
}
