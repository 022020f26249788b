package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mptlab/mpt/internal/api"
	"github.com/mptlab/mpt/internal/config"
	"github.com/mptlab/mpt/internal/eventlog"
	"github.com/mptlab/mpt/internal/provider"
	"github.com/mptlab/mpt/internal/session"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "mpt-gateway",
		Short: "Streaming gateway for guided MPT therapy sessions",
		Long:  `mpt-gateway serves the MPT session orchestration API: an 11-stage conversation machine, deterministic request classifiers, and a dual-provider streaming model gateway with rate-limit failover.`,
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP gateway",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}
			return run(cfg)
		},
	}
	serve.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	serve.Flags().StringVarP(&listenAddr, "listen", "l", "", "listen address (overrides config)")

	cmd.AddCommand(serve)
	return cmd
}

func run(cfg config.Config) error {
	store := session.NewInMemoryStore(cfg.SessionTTL)
	store.StartReaper(cfg.ReaperInterval)
	defer store.Stop()

	primary := provider.NewOpenAIBackend("primary", cfg.Primary.APIKey(), cfg.Primary.BaseURL, cfg.Primary.Model)

	var secondary provider.Backend
	if cfg.SecondaryConfigured() {
		secondary = provider.NewOpenAIBackend("secondary", cfg.Secondary.APIKey(), cfg.Secondary.BaseURL, cfg.Secondary.Model)
	} else {
		log.Printf("secondary provider not configured, fallback disabled")
	}

	gateway := provider.NewGateway(primary, secondary, cfg.FallbackRetryInterval)

	var events *eventlog.Logger
	if cfg.EventLogPath != "" {
		var err error
		events, err = eventlog.New(cfg.EventLogPath)
		if err != nil {
			return err
		}
	}

	handler := &api.Handler{Service: api.NewChatService(store, gateway, events)}

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("mpt-gateway listening on %s", cfg.ListenAddr)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
