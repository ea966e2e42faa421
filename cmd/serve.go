package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quizhive/quizgen/internal/config"
	"github.com/quizhive/quizgen/internal/llm"
	"github.com/quizhive/quizgen/internal/logging"
	"github.com/quizhive/quizgen/internal/quizgen"
	"github.com/quizhive/quizgen/internal/server"
	"github.com/quizhive/quizgen/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the question generation HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; the environment may be set directly.
		_ = godotenv.Load()

		cfg := config.FromEnv()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTPAddr = addr
		}
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			cfg.DBPath = p
		}

		log, err := logging.New(cfg.Development)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer log.Sync()

		s, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()
		events := s.Events()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// The service degrades to template-only generation when no model
		// backend can be configured; it never refuses to start over it.
		provider, err := llm.NewProviderFromEnv(ctx, events, log)
		if err != nil {
			log.Warn("model backend unavailable, serving template questions only", zap.Error(err))
			provider = nil
		} else {
			log.Info("model backend ready", zap.String("model", provider.ModelID()))
		}

		genCfg := quizgen.DefaultConfig()
		genCfg.Seed = cfg.Seed
		if cfg.OutputMode == "structured" {
			genCfg.OutputMode = quizgen.OutputStructured
		}

		pipeline := quizgen.NewPipeline(genCfg, provider, log)

		opts := server.Options{
			CORSOrigins:    cfg.CORSOrigins,
			RequestTimeout: cfg.RequestTimeout,
			Version:        version,
		}
		srv := server.New(pipeline, events, log, opts)

		httpSrv := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: srv.Handler(),
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("listening", zap.String("addr", cfg.HTTPAddr))
			errCh <- httpSrv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUIZGEN_HTTP_ADDR)")
}
