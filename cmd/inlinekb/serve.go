package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/lojasmm/inlinekb/internal/bot"
	"github.com/lojasmm/inlinekb/internal/config"
	"github.com/lojasmm/inlinekb/internal/session"
	"github.com/lojasmm/inlinekb/internal/store"
	"github.com/lojasmm/inlinekb/internal/telegram"
	"github.com/lojasmm/inlinekb/widget"
)

func serveCmd() *cobra.Command {
	var skipWebhook bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Telegram webhook",
		Long: `serve reads its settings from the environment (or a .env file):
  TELEGRAM_BOT_TOKEN  bot token (required)
  WEBHOOK_SECRET      secret token Telegram echoes back (generated if empty)
  BASE_URL            public address of this server
  PORT                listen port, default 8080
  DATA_DIR            directory of inlinekb.db, default .
  STYLES_FILE         YAML or TOML widget style overrides
  TELEGRAM_API_URL    Bot API address, default https://api.telegram.org`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return serve(cmd.Context(), cfg, !skipWebhook)
		},
	}
	cmd.Flags().BoolVar(&skipWebhook, "no-set-webhook", false, "do not register the webhook URL with Telegram")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, registerWebhook bool) error {
	styles := widget.DefaultStyles()
	if cfg.StylesFile != "" {
		var err error
		if styles, err = widget.LoadStyles(cfg.StylesFile); err != nil {
			return fmt.Errorf("styles: %w", err)
		}
	}

	db, err := store.NewBoltStore(filepath.Join(cfg.DataDir, "inlinekb.db"))
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer db.Close()

	tg := telegram.NewClient(cfg.TelegramAPI, cfg.BotToken)
	sessionMgr := session.NewManager()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := sessionMgr.Cleanup(1 * time.Hour); n > 0 {
					log.Printf("inlinekb: dropped %d idle chat locks", n)
				}
			}
		}
	}()

	botHandler := bot.NewHandler(tg, db, sessionMgr, styles)
	webhookHandler := telegram.NewWebhookHandler(cfg.WebhookSecret, botHandler.HandleMessage, botHandler.HandleCallback)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Post("/webhook", webhookHandler.HandleIncoming)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("inlinekb: listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	if registerWebhook {
		if err := tg.SetWebhook(ctx, cfg.WebhookURL(), cfg.WebhookSecret); err != nil {
			log.Printf("inlinekb: registering webhook: %v", err)
		} else {
			log.Printf("inlinekb: webhook set to %s", cfg.WebhookURL())
		}
	}

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}
	log.Println("inlinekb: shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("inlinekb: stopped")
	return nil
}
