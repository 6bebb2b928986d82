package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"regportal/internal/adapters/httpapi"
	"regportal/internal/application"
	"regportal/internal/config"
	"regportal/internal/infrastructure/database"
	"regportal/internal/infrastructure/i18n"
	"regportal/internal/infrastructure/notify"
	"regportal/internal/infrastructure/storage"
	"regportal/internal/ports/output"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the registration API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

func serve(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	files, err := storage.NewLocalStore(cfg.UploadDir, cfg.DownloadLinkTTL)
	if err != nil {
		return err
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	repo := database.NewRegistrationRepository(pool)

	var (
		notifier output.Notifier = notify.LogNotifier{}
		consumer *notify.Consumer
	)
	if cfg.NATSURL != "" {
		publisher, err := notify.NewPublisher(cfg.NATSURL)
		if err != nil {
			return err
		}
		defer publisher.Close()
		notifier = publisher

		var sinks []notify.Sink
		if cfg.SMTPHost != "" {
			mailer, err := notify.NewMailer(notify.MailerConfig{
				Host:     cfg.SMTPHost,
				Port:     cfg.SMTPPort,
				Username: cfg.SMTPUsername,
				Password: cfg.SMTPPassword,
				From:     cfg.MailFrom,
				Locale:   cfg.DefaultLocale,
			}, translator)
			if err != nil {
				return err
			}
			sinks = append(sinks, mailer)
		}
		if cfg.DiscordWebhookURL != "" {
			announcer, err := notify.NewDiscordAnnouncer(cfg.DiscordWebhookURL, cfg.DefaultLocale, translator)
			if err != nil {
				return err
			}
			sinks = append(sinks, announcer)
		}
		if len(sinks) > 0 {
			consumer = notify.NewConsumer(publisher.Conn(), sinks...)
		}
	}

	ledger := application.NewLedger(repo, notifier, catalog, cfg.CategoryCapacity)
	server := httpapi.NewServer(ledger, files, catalog, translator, cfg.AdminToken, cfg.DefaultLocale, cfg.CategoryCapacity)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("✅ Listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if consumer != nil {
		g.Go(func() error {
			return consumer.Start(ctx)
		})
	}

	return g.Wait()
}
