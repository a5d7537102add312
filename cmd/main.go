package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/maidvally/backoffice/internal/api"
	"github.com/maidvally/backoffice/internal/clients/invoicing"
	"github.com/maidvally/backoffice/internal/clients/mailer"
	"github.com/maidvally/backoffice/internal/repository"
	"github.com/maidvally/backoffice/internal/service"
	"github.com/maidvally/backoffice/pkg/config"
	"github.com/maidvally/backoffice/pkg/job"
	"github.com/maidvally/backoffice/pkg/logger"
	"github.com/maidvally/backoffice/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	mailClient := mailer.New(mailer.Config{
		Host:     cfg.Mailer.Host,
		Port:     cfg.Mailer.Port,
		Login:    cfg.Mailer.Login,
		Password: cfg.Mailer.Password,
		From:     cfg.Mailer.From,
		FromName: cfg.Mailer.FromName,
	})

	invoicingClient := invoicing.NewClient(cfg.InvoicingURL)

	s := service.New(repo, mailClient, invoicingClient, service.Notifications{
		Enabled: cfg.Notifications.Enabled,
		Email:   cfg.Notifications.Email,
	})

	{
		job.NewService().
			RegisterJob("weekly payment reminder", job.Weekly(time.Monday, 9, 30), s.WeeklyReminder).
			RegisterJob("monthly payment reminder", job.Monthly(1, 9, 30), s.MonthlyReminder).
			RegisterJob("monthly business report", job.Monthly(1, 9, 30), s.MonthlyReport).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
