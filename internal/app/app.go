package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avstrong/hotelrates/internal/config"
	"github.com/avstrong/hotelrates/internal/inquiry"
	"github.com/avstrong/hotelrates/internal/logger"
	"github.com/avstrong/hotelrates/internal/transport/web"
)

func Run(l *logger.Logger, cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	rates, err := config.LoadRates(cfg.RatesFile)
	if err != nil {
		return fmt.Errorf("load rate card: %w", err)
	}

	l.LogInfo("Rate card loaded with %d room types", len(rates.RoomTypes()))

	responder, err := inquiry.New(l, rates)
	if err != nil {
		return fmt.Errorf("init responder: %w", err)
	}

	serverLogger, err := l.StdLogger()
	if err != nil {
		return fmt.Errorf("init http server logger: %w", err)
	}

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      serverLogger,
		Host:              cfg.HTTPHost,
		Port:              cfg.HTTPPort,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		LivenessEndpoint:  cfg.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, responder, rates)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
