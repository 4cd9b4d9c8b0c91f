// Package main запускает кассу кинотеатра: интерактивную сессию
// и, при настроенном адресе, HTTP API над тем же ядром.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BrettAtwell/Movie-theatre-project/internal/booking"
	"github.com/BrettAtwell/Movie-theatre-project/internal/catalog"
	"github.com/BrettAtwell/Movie-theatre-project/internal/cli"
	"github.com/BrettAtwell/Movie-theatre-project/internal/config"
	"github.com/BrettAtwell/Movie-theatre-project/internal/handler"
	"github.com/BrettAtwell/Movie-theatre-project/internal/ledger"
	"github.com/BrettAtwell/Movie-theatre-project/internal/middleware"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	cat, rowErrs, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		// Недоступный файл каталога не фатален: касса стартует с пустым
		// каталогом, фильмы можно добавить через меню управления.
		sugar.Warnw("catalog load failed, starting empty", "path", cfg.CatalogPath, "error", err.Error())
	}
	for _, rowErr := range rowErrs {
		sugar.Warnw("catalog row skipped", "error", rowErr.Error())
	}

	svc := booking.NewService(cat, ledger.New(), booking.DefaultSnacks())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Интерактивная сессия кассы; её завершение останавливает приложение
	session := cli.NewSession(os.Stdin, os.Stdout, svc, cfg.ReceiptPath, logger)
	g.Go(func() error {
		defer stop()
		return session.Run()
	})

	if cfg.RunAddress != "" {
		sessionMiddleware := middleware.NewSessionMiddleware("boxoffice-secret")
		h := handler.NewHandler(svc, logger, sessionMiddleware)

		server := &http.Server{
			Addr:    cfg.RunAddress,
			Handler: h.SetupRouter(),
		}

		// Запуск HTTP API
		g.Go(func() error {
			sugar.Infow("starting box office API", "addr", cfg.RunAddress)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})

		// Graceful shutdown при отмене контекста (сигнал, выход из сессии
		// или ошибка в другой горутине)
		g.Go(func() error {
			<-ctx.Done()
			sugar.Info("shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown error: %w", err)
			}
			sugar.Info("server stopped gracefully")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
