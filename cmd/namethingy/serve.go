package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
)

const (
	actionShutdown = "shutdown"
	actionRestart  = "restart"
)

func (a *app) serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Train on a corpus and serve generated names over HTTP",
		Flags: append(corpusFlags(),
			&cli.StringFlag{
				Name:  "addr",
				Usage: "address to listen on",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "names returned when a request gives no count",
			},
			&cli.IntFlag{
				Name:  "max-length",
				Usage: "default maximum name length, 0 for no limit",
			},
			&cli.IntFlag{
				Name:  "max-attempts",
				Usage: "generation attempts allowed per name",
			},
		),
		Action: a.serve,
	}
}

// serve runs the HTTP server until ctx is done or SIGINT/SIGTERM arrives.
// SIGHUP retrains the model from the same corpora and restarts the server.
func (a *app) serve(ctx context.Context, cmd *cli.Command) error {
	if err := a.config.applyFlags(cmd); err != nil {
		return err
	}

	actionChan := make(chan string, 1)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		for {
			select {
			case sig := <-signals:
				if sig == syscall.SIGHUP {
					a.logger.Info("SIGHUP received, scheduling restart.")
					sendAction(actionChan, actionRestart)
					continue
				}
				a.logger.Info("OS signal received, initiating shutdown.", "signal", sig.String())
				sendAction(actionChan, actionShutdown)
				return
			case <-ctx.Done():
				sendAction(actionChan, actionShutdown)
				return
			}
		}
	}()

	for {
		action, err := a.runServer(ctx, cmd, actionChan)
		if err != nil {
			return err
		}
		if action != actionRestart {
			break
		}
		a.logger.Info("--- Server Restarting ---")
	}
	a.logger.Info("namethingy server has shut down.")
	return nil
}

// sendAction queues action unless one is already pending.
func sendAction(actionChan chan<- string, action string) {
	select {
	case actionChan <- action:
	default:
	}
}

// runServer trains a fresh model, serves it, and returns the action that
// stopped it.
func (a *app) runServer(ctx context.Context, cmd *cli.Command, actionChan <-chan string) (string, error) {
	a.logger.Info("Starting server cycle...")
	model, summary, err := a.trainModel(ctx, cmd)
	if err != nil {
		return "", fmt.Errorf("failed to train model: %w", err)
	}
	a.logger.Info("Model trained", "words", summary.Words, "order", model.Order())

	api := NewNameAPI(model, a.config, a.logger)
	httpServer := &http.Server{
		Addr:              a.config.ServerAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
	}

	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("Starting api server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var action string
	select {
	case action = <-actionChan:
	case err = <-errChan:
		return "", fmt.Errorf("api server failed: %w", err)
	}

	a.logger.Info("Stopping server for " + action + "...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Api server shutdown failed", "error", err)
	}
	a.logger.Info("HTTP server stopped.")
	return action, nil
}
