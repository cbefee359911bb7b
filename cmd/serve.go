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

	"github.com/me-yeatz/Beamsafe-Mypro/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the design engine over a JSON API",
	Long: `Serve the member design engine over a small JSON API.

Endpoints (all POST, JSON in/out):
  /api/beam        primary beam stage
  /api/column      column stage
  /api/footing     footing stage
  /api/groundbeam  ground beam stage
  /api/pipeline    full chained run

An incomplete input answers 422 with an idle marker; engineering
failures come back as UNSAFE verdicts in the result record.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := &http.Server{
		Addr:    serveAddr,
		Handler: server.New(params).Router(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", serveAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("server stopped")
	return nil
}
