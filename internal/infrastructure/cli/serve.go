package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/preflighthq/preflight/internal/infrastructure/storage"
	"github.com/preflighthq/preflight/internal/infrastructure/watch"
	"github.com/preflighthq/preflight/pkg/application"
	"github.com/preflighthq/preflight/pkg/infrastructure/httpapi"
	"github.com/spf13/cobra"
)

// Flag variables for serve command
var (
	serveAddr   string
	serveRubric string
	serveWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP server",
	Long: `Run the analysis HTTP server.

Endpoints:
  POST /v1/analyze   Analyze a multipart submission package
  GET  /v1/rubric    List the active categories and questions
  GET  /health       Liveness probe

With --watch and --rubric, the rubric file is reloaded on change without
restarting the server. A reload that fails validation keeps the previous
rubric in place.

Examples:
  preflight serve --addr :8080
  preflight serve --rubric rubric.yaml --watch`,
	RunE: runServeCmd,
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	svc, err := loadAnalysisService(serveRubric)
	if err != nil {
		return err
	}

	server := httpapi.NewServer(serveAddr, svc)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatch {
		if serveRubric == "" {
			return fmt.Errorf("--watch requires --rubric")
		}
		watcher, err := watch.NewRubricWatcher(serveRubric, func() {
			reloaded, err := storage.NewRubricStore().Load(serveRubric)
			if err != nil {
				log.Printf("rubric reload skipped: %v", err)
				return
			}
			next, err := application.NewAnalysisService(reloaded)
			if err != nil {
				log.Printf("rubric reload skipped: %v", err)
				return
			}
			server.SetService(next)
			log.Printf("rubric reloaded from %s", serveRubric)
		})
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("rubric watcher stopped: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveRubric, "rubric", "", "Custom rubric YAML file")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload the rubric file on change")

	RootCmd.AddCommand(serveCmd)
}
