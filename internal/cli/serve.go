package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxgrid/pkg/box"
	boxerrors "github.com/matzehuels/boxgrid/pkg/errors"
	boxio "github.com/matzehuels/boxgrid/pkg/io"
)

// newServeCmd creates the serve command, exposing the renderer as a small
// HTTP service. POST a JSON layout document to /v1/render and the response
// body is the rendered text grid.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the renderer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// runServe runs the HTTP server until ctx is cancelled, then shuts down
// gracefully with a short drain timeout.
func runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: newRouter(logger),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Infof("Listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newRouter builds the HTTP routes.
func newRouter(logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", handleHealth)
	r.Post("/v1/render", handleRender(logger))
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// apiError is the JSON error body for failed requests.
type apiError struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// handleRender decodes a layout document from the request body, builds and
// renders it, and responds with the plain-text grid. Every request gets a
// UUID that ties response headers to log lines.
func handleRender(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		reqID := uuid.NewString()
		start := time.Now()
		w.Header().Set("X-Request-Id", reqID)

		doc, err := boxio.ReadJSON(req.Body)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, err)
			logger.Warnf("%s render failed: %v", reqID, err)
			return
		}

		b, err := doc.Box()
		if err != nil {
			writeAPIError(w, http.StatusUnprocessableEntity, err)
			logger.Warnf("%s render failed: %v", reqID, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := box.Fprint(w, b); err != nil {
			logger.Warnf("%s write failed: %v", reqID, err)
			return
		}
		logger.Infof("%s rendered %dx%d (%s)", reqID, b.Rows(), b.Cols(),
			time.Since(start).Round(time.Millisecond))
	}
}

// writeAPIError sends a structured JSON error with the given status.
func writeAPIError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiError{
		Code:  string(boxerrors.GetCode(err)),
		Error: boxerrors.UserMessage(err),
	})
}
