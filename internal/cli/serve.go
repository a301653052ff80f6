package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/karvel/fenestra/internal/server"
	"github.com/karvel/fenestra/pkg/kernel/sdfx"
	"github.com/karvel/fenestra/pkg/window"
)

// newServeCmd creates the serve command, which exposes the builders over
// HTTP until the context is cancelled.
func newServeCmd() *cobra.Command {
	addr := ":8080"
	minLightFactor := window.DefaultMinLightFactor

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the window builders over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			srv := server.New(sdfx.New(), window.Config{MinLightFactor: minLightFactor}, logger)
			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
				logger.Info("shutting down")
				shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := httpSrv.Shutdown(shutCtx); err != nil {
					return err
				}
				if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return cmd.Context().Err()
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	cmd.Flags().Float64Var(&minLightFactor, "min-light-factor", minLightFactor, "minimum glazed fraction before a window build aborts")
	return cmd
}
