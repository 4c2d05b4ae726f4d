// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/strukturalab/gofea/srv"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP analysis service",
		Long: `Start the HTTP analysis service. Configuration comes from the
environment (or a .env file): GOFEA_ADDR, GOFEA_CACHE, GOFEA_RATE,
GOFEA_BURST.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := srv.New(srv.LoadConfig())
			if err != nil {
				return err
			}

			done := make(chan os.Signal, 1)
			signal.Notify(done, os.Interrupt, syscall.SIGTERM)
			errc := make(chan error, 1)
			go func() {
				errc <- server.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if err != nil && err != http.ErrServerClosed {
					return err
				}
			case <-done:
				io.Pf("shutting down\n")
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return server.Shutdown(ctx)
			}
			return nil
		},
	}
	return cmd
}
