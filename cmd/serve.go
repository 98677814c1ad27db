package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nuts-foundation/nuts-pades/api"
	"github.com/nuts-foundation/nuts-pades/engine"
	"github.com/nuts-foundation/nuts-pades/logging"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the signing gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.ValidateServer(); err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			e, err := engine.NewPAdESEngine(*config, registry)
			if err != nil {
				return err
			}
			server := api.New(api.Config{Address: config.Address})
			e.Routes(server.Router())

			if err := e.Start(); err != nil {
				return err
			}
			defer e.Shutdown()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			errs := make(chan error, 1)
			go func() {
				errs <- server.Start()
			}()

			select {
			case err := <-errs:
				return errors.Wrap(err, "http server stopped")
			case <-stop:
			}

			logging.Log().Info("Shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}
}
