package engine

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/nuts-foundation/nuts-provider-registry/api"
	"github.com/nuts-foundation/nuts-provider-registry/logging"
	"github.com/nuts-foundation/nuts-provider-registry/pkg"
	errors2 "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// newEchoServer creates the echo server serving the metrics and the given routes.
func newEchoServer(routes func(router api.EchoRouter)) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.INFO)

	metrics, err := api.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return nil, errors2.Wrap(err, "unable to register metrics")
	}
	metrics.Register(e)
	routes(e)
	return e, nil
}

func serverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Run the provider registry REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signals := make(chan os.Signal, 1)
			signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(signals)

			return runServer(newEngine(pkg.RegistryInstance()), signals)
		},
	}
}

// runServer configures and starts the engine and serves its routes until stop receives a signal.
func runServer(engine *Engine, stop <-chan os.Signal) error {
	if err := engine.Configure(); err != nil {
		return err
	}
	if err := engine.Start(); err != nil {
		return err
	}
	defer func() {
		if err := engine.Shutdown(); err != nil {
			logging.Log().Errorf("Unable to shut down provider registry: %v", err)
		}
	}()

	e, err := newEchoServer(engine.Routes)
	if err != nil {
		return err
	}

	address := engine.Config.Address
	errs := make(chan error, 1)
	go func() {
		logging.Log().Infof("Starting provider registry on %s, providers are exposed under %s", address, engine.Config.GetRootURL())
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return err
	case <-stop:
		logging.Log().Info("Shutting down provider registry")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(ctx)
}
