package engine

import (
	"crypto/rand"
	"fmt"

	"github.com/labstack/echo/v4"
	v1 "github.com/nuts-foundation/nuts-pades/api/v1"
	"github.com/nuts-foundation/nuts-pades/configuration"
	"github.com/nuts-foundation/nuts-pades/logging"
	"github.com/nuts-foundation/nuts-pades/pkg/eideasy"
	"github.com/nuts-foundation/nuts-pades/pkg/metrics"
	"github.com/nuts-foundation/nuts-pades/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is where the Prometheus metrics are served.
const MetricsPath = "/metrics"

const stateKeySize = 32

// Engine holds the components of the signing gateway and wires them to the HTTP routes.
type Engine struct {
	Config  configuration.Config
	Store   session.Store
	Metrics metrics.Recorder

	clientConfig eideasy.Config
	state        *session.StateSigner
	janitor      *session.Janitor
	gatherer     prometheus.Gatherer
}

// NewPAdESEngine creates an Engine from a validated config. Metrics are registered with registry.
func NewPAdESEngine(config configuration.Config, registry *prometheus.Registry) (*Engine, error) {
	stateKey := []byte(config.StateKey)
	if len(stateKey) == 0 {
		stateKey = make([]byte, stateKeySize)
		if _, err := rand.Read(stateKey); err != nil {
			return nil, fmt.Errorf("unable to generate state key: %w", err)
		}
		logging.Log().Info("No state key configured, generated one; redirects don't survive a restart")
	}

	clientConfig := ClientConfig(config)
	clientConfig.HTTPClient = clientConfig.NewHTTPClient()

	store := session.NewMemoryStore()
	return &Engine{
		Config:       config,
		Store:        store,
		Metrics:      metrics.NewPrometheusRecorderWithRegistry(registry),
		clientConfig: clientConfig,
		state:        session.NewStateSigner(stateKey, config.SessionTTL),
		janitor:      session.NewJanitor(store, config.SessionTTL),
		gatherer:     registry,
	}, nil
}

// ClientConfig converts the configuration to the settings of the eID Easy client.
func ClientConfig(config configuration.Config) eideasy.Config {
	return eideasy.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Sandbox:      config.Sandbox,
		BaseURL:      config.APIURL,
		Timeout:      config.Timeout,
		RetryMax:     config.RetryMax,
	}
}

// NewClient returns a new eID Easy client. Clients share the underlying HTTP client.
func (e *Engine) NewClient() eideasy.Client {
	return eideasy.NewClient(e.clientConfig)
}

// Routes registers the API and metrics routes.
func (e *Engine) Routes(router v1.EchoRouter) {
	v1.RegisterHandlers(router, v1.Wrapper{
		NewClient:       e.NewClient,
		Store:           e.Store,
		State:           e.state,
		Metrics:         e.Metrics,
		PublicURL:       e.Config.PublicURL,
		Language:        e.Config.Language,
		VerifyContainer: e.Config.VerifyContainer,
	})
	router.GET(MetricsPath, echo.WrapHandler(promhttp.HandlerFor(e.gatherer, promhttp.HandlerOpts{})))
}

// Start starts the background jobs.
func (e *Engine) Start() error {
	return e.janitor.Start()
}

// Shutdown stops the background jobs.
func (e *Engine) Shutdown() {
	e.janitor.Stop()
}
