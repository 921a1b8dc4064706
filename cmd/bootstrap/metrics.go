package bootstrap

import (
	"skipass-api/internal/handler/middleware"
	"skipass-api/internal/infra/metrics"
	"skipass-api/internal/infra/redisstore"
	"skipass-api/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		fx.Annotate(
			metrics.NewCollector,
			fx.As(new(commands.PassMetrics)),
			fx.As(new(redisstore.CacheMetrics)),
			fx.As(new(middleware.HTTPMetrics)),
		),
	),
)

// NewRegistry is private to the app; the global default registry is never used.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
