package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts failed Redis commands by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sample_app_redis_errors_total",
	Help: "Total number of Redis command errors.",
}, []string{"command"})

// AuthFailures counts rejected authentication attempts by reason.
var AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sample_app_auth_failures_total",
	Help: "Total number of failed sign-in or token validation attempts.",
}, []string{"reason"})

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
