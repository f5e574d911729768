/*
 * Nuts provider registry
 * Copyright (C) 2020. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is the route the Prometheus metrics are served on.
const MetricsPath = "/metrics"

// Metrics counts the requests handled by the API.
type Metrics struct {
	requests *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

// NewMetrics creates the request counter and registers it with the given registry.
func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nuts",
		Subsystem: "provider_registry",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by method, route and status code.",
	}, []string{"method", "route", "code"})
	if err := registry.Register(requests); err != nil {
		return nil, err
	}
	return &Metrics{requests: requests, gatherer: registry}, nil
}

// Middleware counts every request passing through it.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			err := next(ctx)
			code := ctx.Response().Status
			if err != nil {
				code = http.StatusInternalServerError
				if httpErr, ok := err.(*echo.HTTPError); ok {
					code = httpErr.Code
				}
			}
			m.requests.WithLabelValues(ctx.Request().Method, ctx.Path(), strconv.Itoa(code)).Inc()
			return err
		}
	}
}

// Register adds the metrics route and middleware to the echo server.
func (m *Metrics) Register(e *echo.Echo) {
	e.Use(m.Middleware())
	e.GET(MetricsPath, echo.WrapHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})))
}
