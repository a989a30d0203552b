// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package watch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
)

const (
	resultOK        = "ok"
	resultError     = "error"
	resultSuspended = "suspended"
)

var (
	refreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azd_attach_watch_refresh_total",
			Help: "Total number of watch refreshes by result",
		},
		[]string{"result"},
	)

	processesGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "azd_attach_watch_processes",
			Help: "Number of attach candidates in the latest successful refresh",
		},
	)

	changesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azd_attach_watch_changes_total",
			Help: "Processes that appeared or went away between refreshes",
		},
		[]string{"change"},
	)

	breakerStateGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "azd_attach_watch_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

func refreshResult(err error) string {
	if errors.Is(err, ErrSuspended) {
		return resultSuspended
	}
	return resultError
}

func recordBreakerState(state gobreaker.State) {
	var value float64
	switch state {
	case gobreaker.StateClosed:
		value = 0
	case gobreaker.StateHalfOpen:
		value = 1
	case gobreaker.StateOpen:
		value = 2
	}
	breakerStateGauge.Set(value)
}

// CreateMetricsServer creates an HTTP server exposing /metrics and /health.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// ServeMetrics serves metrics on port until ctx is canceled.
func ServeMetrics(ctx context.Context, port int) error {
	server := CreateMetricsServer(port)

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
