// Package metrics provides Prometheus metrics for a desktop session.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Shell metrics
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deskterm_commands_total",
			Help: "Total number of submitted shell commands",
		},
		[]string{"verb", "status"},
	)

	// Window metrics
	windowEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deskterm_window_events_total",
			Help: "Total number of window lifecycle transitions",
		},
		[]string{"app", "event"},
	)

	windowsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deskterm_windows_open",
			Help: "Number of live window records",
		},
	)

	gesturesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deskterm_gestures_total",
			Help: "Total number of drag and resize gestures",
		},
		[]string{"kind"},
	)

	// Preference metrics
	prefsWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deskterm_prefs_write_errors_total",
			Help: "Total number of failed preference snapshot writes",
		},
	)
)

// UnknownVerb labels commands outside the shell vocabulary.
const UnknownVerb = "unknown"

// Handler returns the Prometheus metrics handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordCommand records one executed command.
func RecordCommand(verb string, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	commandsTotal.WithLabelValues(verb, status).Inc()
}

// RecordWindowEvent records a window transition such as "created" or "closed".
func RecordWindowEvent(app, event string) {
	windowEventsTotal.WithLabelValues(app, event).Inc()
}

// SetWindowsOpen sets the live window count.
func SetWindowsOpen(n int) {
	windowsOpen.Set(float64(n))
}

// RecordGesture records a started "drag" or "resize".
func RecordGesture(kind string) {
	gesturesTotal.WithLabelValues(kind).Inc()
}

// RecordPrefsWriteError records a failed preference write.
func RecordPrefsWriteError() {
	prefsWriteErrors.Inc()
}

// Serve exposes the handler at path on addr until ctx is done.
func Serve(ctx context.Context, addr, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
