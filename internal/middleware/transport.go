package middleware

import (
	"log/slog"
	"net/http"

	"pwgen/internal/domain"
)

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip calls f(req).
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Header sets key to value on every outgoing request. The caller's request
// is cloned, never mutated.
func Header(key, value string, next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		r := req.Clone(req.Context())
		r.Header.Set(key, value)
		return next.RoundTrip(r)
	})
}

// Padding asks the range API to pad its response with fake zero-count
// records so the response size does not leak the prefix.
func Padding(next http.RoundTripper) http.RoundTripper {
	return Header("Add-Padding", "true", next)
}

// UserAgent identifies the client to the remote service.
func UserAgent(agent string, next http.RoundTripper) http.RoundTripper {
	return Header("User-Agent", agent, next)
}

// Timing logs the duration and outcome of every request at debug level.
// Only the URL path is logged.
func Timing(logger *slog.Logger, clock domain.Clock, next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		start := clock.Now()
		resp, err := next.RoundTrip(req)
		elapsed := domain.Since(clock, start)

		if err != nil {
			logger.Debug("breach request failed",
				"path", req.URL.Path,
				"duration", elapsed,
				"error", err)
			return nil, err
		}

		logger.Debug("breach request",
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"duration", elapsed)
		return resp, nil
	})
}
