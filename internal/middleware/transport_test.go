package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pwgen/internal/domain"
	"pwgen/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadding_SetsHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Add-Padding")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &http.Client{Transport: middleware.Padding(http.DefaultTransport)}

	resp, err := client.Get(srv.URL + "/range/ABCDE")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "true", got)
}

func TestHeader_DoesNotMutateCallerRequest(t *testing.T) {
	var sent *http.Request
	rt := middleware.UserAgent("pwgen-test", middleware.RoundTripperFunc(
		func(req *http.Request) (*http.Response, error) {
			sent = req
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
		}))

	req := httptest.NewRequest(http.MethodGet, "http://example.invalid/range/ABCDE", nil)
	req.Header.Set("User-Agent", "original")

	_, err := rt.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, "pwgen-test", sent.Header.Get("User-Agent"))
	assert.Equal(t, "original", req.Header.Get("User-Agent"))
}

func TestTiming_LogsDurationAndStatus(t *testing.T) {
	clock := domain.NewMockClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clock.Advance(150 * time.Millisecond)
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	client := &http.Client{Transport: middleware.Timing(logger, clock, http.DefaultTransport)}

	resp, err := client.Get(srv.URL + "/range/ABCDE")
	require.NoError(t, err)
	resp.Body.Close()

	out := buf.String()
	assert.Contains(t, out, "path=/range/ABCDE")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "duration=150ms")
}

func TestTiming_PropagatesTransportError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	boom := errors.New("connection refused")

	rt := middleware.Timing(logger, domain.RealClock{}, middleware.RoundTripperFunc(
		func(*http.Request) (*http.Response, error) {
			return nil, boom
		}))

	req := httptest.NewRequest(http.MethodGet, "http://example.invalid/range/ABCDE", nil)
	_, err := rt.RoundTrip(req)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "breach request failed")
}
