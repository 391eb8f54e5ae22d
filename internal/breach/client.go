// Package breach checks candidate passwords against the Pwned Passwords
// corpus using k-anonymity range queries. Only the first five hex characters
// of the SHA-1 digest ever leave the process.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pwgen/internal/domain"
	"pwgen/internal/middleware"
)

const (
	// DefaultBaseURL is the range endpoint; the prefix is appended to it.
	DefaultBaseURL = "https://api.pwnedpasswords.com/range/"
	// DefaultTimeout bounds a single range query.
	DefaultTimeout = 10 * time.Second

	prefixLength = 5
	userAgent    = "pwgen"
)

// StatusError reports a non-2xx response from the range endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Client queries the range endpoint. A single Client reuses its connections
// across checks.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the range endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the HTTP client. The caller is then responsible
// for timeouts and the padding header.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request timing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a Client with an explicit timeout instead of
// http.DefaultClient.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.timeout,
			Transport: middleware.Padding(
				middleware.UserAgent(userAgent,
					middleware.Timing(c.logger, domain.RealClock{}, http.DefaultTransport))),
		}
	}

	return c
}

// Hash returns the upper case hex SHA-1 of candidate split into the
// five-character prefix and the remaining suffix.
func Hash(candidate string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(candidate))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:prefixLength], digest[prefixLength:]
}

// IsBreached reports whether candidate appears in the breach corpus with a
// non-zero count. Any failure to complete the query is returned wrapped in
// domain.ErrBreachService and must not be read as "not breached".
func (c *Client) IsBreached(ctx context.Context, candidate string) (bool, error) {
	prefix, suffix := Hash(candidate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+prefix, nil)
	if err != nil {
		return false, fmt.Errorf("%w: create request: %v", domain.ErrBreachService, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: execute request: %w", domain.ErrBreachService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, fmt.Errorf("%w: %w", domain.ErrBreachService, &StatusError{Code: resp.StatusCode})
	}

	found, err := matchSuffix(resp.Body, suffix)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrBreachService, err)
	}

	return found, nil
}

// matchSuffix scans SUFFIX:COUNT records and reports whether suffix is
// present with a count above zero. Padding records carry a zero count.
func matchSuffix(body io.Reader, suffix string) (bool, error) {
	scanner := bufio.NewScanner(body)
	found := false
	line := 0

	for scanner.Scan() {
		line++
		record := strings.TrimSpace(scanner.Text())
		if record == "" {
			continue
		}

		hashSuffix, countText, ok := strings.Cut(record, ":")
		if !ok {
			return false, fmt.Errorf("malformed record on line %d", line)
		}
		count, err := strconv.ParseInt(strings.TrimSpace(countText), 10, 64)
		if err != nil {
			return false, fmt.Errorf("malformed count on line %d: %w", line, err)
		}

		if count > 0 && strings.EqualFold(strings.TrimSpace(hashSuffix), suffix) {
			found = true
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	return found, nil
}
