package anubis

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/cache"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/resilience"
	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

// CircuitBreakerConfig guards the introspection endpoint.
type CircuitBreakerConfig = resilience.CircuitBreakerConfig

const (
	defaultPrincipalTTL = time.Minute
	maxResponseBytes    = 1 << 20
)

var errAnubisTransient = crerr.New("anubis transient failure")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client struct {
	httpClient    *http.Client
	introspectURL string
	adminKey      string
	breaker       *resilience.CircuitBreaker
	principals    *cache.Store
	logger        *logging.Logger
	breakerOpts   []resilience.BreakerOption
}

type Option func(*Client)

// WithPrincipalCache replaces the default one minute principal cache.
func WithPrincipalCache(store *cache.Store) Option {
	return func(c *Client) {
		if store != nil {
			c.principals = store
		}
	}
}

// WithBreakerOptions passes clock and listener options to the breaker built
// from the circuit config.
func WithBreakerOptions(opts ...resilience.BreakerOption) Option {
	return func(c *Client) {
		c.breakerOpts = append(c.breakerOpts, opts...)
	}
}

func NewClient(
	httpClient *http.Client,
	baseURL, introspectPath, adminKey string,
	breakerCfg CircuitBreakerConfig,
	logger *logging.Logger,
	opts ...Option,
) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	c := &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(baseURL, introspectPath),
		adminKey:      strings.TrimSpace(adminKey),
		principals:    cache.NewStore(defaultPrincipalTTL),
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = resilience.NewCircuitBreakerFromConfig(breakerCfg, c.breakerOpts...)
	return c
}

// VerifyAccessToken resolves a bearer token to its principal. Active tokens
// are cached by hash; rejected tokens are not.
func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	value, err := c.principals.GetOrLoad(ctx, hashToken(token), func(ctx context.Context) (any, error) {
		return c.introspectGuarded(ctx, token)
	})
	if err != nil {
		return user.Principal{}, err
	}

	principal, ok := value.(user.Principal)
	if !ok {
		return user.Principal{}, crerr.Newf("unexpected principal cache value %T", value)
	}
	return principal, nil
}

func (c *Client) introspectGuarded(ctx context.Context, token string) (user.Principal, error) {
	if c.breaker == nil {
		return c.introspect(ctx, token)
	}
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "anubis circuit open, rejecting introspection")
		return user.Principal{}, fmt.Errorf("%w: anubis: %w", usecase.ErrDependencyUnavailable, err)
	}

	principal, err := c.introspect(ctx, token)
	if isCircuitFailure(err) {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}
	return principal, err
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := json.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, transient(crerr.Wrap(err, "request introspection to anubis"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return user.Principal{}, transient(crerr.Wrap(err, "read introspect response"))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		// A forbidden introspection means our admin key was refused, not the
		// caller's token.
		c.logger.ErrorContext(ctx, "anubis rejected admin key", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: anubis rejected admin credentials", usecase.ErrDependencyUnavailable)
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnContext(ctx, "anubis introspection unavailable", "status_code", resp.StatusCode)
		return user.Principal{}, transient(crerr.Newf("anubis introspection failed with status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		c.logger.WarnContext(ctx, "anubis introspection non-200", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: anubis introspection status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	var decoded introspectResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, crerr.Wrap(err, "unmarshal introspect response"))
	}
	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: introspect response has empty user_id", usecase.ErrUnauthorized)
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
