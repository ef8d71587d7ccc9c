package sts

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultRefreshWindow is how long before the hard expiry a credential is
// treated as expired, leaving time for a refresh round trip.
const DefaultRefreshWindow = 10 * time.Second

// Provider errors.
var (
	ErrNoValidProviders = errors.New("sts: no provider in the chain returned credentials")
	ErrNilExchanger     = errors.New("sts: exchanger cannot be nil")
)

// Value is the retrieved credential triple handed to signers.
type Value struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// IsExpired reports whether the credentials are within the refresh window
// of their expiry. Zero expiration means the credentials never expire.
func (c Credentials) IsExpired(window time.Duration) bool {
	if c.Expiration.IsZero() {
		return false
	}
	if window < 0 {
		window = DefaultRefreshWindow
	}
	return c.Expiration.Time().Add(-window).Before(time.Now().UTC())
}

// Value converts the wire credentials into the signer triple.
func (c Credentials) Value() Value {
	return Value{
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
	}
}

// Provider yields credentials on demand. Implementations are safe for
// concurrent use.
type Provider interface {
	Retrieve(ctx context.Context) (Value, error)
	IsExpired() bool
}

// Static is a Provider over fixed credentials. It never expires.
type Static struct {
	Value Value
}

// Retrieve returns the fixed credentials.
func (s Static) Retrieve(context.Context) (Value, error) { return s.Value, nil }

// IsExpired always reports false.
func (s Static) IsExpired() bool { return false }

// Chain tries each provider in order and sticks with the first one that
// succeeds until it expires.
type Chain struct {
	Providers []Provider

	mu      sync.Mutex
	current Provider
}

// Retrieve returns credentials from the current provider, falling through
// the chain when the current one is expired or unset.
func (c *Chain) Retrieve(ctx context.Context) (Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil && !c.current.IsExpired() {
		return c.current.Retrieve(ctx)
	}
	var errs []error
	for _, p := range c.Providers {
		v, err := p.Retrieve(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.current = p
		return v, nil
	}
	c.current = nil
	return Value{}, errors.Join(append([]error{ErrNoValidProviders}, errs...)...)
}

// IsExpired reports whether the chain needs to re-resolve a provider.
func (c *Chain) IsExpired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current == nil || c.current.IsExpired()
}

// Exchanger performs one credential exchange against the token service and
// returns the decoded credentials. Implementations live next to the
// transport, not here.
type Exchanger interface {
	Exchange(ctx context.Context) (Credentials, error)
}

// ExchangerFunc adapts a function to the Exchanger interface.
type ExchangerFunc func(ctx context.Context) (Credentials, error)

// Exchange calls the function.
func (f ExchangerFunc) Exchange(ctx context.Context) (Credentials, error) { return f(ctx) }

// Refreshing is a Provider that re-runs an Exchanger whenever the cached
// credentials enter the refresh window.
type Refreshing struct {
	exchanger Exchanger
	window    time.Duration

	mu     sync.Mutex
	cached Credentials
	valid  bool
}

// NewRefreshing builds a refreshing provider. window <= 0 selects
// DefaultRefreshWindow.
func NewRefreshing(exchanger Exchanger, window time.Duration) (*Refreshing, error) {
	if exchanger == nil {
		return nil, ErrNilExchanger
	}
	if window <= 0 {
		window = DefaultRefreshWindow
	}
	return &Refreshing{exchanger: exchanger, window: window}, nil
}

// Retrieve returns cached credentials, exchanging for new ones when
// expired.
func (r *Refreshing) Retrieve(ctx context.Context) (Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.valid && !r.cached.IsExpired(r.window) {
		return r.cached.Value(), nil
	}
	creds, err := r.exchanger.Exchange(ctx)
	if err != nil {
		return Value{}, err
	}
	r.cached = creds
	r.valid = true
	return creds.Value(), nil
}

// IsExpired reports whether the cached credentials need refreshing.
func (r *Refreshing) IsExpired() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.valid || r.cached.IsExpired(r.window)
}
