package stylegen

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plannerkit/pkg/cache"
	"github.com/matzehuels/plannerkit/pkg/observability"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// DefaultStyleTTL is how long a generated style stays cached.
const DefaultStyleTTL = 7 * 24 * time.Hour

const cacheKeyType = "style"

// Cached remembers the styles an inner generator produced per prompt.
// Empty prompts bypass the cache: "surprise me" must stay random.
type Cached struct {
	inner  Generator
	cache  cache.Cache
	keyer  cache.Keyer
	keyOpt cache.StyleKeyOpts
	ttl    time.Duration
	logger *log.Logger
}

// CachedOption configures a Cached generator.
type CachedOption func(*Cached)

// WithKeyer sets the key namespace.
func WithKeyer(k cache.Keyer) CachedOption {
	return func(c *Cached) { c.keyer = k }
}

// WithTTL sets the entry lifetime. Zero means no expiry.
func WithTTL(d time.Duration) CachedOption {
	return func(c *Cached) { c.ttl = d }
}

// WithModelKey folds the model parameters into the cache key so that
// changing them invalidates earlier answers.
func WithModelKey(model string, temperature float64, v style.Variant) CachedOption {
	return func(c *Cached) {
		c.keyOpt.Model = model
		c.keyOpt.Temperature = temperature
		c.keyOpt.Variant = v.String()
	}
}

// WithCachedLogger sets the logger.
func WithCachedLogger(l *log.Logger) CachedOption {
	return func(c *Cached) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCached wraps inner with c. A nil cache disables caching.
func NewCached(inner Generator, c cache.Cache, opts ...CachedOption) *Cached {
	if c == nil {
		c = cache.NewNullCache()
	}
	g := &Cached{
		inner:  inner,
		cache:  c,
		keyer:  cache.NewKeyer("plannerkit:"),
		keyOpt: cache.StyleKeyOpts{Model: Name(inner), Variant: style.VariantBundle.String()},
		ttl:    DefaultStyleTTL,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name implements Namer.
func (c *Cached) Name() string { return Name(c.inner) }

// Generate implements Generator.
func (c *Cached) Generate(ctx context.Context, prompt string) (style.Raw, error) {
	if strings.TrimSpace(prompt) == "" {
		return c.inner.Generate(ctx, prompt)
	}

	opts := c.keyOpt
	opts.Prompt = prompt
	key := c.keyer.StyleKey(opts)
	hooks := observability.Cache()

	data, hit, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("style cache read failed", "err", err)
	}
	if hit {
		if raw, err := style.Decode(data); err == nil {
			hooks.OnCacheHit(ctx, cacheKeyType)
			c.logger.Debug("style cache hit", "key", key)
			return raw, nil
		}
		c.logger.Warn("discarding corrupt cached style", "key", key)
		_ = c.cache.Delete(ctx, key)
	}
	hooks.OnCacheMiss(ctx, cacheKeyType)

	raw, err := c.inner.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if data, err := raw.Encode(); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Warn("style cache write failed", "err", err)
		} else {
			hooks.OnCacheSet(ctx, cacheKeyType, len(data))
		}
	}
	return raw, nil
}
