package cli

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plannerkit/pkg/cache"
	"github.com/matzehuels/plannerkit/pkg/config"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/fonts"
	"github.com/matzehuels/plannerkit/pkg/history"
	"github.com/matzehuels/plannerkit/pkg/pages"
	"github.com/matzehuels/plannerkit/pkg/pipeline"
	"github.com/matzehuels/plannerkit/pkg/presets"
	"github.com/matzehuels/plannerkit/pkg/sink"
	"github.com/matzehuels/plannerkit/pkg/style"
	"github.com/matzehuels/plannerkit/pkg/stylegen"
)

// wireOpts adjusts how components are built for one command.
type wireOpts struct {
	noCache bool
	outDir  string

	// generator replaces the configured one, e.g. a preset.
	generator stylegen.Generator

	// variant selects the instruction sent to the AI model.
	variant style.Variant
}

// components are the backends opened for one command.
type components struct {
	cfg     *config.Config
	cache   cache.Cache
	history history.Store
	writer  *sink.Writer
	runner  *pipeline.Runner
}

// wire builds the pipeline from configuration. Close releases the cache
// and history connections.
func (c *CLI) wire(ctx context.Context, o wireOpts) (*components, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	comp := &components{cfg: cfg}

	if comp.cache, err = openCache(ctx, cfg.Cache, o.noCache); err != nil {
		return nil, err
	}
	if comp.history, err = openHistory(ctx, cfg.History); err != nil {
		_ = comp.cache.Close()
		return nil, err
	}

	gen := o.generator
	if gen == nil {
		if gen, err = newGenerator(cfg, comp.cache, o.variant, c.Logger); err != nil {
			_ = comp.Close()
			return nil, err
		}
	}

	dir := o.outDir
	if dir == "" {
		dir = cfg.Output.Dir
	}
	comp.writer = newWriter(dir, cfg.Output, c.Logger)
	comp.runner = pipeline.NewRunner(gen, comp.writer,
		pipeline.WithRenderer(newRenderer(cfg.Fonts, c.Logger)),
		pipeline.WithHistory(comp.history),
		pipeline.WithLogger(c.Logger),
	)
	return comp, nil
}

// Close releases backend connections.
func (comp *components) Close() error {
	return errors.Join(comp.cache.Close(), comp.history.Close())
}

func openCache(ctx context.Context, cfg config.CacheConfig, disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	switch cfg.Backend {
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeNetwork, err, "connect to redis at %s", cfg.RedisAddr)
		}
		return rc, nil
	case config.BackendFile:
		fc, err := cache.NewFileCache(cacheDir(cfg))
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "open style cache")
		}
		return fc, nil
	default:
		return cache.NewNullCache(), nil
	}
}

func cacheDir(cfg config.CacheConfig) string {
	if cfg.Dir != "" {
		return cfg.Dir
	}
	return config.CacheDir()
}

func openHistory(ctx context.Context, cfg config.HistoryConfig) (history.Store, error) {
	switch cfg.Backend {
	case config.BackendMongo:
		ms, err := history.NewMongoStore(ctx, history.MongoOptions{
			URI:        cfg.MongoURI,
			Database:   cfg.Database,
			Collection: cfg.Collection,
		})
		if err != nil {
			return nil, err
		}
		return ms, nil
	case config.BackendFile:
		fs, err := history.NewFileStore(cfg.Dir)
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "open history")
		}
		return fs, nil
	default:
		return history.NullStore{}, nil
	}
}

// newGenerator returns the configured style source. Without an API key it
// is the default preset; with one it is the cached OpenAI generator, which
// falls back to the default style when the API fails.
func newGenerator(cfg *config.Config, c cache.Cache, v style.Variant, logger *log.Logger) (stylegen.Generator, error) {
	fallback := defaultGenerator(v)
	if cfg.AI.APIKey == "" {
		logger.Warn("no OpenAI API key configured, every prompt gets the default style", "env", config.EnvAPIKey)
		return fallback, nil
	}

	ai, err := stylegen.NewOpenAI(cfg.AI.APIKey,
		stylegen.WithBaseURL(cfg.AI.BaseURL),
		stylegen.WithModel(cfg.AI.Model),
		stylegen.WithTemperature(cfg.AI.Temperature),
		stylegen.WithTimeout(cfg.AI.Timeout),
		stylegen.WithVariant(v),
		stylegen.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	cached := stylegen.NewCached(ai, c,
		stylegen.WithTTL(cfg.Cache.TTL),
		stylegen.WithModelKey(ai.Model(), ai.Temperature(), v),
		stylegen.WithCachedLogger(logger),
	)
	return stylegen.NewFallback(cached, fallback, stylegen.WithFallbackLogger(logger)), nil
}

func defaultGenerator(v style.Variant) stylegen.Generator {
	if v == style.VariantSingle {
		return stylegen.NewStatic("default", style.DefaultSingle.Raw())
	}
	p, err := presets.Get(presets.Default)
	if err != nil {
		return stylegen.NewStatic("default", style.DefaultBundle.Raw())
	}
	return p.Generator()
}

func newRenderer(cfg config.FontsConfig, logger *log.Logger) *pages.Renderer {
	return pages.New(
		pages.WithLogger(logger),
		pages.WithFontOptions(
			fonts.WithPath(cfg.Path),
			fonts.WithSystemFont(cfg.SystemFont),
			fonts.WithSystemLookup(cfg.SystemLookup),
			fonts.WithLogger(logger),
		),
	)
}

func newWriter(dir string, cfg config.OutputConfig, logger *log.Logger) *sink.Writer {
	return sink.NewWriter(dir,
		sink.WithPreviewWidth(cfg.PreviewWidth),
		sink.WithPagePNGs(cfg.PagePNGs),
		sink.WithWriterLogger(logger),
	)
}
