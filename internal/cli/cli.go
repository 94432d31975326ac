package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/figwind/pkg/buildinfo"
	"github.com/matzehuels/figwind/pkg/cache"
	"github.com/matzehuels/figwind/pkg/errors"
	"github.com/matzehuels/figwind/pkg/pipeline"
	"github.com/matzehuels/figwind/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "figwind"

	// configEnv names a theme file used when --config is not given.
	configEnv = "FIGWIND_CONFIG"
	redisEnv  = "FIGWIND_REDIS_ADDR"
	mongoEnv  = "FIGWIND_MONGO_URI"
)

// Cache backends accepted by --cache.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendMongo = "mongo"
	backendNone  = "none"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	refresh    bool
	backend    string
	redisAddr  string
	mongoURI   string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		backend: backendFile,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Figwind turns CSS declarations into utility classes",
		Long: `Figwind translates CSS declarations into equivalent Tailwind-style utility
classes, sorts class lists into authoring order and merges per-breakpoint
class lists into responsive overrides. The class catalog is generated from
a theme, read from figwind.toml, figwind.yaml or figwind.json when present.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "theme file (default: $"+configEnv+" or figwind.{toml,yaml,yml,json} in the working directory)")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable caching")
	flags.BoolVar(&c.refresh, "refresh", false, "rebuild indices even when cached")
	flags.StringVar(&c.backend, "cache", backendFile, "cache backend: file, redis, mongo or none")
	flags.StringVar(&c.redisAddr, "redis-addr", envOr(redisEnv, "localhost:6379"), "redis address for --cache=redis (env $"+redisEnv+")")
	flags.StringVar(&c.mongoURI, "mongo-uri", envOr(mongoEnv, "mongodb://localhost:27017"), "mongodb URI for --cache=mongo (env $"+mongoEnv+")")

	root.AddCommand(c.translateCommand())
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.responsiveCommand())
	root.AddCommand(c.classesCommand())
	root.AddCommand(c.indexCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner over the selected cache backend.
// The caller must Close the runner.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	backend := c.backend
	if c.noCache {
		backend = backendNone
	}
	switch backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendFile, "":
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case backendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: c.redisAddr, Prefix: appName + ":"})
	case backendMongo:
		return cache.NewMongoCache(ctx, cache.MongoConfig{URI: c.mongoURI})
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (want file, redis, mongo or none)", backend)
	}
}

// session is a loaded theme with its indices.
type session struct {
	runner *pipeline.Runner
	ix     *pipeline.Indexes
	source string
}

func (s *session) Close() error {
	return s.runner.Close()
}

// open resolves the theme, connects the cache and loads the indices.
func (c *CLI) open(ctx context.Context) (*session, error) {
	th, source, err := c.loadTheme()
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("theme", "source", source)

	runner, err := c.newRunner(ctx)
	if err != nil {
		return nil, err
	}
	prog := newProgress(c.Logger)
	sp := newSpinner(ctx, "Loading indices")
	sp.Start()
	ix, err := runner.Load(ctx, th, pipeline.LoadOptions{Refresh: c.refresh})
	switch {
	case err != nil && sp.Cancelled():
		sp.Stop()
		runner.Close()
		return nil, ctx.Err()
	case err != nil:
		sp.StopWithError("Loading indices failed")
		runner.Close()
		return nil, err
	case ix.CacheInfo.IndexHit:
		sp.Stop()
	default:
		sp.StopWithSuccess(fmt.Sprintf("Indexed %d classes", ix.Stats.ClassCount))
	}
	c.Logger.Debug("indices loaded",
		"classes", ix.Stats.ClassCount,
		"index_cached", ix.CacheInfo.IndexHit,
		"rank_cached", ix.CacheInfo.RankHit,
		"elapsed", prog.elapsed())
	return &session{runner: runner, ix: ix, source: source}, nil
}

// loadTheme finds the theme: --config, then $FIGWIND_CONFIG, then a config
// file in the working directory, then the built-in default.
func (c *CLI) loadTheme() (*theme.Theme, string, error) {
	path := c.configPath
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path, _ = theme.Find(wd)
		}
	}
	if path == "" {
		return theme.Default(), "default", nil
	}
	th, err := theme.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("load theme: %w", err)
	}
	return th, path, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/figwind/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
