// Package app wires the transformation engine together: configuration,
// logging, the handler registry, Lua plugins, and an optional watcher
// that reloads configuration when the file changes. Front ends hold an
// App and apply actions against a host.
package app

import (
	"io"
	"sync"

	"github.com/dshills/textmorph/internal/config"
	"github.com/dshills/textmorph/internal/config/watcher"
	"github.com/dshills/textmorph/internal/host"
	"github.com/dshills/textmorph/internal/plugin/lua"
	"github.com/dshills/textmorph/internal/transform"
	"github.com/dshills/textmorph/internal/transform/fence"
	"github.com/dshills/textmorph/internal/transform/list"
	"github.com/dshills/textmorph/internal/transform/table"
	"github.com/dshills/textmorph/internal/transform/toggle"
	"github.com/dshills/textmorph/internal/transform/wrap"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// defaults plus environment overrides.
	ConfigPath string

	// PluginDir overrides the configured Lua plugin directory.
	PluginDir string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogOutput is where logs are written. Defaults to os.Stderr.
	LogOutput io.Writer

	// Watch reloads configuration when the file changes.
	Watch bool
}

// App is the assembled engine: configuration, registry and plugins.
type App struct {
	mu       sync.RWMutex
	cfg      config.Config
	registry *transform.Registry

	logger  *Logger
	luaHost *lua.Host
	watcher *watcher.Watcher
	opts    Options
}

// New creates an application. Configuration load failures are fatal;
// a missing plugin directory is not.
func New(opts Options) (*App, error) {
	a := &App{
		opts:   opts,
		logger: NewLogger(ParseLogLevel(opts.LogLevel), opts.LogOutput),
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	a.cfg = cfg

	if err := a.loadPlugins(); err != nil {
		return nil, &InitError{Component: "plugins", Err: err}
	}

	a.registry = a.buildRegistry()

	if opts.Watch && opts.ConfigPath != "" {
		w, err := watcher.New(opts.ConfigPath, a.onConfigChange)
		if err != nil {
			return nil, &InitError{Component: "config watcher", Err: err}
		}
		a.watcher = w
	}

	return a, nil
}

// Close releases the watcher and the Lua state.
func (a *App) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.luaHost != nil {
		a.luaHost.Close()
	}
}

// Config returns the active configuration.
func (a *App) Config() config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// Logger returns the application logger.
func (a *App) Logger() *Logger {
	return a.logger
}

// Actions returns the sorted names of every available action.
func (a *App) Actions() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.registry.Actions()
}

// Apply resolves the host's block, dispatches the action, and writes a
// successful result back. A host failure aborts before any
// transformation runs.
func (a *App) Apply(h host.Host, action string) transform.Result {
	a.mu.RLock()
	cfg := a.cfg
	reg := a.registry
	a.mu.RUnlock()

	blk, err := h.Block()
	if err != nil {
		return transform.Error(err)
	}

	ctx := transform.NewContext(cfg, hostClipboard{h})
	res := reg.Dispatch(action, blk, ctx)

	switch {
	case res.IsOK():
		if err := h.SetBlock(blk.WithLines(res.Lines)); err != nil {
			return transform.Error(err)
		}
		a.logger.Debug("applied %s to lines %d-%d", action, blk.Start, blk.End)
	case res.IsError():
		a.logger.Error("action %s failed: %v", action, res.Err)
	default:
		a.logger.Debug("action %s was a no-op", action)
	}

	return res
}

// Reload re-reads the configuration file and rebuilds the registry.
func (a *App) Reload() error {
	cfg, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.cfg = cfg
	a.registry = a.buildRegistry()
	a.mu.Unlock()

	a.logger.Info("configuration reloaded from %s", a.opts.ConfigPath)
	return nil
}

// buildRegistry assembles the handler set from the current
// configuration. Callers must hold a.mu for writing, or be in New.
func (a *App) buildRegistry() *transform.Registry {
	reg := transform.NewRegistry()
	reg.Register(wrap.NewHandler())
	reg.Register(toggle.NewHandler())
	reg.Register(list.NewHandler())
	reg.Register(fence.NewHandler(a.cfg.Fences))
	reg.Register(table.NewHandler())
	if a.luaHost != nil {
		reg.Register(lua.NewHandler(a.luaHost))
	}
	return reg
}

// loadPlugins creates the Lua host and runs the plugin directory.
func (a *App) loadPlugins() error {
	dir := a.opts.PluginDir
	if dir == "" {
		dir = a.cfg.PluginDir
	}
	if dir == "" {
		return nil
	}

	h, err := lua.NewHost()
	if err != nil {
		return err
	}
	if err := h.LoadDir(dir); err != nil {
		h.Close()
		return err
	}

	a.luaHost = h
	for _, name := range h.Toggles() {
		a.logger.Debug("registered plugin toggle %s", name)
	}
	return nil
}

// onConfigChange handles a watcher notification.
func (a *App) onConfigChange(path string) {
	if err := a.Reload(); err != nil {
		a.logger.Warn("reloading %s: %v", path, err)
	}
}

// hostClipboard adapts a host to the transform clipboard contract.
type hostClipboard struct {
	h host.Host
}

// Copy publishes text to the host clipboard.
func (c hostClipboard) Copy(text string) error {
	return c.h.CopyToClipboard(text)
}

var _ transform.Clipboard = hostClipboard{}
