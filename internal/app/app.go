// Package app implements the application layer for the icon exporter: it
// assembles the per-run collaborators from the run options and drives the
// pipeline from data load through publishing.
package app

import (
	"context"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/config"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/evecache"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/iconcache"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/publish"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/sde"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/engine/iconbuild"
	"go.trai.ch/zerr"
)

// RunOptions carries everything a single run needs that is decided on the
// command line.
type RunOptions struct {
	Mode         domain.OutputMode
	ForceRebuild bool
	SkipIfFresh  bool
	UseMagick    bool
	Silent       bool
	CacheFolder  string // shared download cache for game resources and data export
	IconFolder   string // content-addressed icon cache directory
	UserAgent    string
	RulesPath    string // optional classification rules override file
}

// App represents the main application logic. The flag-independent
// collaborators are injected once; everything that depends on run options is
// constructed inside Run through the open* seams, which tests replace.
type App struct {
	log       ports.Logger
	telemetry ports.Telemetry
	rules     *config.RulesLoader
	native    ports.Compositor
	magick    ports.Compositor

	openStore    func(opts RunOptions) (ports.ResourceStore, error)
	openData     func(opts RunOptions) ports.BuildDataSource
	openCache    func(opts RunOptions) (ports.ContentCache, error)
	newPublisher func(mode domain.OutputMode) ports.Publisher
}

// New creates a new App instance.
func New(log ports.Logger, telemetry ports.Telemetry, rules *config.RulesLoader, native, magick ports.Compositor) *App {
	a := &App{
		log:       log,
		telemetry: telemetry,
		rules:     rules,
		native:    native,
		magick:    magick,
	}
	a.openStore = func(opts RunOptions) (ports.ResourceStore, error) {
		return evecache.Initialize(opts.CacheFolder, opts.UserAgent)
	}
	a.openData = func(opts RunOptions) ports.BuildDataSource {
		return sde.NewLoader(opts.CacheFolder, opts.UserAgent, a.log)
	}
	a.openCache = func(opts RunOptions) (ports.ContentCache, error) {
		return iconcache.Open(opts.IconFolder, opts.ForceRebuild)
	}
	a.newPublisher = func(mode domain.OutputMode) ports.Publisher {
		return publish.New(mode, a.log)
	}
	return a
}

// Run executes one export: load rules and data, build the icon cache, and
// publish the selected output format.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	a.log.SetQuiet(opts.Silent)
	defer a.telemetry.Close() //nolint:errcheck // Best effort flush on exit

	phase := a.telemetry.StartPhase(ctx, "load classification rules")
	rules, err := a.rules.Load(opts.RulesPath)
	phase.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to load classification rules")
	}

	phase = a.telemetry.StartPhase(ctx, "initialize resource store")
	store, err := a.openStore(opts)
	if err == nil {
		phase.Log("client version " + store.Version())
	}
	phase.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to initialize resource store")
	}

	phase = a.telemetry.StartPhase(ctx, "load static data export")
	data, err := a.openData(opts).Load(ctx)
	phase.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to load static data export")
	}

	cache, err := a.openCache(opts)
	if err != nil {
		return zerr.Wrap(err, "failed to open icon cache")
	}

	comp := a.native
	if opts.UseMagick {
		comp = a.magick
	}

	phase = a.telemetry.StartPhase(ctx, "build icons")
	state, err := iconbuild.NewBuilder(data, rules, store, cache, comp, a.log).Run(ctx)
	if err == nil && state.Fresh() {
		phase.Cached()
	}
	phase.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "icon build failed")
	}

	if opts.SkipIfFresh && state.Fresh() && !printsChecksum(opts.Mode) {
		a.log.Info("icon cache unchanged, skipping output")
		return nil
	}

	phase = a.telemetry.StartPhase(ctx, "publish output")
	err = a.newPublisher(opts.Mode).Publish(ctx, state)
	phase.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to publish output")
	}
	return nil
}

// printsChecksum reports whether the mode writes the checksum to stdout, the
// one output that skip-if-fresh never suppresses.
func printsChecksum(mode domain.OutputMode) bool {
	return mode.Kind == domain.OutputChecksum && mode.Out == ""
}
