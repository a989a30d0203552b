// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/jongio/azd-attach/cmdutil"
	"github.com/jongio/azd-attach/logutil"
	"github.com/jongio/azd-attach/platform"
)

// Provider lists attach items for the local machine. It holds no state
// between calls and is safe for concurrent use.
type Provider struct {
	executor      Executor
	environment   EnvironmentProvider
	processLogger ProcessLogger
	log           *logutil.ComponentLogger
	goos          string
}

// Option configures a Provider.
type Option func(*Provider)

// WithEnvironment sets the source of environment overrides for the listing
// command. Without it the command inherits the current environment as is.
func WithEnvironment(env EnvironmentProvider) Option {
	return func(p *Provider) {
		p.environment = env
	}
}

// WithProcessLogger sets the diagnostic logger that records command invocations.
func WithProcessLogger(logger ProcessLogger) Option {
	return func(p *Provider) {
		p.processLogger = logger
	}
}

// WithGOOS overrides the detected operating system (a runtime.GOOS value).
func WithGOOS(goos string) Option {
	return func(p *Provider) {
		p.goos = goos
	}
}

// NewProvider creates a Provider that runs commands through executor.
func NewProvider(executor Executor, opts ...Option) *Provider {
	log := logutil.NewLogger("attach")
	p := &Provider{
		executor:      executor,
		processLogger: log,
		log:           log,
		goos:          runtime.GOOS,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetAttachItems lists the local processes, ranked by Compare. The result is
// never nil on success, though it may be empty.
func (p *Provider) GetAttachItems(ctx context.Context) ([]AttachItem, error) {
	_, items, err := p.List(ctx)
	return items, err
}

// List is GetAttachItems that also returns the Lister that produced the
// items. The tool probe runs at most once per call, so the reported Lister is
// always the one whose command and parser were used.
func (p *Provider) List(ctx context.Context) (Lister, []AttachItem, error) {
	start := time.Now()
	osType := platform.FromGOOS(p.goos)

	lister, err := p.preferredLister()
	if err != nil {
		processListTotal.WithLabelValues(osType.String(), "none", statusError).Inc()
		return Lister{}, nil, err
	}

	overrides := p.overrides(ctx)
	lister = p.resolveFallback(ctx, lister, overrides)

	opts := cmdutil.ExecOptions{ThrowOnStdErr: true}
	command, args := lister.Command.Command(), lister.Command.Args()
	result, err := p.executor.Execute(ctx, command, args, opts, overrides)
	p.processLogger.LogProcess(command, args, opts)
	if err != nil {
		p.observe(osType, lister, statusError, start)
		return lister, nil, err
	}

	items := lister.Parser.Parse(result.Stdout)
	p.observe(osType, lister, statusSuccess, start)
	processListItems.WithLabelValues(lister.Name).Set(float64(len(items)))
	p.log.Debug("listed processes", "lister", lister.Name, "count", len(items))

	SortItems(items)
	return lister, items, nil
}

func (p *Provider) preferredLister() (Lister, error) {
	lister, ok := listerFor(platform.FromGOOS(p.goos))
	if !ok {
		return Lister{}, &UnsupportedPlatformError{Platform: p.goos}
	}
	return lister, nil
}

// overrides fetches environment overrides. A failing provider is logged and
// treated as having no overrides.
func (p *Provider) overrides(ctx context.Context) map[string]string {
	if p.environment == nil {
		return nil
	}
	overrides, err := p.environment.Environment(ctx)
	if err != nil {
		p.log.Warn("failed to load environment overrides, using inherited environment", "error", err)
		return nil
	}
	return overrides
}

// resolveFallback probes for the tool lister requires and swaps in the
// fallback when the lookup fails or prints nothing.
func (p *Provider) resolveFallback(ctx context.Context, lister Lister, overrides map[string]string) Lister {
	if lister.requires == "" || lister.fallback == nil {
		return lister
	}

	probe := toolLookupCommand(lister.requires)
	result, err := p.executor.Execute(ctx, probe.Command(), probe.Args(), cmdutil.ExecOptions{ThrowOnStdErr: false}, overrides)
	switch {
	case err != nil:
		p.log.Warn("tool probe failed, using fallback", "tool", lister.requires, "fallback", lister.fallback.Name, "error", err)
		probeFallbackTotal.WithLabelValues(lister.requires, "error").Inc()
		return *lister.fallback
	case strings.TrimSpace(result.Stdout) == "":
		p.log.Info("tool not found, using fallback", "tool", lister.requires, "fallback", lister.fallback.Name)
		probeFallbackTotal.WithLabelValues(lister.requires, "not_found").Inc()
		return *lister.fallback
	default:
		return lister
	}
}

func (p *Provider) observe(osType platform.OSType, lister Lister, status string, start time.Time) {
	processListTotal.WithLabelValues(osType.String(), lister.Name, status).Inc()
	processListDuration.WithLabelValues(osType.String(), lister.Name, status).Observe(time.Since(start).Seconds())
}
