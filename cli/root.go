// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cli wires the azd-attach commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jongio/azd-attach/attach"
	"github.com/jongio/azd-attach/cliout"
	"github.com/jongio/azd-attach/cmdutil"
	"github.com/jongio/azd-attach/config"
	"github.com/jongio/azd-attach/env"
	"github.com/jongio/azd-attach/logutil"
	"github.com/jongio/azd-attach/procutil"
	"github.com/jongio/azd-attach/version"
	"github.com/spf13/cobra"
)

// ExtensionID identifies azd-attach to azd.
const ExtensionID = "jongio.azd.attach"

// Exit codes returned by Run.
const (
	ExitOK                  = 0
	ExitError               = 1
	ExitUnsupportedPlatform = 2
)

// App holds the state shared by the commands of one invocation.
type App struct {
	cfg    *config.Config
	output string
	info   *version.Info

	newExecutor func(timeout time.Duration) attach.Executor
	goos        string
	isRunning   func(pid int) bool
	inspect     func(ctx context.Context, pid int) (procutil.Info, error)
}

// Option configures an App.
type Option func(*App)

// WithExecutor makes every command run listing commands through exec.
func WithExecutor(exec attach.Executor) Option {
	return func(a *App) {
		a.newExecutor = func(time.Duration) attach.Executor { return exec }
	}
}

// WithGOOS overrides the detected operating system.
func WithGOOS(goos string) Option {
	return func(a *App) {
		a.goos = goos
	}
}

// WithLivenessCheck replaces the check pick uses to confirm a process is alive.
func WithLivenessCheck(isRunning func(pid int) bool) Option {
	return func(a *App) {
		a.isRunning = isRunning
	}
}

// WithInspector replaces how pick reads details of the picked process.
func WithInspector(inspect func(ctx context.Context, pid int) (procutil.Info, error)) Option {
	return func(a *App) {
		a.inspect = inspect
	}
}

func newApp(opts ...Option) *App {
	a := &App{
		cfg:  config.Default(),
		info: version.New(ExtensionID, "azd attach"),
		newExecutor: func(timeout time.Duration) attach.Executor {
			return cmdutil.NewPlainExecutor(timeout)
		},
		isRunning: procutil.IsProcessRunning,
		inspect:   procutil.Inspect,
	}
	a.output = a.cfg.Output
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewRootCommand builds the azd-attach command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := newApp(opts...)

	root := &cobra.Command{
		Use:   "azd-attach",
		Short: "Find local processes to attach a debugger to",
		Long: `azd-attach lists the processes running on this machine, ranked for debugger
attachment with python processes first.

It runs ps on Linux and macOS and PowerShell on Windows, falling back to WMIC
where PowerShell is not installed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	config.RegisterGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newListCommand(a),
		newPickCommand(a),
		newWatchCommand(a),
		newMCPCommand(a),
		version.NewCommand(a.info, &a.output),
		newMetadataCommand(root),
	)
	return root
}

// Run executes the command tree with args and returns the process exit code.
func Run(args []string, opts ...Option) int {
	root := NewRootCommand(opts...)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	if errors.Is(err, attach.ErrUnsupportedPlatform) {
		return ExitUnsupportedPlatform
	}
	return ExitError
}

func (a *App) configure(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString(config.FlagConfig)
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	a.cfg = cfg
	a.output = cfg.Output

	logutil.SetupLoggerWithWriter(cmd.ErrOrStderr(), false, cfg.LogFormat == "json")
	if !logutil.IsDebugEnabled() {
		logutil.SetLevel(logutil.ParseLevel(cfg.LogLevel))
	}
	logutil.Debug("configuration loaded", "config", path, "envFile", cfg.EnvFile, "timeout", cfg.Timeout)

	return cliout.SetFormat(cfg.Output)
}

func (a *App) provider() *attach.Provider {
	opts := []attach.Option{
		attach.WithEnvironment(&env.FileProvider{Path: a.cfg.EnvFile}),
	}
	if a.goos != "" {
		opts = append(opts, attach.WithGOOS(a.goos))
	}
	return attach.NewProvider(a.newExecutor(a.cfg.Timeout), opts...)
}
