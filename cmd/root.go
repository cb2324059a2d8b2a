package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cometlog "github.com/cometbft/cometbft/libs/log"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// DefaultInput is read when no document is named anywhere else.
	DefaultInput = "testcase1.json"

	envPrefix         = "polysecret"
	defaultConfigName = ".polysecret.yaml"

	flagConfig   = "config"
	flagInput    = "input"
	flagStrict   = "strict"
	flagStandard = "standard"
	flagVerbose  = "verbose"
	flagDebug    = "debug"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v      *viper.Viper
	logger cometlog.Logger
}

// NewRootCmd builds a fresh command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: cometlog.NewNopLogger()}

	rootCmd := &cobra.Command{
		Use:   "polysecret [file]",
		Short: "Recover a threshold secret from base-encoded polynomial shares",
		Long: `polysecret reads a share document, decodes each share's value from its
stated base, takes the k shares with the smallest x and solves for the
polynomial through them. The constant term is the secret.

Running polysecret without a subcommand is the same as "polysecret solve".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: a.runSolve,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "", "Config file (default is $HOME/"+defaultConfigName+")")
	flags.StringP(flagInput, "i", "", "Share document to read (default "+DefaultInput+")")
	flags.Bool(flagStrict, false, "Fail on a singular system instead of printing non-finite coefficients")
	flags.Bool(flagStandard, false, "Print the polynomial in standard form including the constant term")
	flags.BoolP(flagVerbose, "v", false, "Log pipeline progress to stderr")
	flags.Bool(flagDebug, false, "Log every decoded share to stderr")

	rootCmd.AddCommand(
		a.solveCmd(),
		a.splitCmd(),
		a.interactiveCmd(),
	)

	return rootCmd
}

// setup binds flags, environment and the optional config file into viper
// and sets up the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	if err := a.readConfig(); err != nil {
		return err
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.v.GetBool(flagVerbose), a.v.GetBool(flagDebug))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Loaded config", "file", used)
	}
	return nil
}

func (a *app) readConfig() error {
	path := a.v.GetString(flagConfig)
	explicit := path != ""
	if !explicit {
		home, err := homedir.Dir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, defaultConfigName)
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err != nil {
		if explicit {
			return fmt.Errorf("config file: %w", err)
		}
		return nil
	}

	a.v.SetConfigFile(expanded)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", expanded, err)
	}
	return nil
}

// inputPath resolves the document to read: positional argument, then
// flag, env or config, then DefaultInput.
func (a *app) inputPath(args []string) (string, error) {
	path := DefaultInput
	if len(args) > 0 {
		path = args[0]
	} else if p := a.v.GetString(flagInput); p != "" {
		path = p
	}
	return homedir.Expand(path)
}

func newLogger(w io.Writer, verbose, debug bool) cometlog.Logger {
	logger := cometlog.NewTMLogger(cometlog.NewSyncWriter(w)).With("module", "polysecret")

	level := cometlog.AllowError()
	switch {
	case debug:
		level = cometlog.AllowDebug()
	case verbose:
		level = cometlog.AllowInfo()
	}
	return cometlog.NewFilter(logger, level)
}

// Execute runs the command tree and exits non-zero on any failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", describe(err))
		os.Exit(1)
	}
}

// GetRootCmd returns a fresh root command, mainly for tests.
func GetRootCmd() *cobra.Command {
	return NewRootCmd()
}

// describe prefixes err with its category.
func describe(err error) string {
	for _, c := range categories {
		if errors.Is(err, c.target) {
			return c.name + ": " + err.Error()
		}
	}
	return err.Error()
}
