package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bearlytools/numy/internal/calc"
	"github.com/bearlytools/numy/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // path to a YAML config file

	log      *zap.Logger
	registry *calc.Registry
}

// NewRootCommand creates the root command for the numy CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "numy",
		Short: "numy - fixed width numeric operations",
		Long: `Evaluate numy's integer and float operations from the command line.

Scripts hold one operation per line, for example "u8 checked_sub 5 10".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setup(cmd); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
				return err
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log each evaluation to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML config file")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewOpsCommand(opts))

	return cmd
}

// setup merges the config file under the flags and builds the logger and registry.
// Flags given on the command line win over the file.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	conf := config.Default()
	if o.Config != "" {
		c, err := config.Load(o.Config)
		if err != nil {
			return WrapExitError(ExitCommandError, "bad config", err)
		}
		conf = c
	}
	flags := cmd.Flags()
	if !flags.Changed("format") {
		o.Format = conf.Format
	}
	if !flags.Changed("verbose") {
		o.Verbose = conf.Verbose
	}
	if !slices.Contains(config.Formats, o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, config.Formats))
	}

	o.log = newLogger(o.Verbose, cmd.ErrOrStderr())
	r, err := calc.New(conf.Aliases, calc.WithLogger(o.log))
	if err != nil {
		return WrapExitError(ExitCommandError, "bad type aliases", err)
	}
	o.registry = r
	o.log.Debug("configured", zap.String("format", o.Format), zap.String("config", o.Config), zap.Int("aliases", len(conf.Aliases)))
	return nil
}

// formatter returns the OutputFormatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// newLogger returns a no-op logger unless verbose is set, in which case debug entries are
// written to w in zap's console format.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}
