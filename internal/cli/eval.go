package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gostdlib/base/context"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bearlytools/numy/internal/calc"
	"github.com/bearlytools/numy/internal/script"
)

// Results is the outcome of a script, one entry per operation line.
type Results []calc.Result

// String renders one result per line.
func (r Results) String() string {
	b := strings.Builder{}
	for _, res := range r {
		b.WriteString(res.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Failed returns the number of results holding an error.
func (r Results) Failed() int {
	n := 0
	for _, res := range r {
		if res.Error != "" {
			n++
		}
	}
	return n
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a script of numeric operations",
		Long: `Evaluate a script with one operation per line: <type> <op> <args...>

The script is read from file, or from stdin when no file is given.
Lines starting with // are comments. Every line is evaluated even if an
earlier one fails; the command exits 1 if any line failed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	src, name, err := readScript(args, cmd.InOrStdin())
	if err != nil {
		err = WrapExitError(ExitCommandError, "cannot read script", err)
		formatter.Error(err)
		return err
	}

	s, err := script.ParseBytes(context.Background(), src)
	if err != nil {
		err = WrapExitError(ExitCommandError, fmt.Sprintf("cannot parse %s", name), err)
		formatter.Error(err)
		return err
	}
	opts.log.Debug("parsed script", zap.String("script", name), zap.Int("lines", len(s.Lines)))

	results := make(Results, 0, len(s.Lines))
	for _, l := range s.Lines {
		results = append(results, opts.registry.EvalLine(l))
	}

	if n := results.Failed(); n > 0 {
		msg := fmt.Sprintf("%d of %d line(s) failed", n, len(results))
		if err := formatter.Failure(results, msg); err != nil {
			return err
		}
		return NewExitError(ExitFailure, msg)
	}
	return formatter.Success(results)
}

// readScript returns the script content and a name for it in messages.
func readScript(args []string, stdin io.Reader) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		return b, "stdin", err
	}
	b, err := os.ReadFile(args[0])
	return b, args[0], err
}
