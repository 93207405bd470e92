package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// Names is a list of type or operation names.
type Names []string

// String renders one name per line.
func (n Names) String() string {
	if len(n) == 0 {
		return ""
	}
	return strings.Join(n, "\n") + "\n"
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ops [type]",
		Short:         "List types, or the operations of a type",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)
			if len(args) == 0 {
				return formatter.Success(Names(rootOpts.registry.Types()))
			}
			ops, err := rootOpts.registry.Ops(args[0])
			if err != nil {
				err = WrapExitError(ExitCommandError, "cannot list operations", err)
				formatter.Error(err)
				return err
			}
			return formatter.Success(Names(ops))
		},
	}

	return cmd
}
