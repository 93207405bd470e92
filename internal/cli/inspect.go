package cli

import (
	"github.com/spf13/cobra"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <type> <value>",
		Short: "Show the representation of a value",
		Long: `Show a value's width, bit pattern and big and little endian bytes.
Floats also show their IEEE-754 class and sign.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)
			in, err := rootOpts.registry.Inspect(args[0], args[1])
			if err != nil {
				err = WrapExitError(ExitFailure, "cannot inspect", err)
				formatter.Error(err)
				return err
			}
			return formatter.Success(in)
		},
	}
	// Flag parsing stops at <type>, so a negative value such as -1 is not read as a flag.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
