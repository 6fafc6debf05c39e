package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hustcer/nanoid"
)

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "compare <id> <id>",
		Short: "Compare two IDs in constant time",
		Long: "Compare two IDs without revealing where they differ through timing.\n" +
			"Exits with status 1 when they differ.",
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}

			equal := nanoid.ConstantTimeEqual(args[0], args[1])

			out := cmd.OutOrStdout()
			if !writeStructured(out, outFormat, map[string]bool{"equal": equal}) {
				if equal {
					fmt.Fprintln(out, "equal")
				} else {
					fmt.Fprintln(out, "different")
				}
			}
			if !equal {
				return &MismatchError{}
			}
			return nil
		},
	}

	addFormatFlag(cmd, &format)

	return cmd
}
