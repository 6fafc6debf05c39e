package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hustcer/nanoid"
)

// validateOutput is the structured output of the validate command.
type validateOutput struct {
	Valid   bool   `json:"valid" yaml:"valid"`
	Length  int    `json:"length,omitempty" yaml:"length,omitempty"`
	Mask    int    `json:"mask,omitempty" yaml:"mask,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	var (
		nfc    bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "validate <alphabet>",
		Short: "Check that an alphabet can be used to generate IDs",
		Long: "Check that an alphabet has between 1 and 256 unique characters.\n" +
			"Exits with status 2 when it does not.",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			raw := prepareAlphabet(cmd, args[0], nfc || settingsFrom(cmd.Context()).Normalize)

			out := cmd.OutOrStdout()
			chars, verr := nanoid.ValidateAlphabet(raw)
			if verr != nil {
				var nerr *nanoid.Error
				res := validateOutput{Message: verr.Error()}
				if errors.As(verr, &nerr) {
					res.Error = nerr.Kind.String()
				}
				writeStructured(out, outFormat, res)
				return classify(verr)
			}

			res := validateOutput{Valid: true, Length: chars.Len(), Mask: int(nanoid.MaskFor(chars.Len()))}
			if writeStructured(out, outFormat, res) {
				return nil
			}
			fmt.Fprintf(out, "valid: %d characters, mask %d\n", res.Length, res.Mask)
			return nil
		},
	}

	cmd.Flags().BoolVar(&nfc, "normalize", false, "Compose the alphabet to Unicode NFC before validating")
	addFormatFlag(cmd, &format)

	return cmd
}
