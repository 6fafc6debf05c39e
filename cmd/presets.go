package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/hustcer/nanoid/alphabet"
)

// presetEntry is one row of the presets command.
type presetEntry struct {
	Name     string `json:"name" yaml:"name"`
	Length   int    `json:"length" yaml:"length"`
	Alphabet string `json:"alphabet" yaml:"alphabet"`
}

// NewPresetsCmd creates the presets command.
func NewPresetsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the named alphabets",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}

			var entries []presetEntry
			for _, name := range alphabet.Names() {
				chars, _ := alphabet.Lookup(name)
				entries = append(entries, presetEntry{Name: name, Length: utf8.RuneCountInString(chars), Alphabet: chars})
			}

			out := cmd.OutOrStdout()
			if writeStructured(out, outFormat, entries) {
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%-20s %3d  %s\n", e.Name, e.Length, e.Alphabet)
			}
			return nil
		},
	}

	addFormatFlag(cmd, &format)

	return cmd
}
