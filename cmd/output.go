package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// resolveFormat returns the --format flag value when set, otherwise the
// configured default.
func resolveFormat(cmd *cobra.Command, flagValue string) (string, error) {
	f := flagValue
	if !cmd.Flags().Changed("format") {
		f = settingsFrom(cmd.Context()).Format
	}
	switch f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", invalidInputf("unknown format %q; use text, json or yaml", f)
	}
}

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVarP(p, "format", "f", formatText, "Output format: text, json or yaml")
}

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// writeYAML encodes v as a YAML document to w.
func writeYAML(w io.Writer, v any) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "error: %q\n", err.Error())
		return
	}
	_ = enc.Close()
}

// writeStructured writes v as JSON or YAML and reports whether format was
// one of those. Text output is left to the caller.
func writeStructured(w io.Writer, format string, v any) bool {
	switch format {
	case formatJSON:
		writeJSON(w, v)
		return true
	case formatYAML:
		writeYAML(w, v)
		return true
	}
	return false
}
