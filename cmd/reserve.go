package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hustcer/nanoid"
	"github.com/hustcer/nanoid/internal/ledger"
)

// reserveOutput is the structured output of the reserve command.
type reserveOutput struct {
	ID  string   `json:"id,omitempty" yaml:"id,omitempty"`
	IDs []string `json:"ids,omitempty" yaml:"ids,omitempty"`
	Dir string   `json:"dir" yaml:"dir"`
}

// NewReserveCmd creates the reserve command.
func NewReserveCmd() *cobra.Command {
	var (
		af       alphabetFlags
		dir      string
		attempts int
		wait     time.Duration
		list     bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Issue an ID that has never been issued from this ledger",
		Long: "Generate an ID, check it against the ledger directory and record it.\n" +
			"Concurrent reserve commands on the same directory are serialized by a file lock.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := settingsFrom(cmd.Context())
			if !cmd.Flags().Changed("dir") {
				dir = cfg.Ledger.Dir
			}
			if !cmd.Flags().Changed("attempts") {
				attempts = cfg.Ledger.Attempts
			}
			outFormat, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}

			store := &ledger.Store{Dir: dir}
			out := cmd.OutOrStdout()

			if list {
				ids, err := store.List(cmd.Context())
				if err != nil {
					return &ContextError{Op: "list ledger", Path: dir, Err: err}
				}
				if writeStructured(out, outFormat, reserveOutput{IDs: ids, Dir: dir}) {
					return nil
				}
				for _, id := range ids {
					fmt.Fprintln(out, id)
				}
				return nil
			}

			chars, size, err := af.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := nanoid.New(chars, size)
			if err != nil {
				return classify(err)
			}

			r := &ledger.Reserver{Store: store, Generator: g, Attempts: attempts, Wait: wait}
			id, err := r.Reserve(cmd.Context())
			if err != nil {
				return &ContextError{Op: "reserve", Path: dir, Err: classify(err)}
			}

			if writeStructured(out, outFormat, reserveOutput{ID: id, Dir: dir}) {
				return nil
			}
			fmt.Fprintln(out, id)
			return nil
		},
	}

	af.register(cmd)
	cmd.Flags().StringVar(&dir, "dir", ".nanoid", "Ledger directory")
	cmd.Flags().IntVar(&attempts, "attempts", ledger.DefaultAttempts, "Candidates to try before giving up")
	cmd.Flags().DurationVar(&wait, "wait", 0, "How long to wait for a busy ledger (0 fails immediately)")
	cmd.Flags().BoolVar(&list, "list", false, "Print the reserved IDs instead of reserving one")
	addFormatFlag(cmd, &format)

	return cmd
}
