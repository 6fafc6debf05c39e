package cmd

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hustcer/nanoid"
	"github.com/hustcer/nanoid/alphabet"
	"github.com/hustcer/nanoid/internal/logging"
)

// generateOutput is the structured output of the generate command.
type generateOutput struct {
	IDs      []string `json:"ids" yaml:"ids"`
	Alphabet string   `json:"alphabet" yaml:"alphabet"`
	Size     int      `json:"size" yaml:"size"`
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	var (
		af      alphabetFlags
		count   int
		workers int
		seed    string
		lenient bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more IDs",
		Example: `  nanoid generate
  nanoid generate --preset hex --size 32
  nanoid generate --alphabet 01 --size 64 --count 10
  nanoid generate --seed 000102...1f --count 3`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.Ctx(cmd.Context())
			cfg := settingsFrom(cmd.Context())

			outFormat, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			chars, size, err := af.resolve(cmd)
			if err != nil {
				return err
			}
			if count < 1 {
				return invalidInputf("--count must be at least 1, got %d", count)
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Workers
			}
			if workers < 1 {
				workers = 1
			}

			var src nanoid.RandomSource
			if seed != "" {
				if lenient {
					return invalidInputf("--seed and --lenient cannot be used together")
				}
				s, err := parseSeed(seed)
				if err != nil {
					return err
				}
				src = nanoid.NewChaCha8Source(s)
				if workers > 1 {
					logger.Debug().Int("workers", workers).Msg("seeded run uses a single worker")
				}
				workers = 1
			}

			var gen func() (string, error)
			if lenient {
				gen, err = lenientGenerator(chars, size, nanoid.GenerateOrDefault)
				if err != nil {
					return err
				}
			} else {
				g, err := nanoid.New(chars, size, nanoid.WithSource(src))
				if err != nil {
					return classify(err)
				}
				gen = g.Generate
			}

			logger.Debug().
				Int("count", count).
				Int("size", size).
				Int("workers", workers).
				Bool("seeded", src != nil).
				Msg("generating")

			ids, err := generateBatch(cmd.Context(), gen, count, workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if writeStructured(out, outFormat, generateOutput{IDs: ids, Alphabet: chars, Size: size}) {
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	af.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of IDs to generate")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "Concurrent generators for large counts")
	cmd.Flags().StringVar(&seed, "seed", "", "64 hex characters seeding a reproducible ChaCha8 stream")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Substitute defaults for an empty alphabet or out-of-range size")
	addFormatFlag(cmd, &format)

	return cmd
}

// parseSeed decodes a 32-byte seed from 64 hex characters.
func parseSeed(s string) ([32]byte, error) {
	var seed [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(seed) {
		return seed, invalidInputf("--seed must be %d hex characters", 2*len(seed))
	}
	copy(seed[:], raw)
	return seed, nil
}

// generateBatch calls gen count times on at most workers goroutines and
// returns the IDs in call-slot order. The first error cancels the rest.
func generateBatch(ctx context.Context, gen func() (string, error), count, workers int) ([]string, error) {
	ids := make([]string, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range ids {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			id, err := gen()
			if err != nil {
				return classify(err)
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// errLenientGenerate reports that the lenient generator returned nothing for
// an alphabet that passed validation, which leaves the random source.
var errLenientGenerate = errors.New("generating id failed")

// lenientGenerator wraps a GenerateOrDefault-style function. Alphabets the
// lenient defaults cannot repair are rejected up front as invalid input.
func lenientGenerator(chars string, size int, generate func(string, int) string) (func() (string, error), error) {
	effective := chars
	if effective == "" {
		effective = alphabet.URLSafe
	}
	if _, err := nanoid.ValidateAlphabet(effective); err != nil {
		return nil, invalidInputf("alphabet %q is unusable even with lenient defaults", chars)
	}
	return func() (string, error) {
		id := generate(chars, size)
		if id == "" {
			return "", errLenientGenerate
		}
		return id, nil
	}, nil
}
