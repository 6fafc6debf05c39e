package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hustcer/nanoid/alphabet"
	"github.com/hustcer/nanoid/internal/logging"
	"github.com/hustcer/nanoid/internal/normalize"
)

// alphabetFlags are the flags shared by commands that build a generator.
type alphabetFlags struct {
	alphabet  string
	preset    string
	size      int
	normalize bool
}

func (f *alphabetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.alphabet, "alphabet", "a", "", "Characters to draw from")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "Named alphabet, as listed by the presets command")
	cmd.Flags().IntVarP(&f.size, "size", "s", 0, "ID length in characters")
	cmd.Flags().BoolVar(&f.normalize, "normalize", false, "Compose the alphabet to Unicode NFC before use")
}

// resolve picks the alphabet and size from flags, falling back to config.
// An explicit --alphabet or --preset beats a configured preset, which beats
// a configured alphabet.
func (f *alphabetFlags) resolve(cmd *cobra.Command) (string, int, error) {
	cfg := settingsFrom(cmd.Context())
	flags := cmd.Flags()

	if flags.Changed("alphabet") && flags.Changed("preset") {
		return "", 0, invalidInputf("--alphabet and --preset cannot be used together")
	}

	var chars string
	switch {
	case flags.Changed("preset"):
		p, err := lookupPreset(f.preset)
		if err != nil {
			return "", 0, err
		}
		chars = p
	case flags.Changed("alphabet"):
		chars = f.alphabet
	case cfg.Preset != "":
		p, err := lookupPreset(cfg.Preset)
		if err != nil {
			return "", 0, err
		}
		chars = p
	default:
		chars = cfg.Alphabet
	}

	size := cfg.Size
	if flags.Changed("size") {
		size = f.size
	}

	return prepareAlphabet(cmd, chars, f.normalize || cfg.Normalize), size, nil
}

// prepareAlphabet applies NFC normalization when asked, and otherwise warns
// about input that renders ambiguously.
func prepareAlphabet(cmd *cobra.Command, chars string, nfc bool) string {
	logger := logging.Ctx(cmd.Context())
	if nfc {
		out := normalize.NFC(chars)
		if out != chars {
			logger.Debug().Str("before", chars).Str("after", out).Msg("normalized alphabet to NFC")
		}
		return out
	}
	if !normalize.IsNFC(chars) {
		logger.Warn().Msg("alphabet is not in Unicode NFC form; pass --normalize to compose it")
	}
	if marks := normalize.CombiningMarks(chars); len(marks) > 0 {
		logger.Warn().Int("count", len(marks)).Msg("alphabet contains combining marks that render on top of their neighbour")
	}
	return chars
}

func lookupPreset(name string) (string, error) {
	p, ok := alphabet.Lookup(name)
	if !ok {
		return "", invalidInputf("unknown preset %q; available: %s", name, strings.Join(alphabet.Names(), ", "))
	}
	return p, nil
}
