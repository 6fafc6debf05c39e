package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/hustcer/nanoid"
)

// collisionProbability is the probability used for the birthday-bound
// estimate in inspect.
const collisionProbability = 0.01

// inspectOutput describes how an alphabet and size behave.
type inspectOutput struct {
	Alphabet       string  `json:"alphabet" yaml:"alphabet"`
	Length         int     `json:"length" yaml:"length"`
	Size           int     `json:"size" yaml:"size"`
	Mask           int     `json:"mask" yaml:"mask"`
	Step           int     `json:"step" yaml:"step"`
	AcceptanceRate float64 `json:"acceptance_rate" yaml:"acceptance_rate"`
	BitsPerChar    float64 `json:"bits_per_char" yaml:"bits_per_char"`
	EntropyBits    float64 `json:"entropy_bits" yaml:"entropy_bits"`
	// CollisionLog10 is log10 of the number of IDs after which the chance
	// of any collision reaches collisionProbability.
	CollisionLog10 float64 `json:"ids_for_1pct_collision_log10" yaml:"ids_for_1pct_collision_log10"`
}

// inspect computes the report for a validated alphabet of n characters.
func inspect(chars string, n, size int) inspectOutput {
	mask := nanoid.MaskFor(n)
	bits := math.Log2(float64(n))

	// Birthday bound: k ~ sqrt(2 N ln(1/(1-p))) with N = n^size, in logs.
	lnN := float64(size) * math.Log(float64(n))
	lnK := 0.5 * (math.Ln2 + lnN + math.Log(-math.Log1p(-collisionProbability)))

	return inspectOutput{
		Alphabet:       chars,
		Length:         n,
		Size:           size,
		Mask:           int(mask),
		Step:           nanoid.StepFor(n, mask, size),
		AcceptanceRate: float64(n) / float64(int(mask)+1),
		BitsPerChar:    bits,
		EntropyBits:    bits * float64(size),
		CollisionLog10: lnK / math.Ln10,
	}
}

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	var (
		af     alphabetFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show sampling and collision characteristics of an alphabet and size",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			raw, size, err := af.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := nanoid.New(raw, size)
			if err != nil {
				return classify(err)
			}

			rep := inspect(raw, g.Alphabet().Len(), g.Size())
			out := cmd.OutOrStdout()
			if writeStructured(out, outFormat, rep) {
				return nil
			}
			fmt.Fprintf(out, "alphabet:        %s\n", rep.Alphabet)
			fmt.Fprintf(out, "length:          %d\n", rep.Length)
			fmt.Fprintf(out, "size:            %d\n", rep.Size)
			fmt.Fprintf(out, "mask:            %d\n", rep.Mask)
			fmt.Fprintf(out, "bytes per round: %d\n", rep.Step)
			fmt.Fprintf(out, "acceptance rate: %.1f%%\n", rep.AcceptanceRate*100)
			fmt.Fprintf(out, "entropy:         %.1f bits (%.2f per character)\n", rep.EntropyBits, rep.BitsPerChar)
			fmt.Fprintf(out, "1%% collision:    ~10^%.1f IDs\n", rep.CollisionLog10)
			return nil
		},
	}

	af.register(cmd)
	addFormatFlag(cmd, &format)

	return cmd
}
