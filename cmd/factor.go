package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/riemann-kernel/kernel/number"
)

var (
	factorKind   string // Number kind used for decomposition
	factorPreset string // Named seed from the presets file
)

var factorCmd = &cobra.Command{
	Use:   "factor [value]",
	Short: "Decompose a value into its prime factors",
	Long:  "Build a Number of the given kind and print its factor set. The value may come from a named preset instead of an argument.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := number.ParseKind(factorKind)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		var raw string
		switch {
		case factorPreset != "" && len(args) > 0:
			logrus.Fatalf("--preset and a value argument are mutually exclusive")
		case factorPreset != "":
			cfg, err := loadPresetsConfig(presetsFilePath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			p, ok := cfg.Lookup(factorPreset)
			if !ok {
				logrus.Fatalf("Unknown preset %q", factorPreset)
			}
			raw = p.Seed
		case len(args) == 1:
			raw = args[0]
		default:
			logrus.Fatalf("a value argument or --preset is required")
		}

		writeFactorReport(os.Stdout, number.New(kind, mustBigInt("value", raw)))
	},
}

func init() {
	factorCmd.Flags().StringVar(&factorKind, "kind", "composite", "Number kind (composite, prime, scalar)")
	factorCmd.Flags().StringVar(&factorPreset, "preset", "", "Name of a seed in the presets file")
	factorCmd.Flags().StringVar(&presetsFilePath, "presets", "presets.yaml", "Path to the presets file")

	rootCmd.AddCommand(factorCmd)
}
