package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/riemann-kernel/kernel/number"
)

var scaleKind string

var scaleCmd = &cobra.Command{
	Use:   "scale <value> <lambda>",
	Short: "Check scale invariance of a number under a scalar lambda",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := number.ParseKind(scaleKind)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		n := number.New(kind, mustBigInt("value", args[0]))
		writeScaleReport(os.Stdout, n, mustBigInt("lambda", args[1]))
	},
}

func init() {
	scaleCmd.Flags().StringVar(&scaleKind, "kind", "composite", "Number kind (composite, prime, scalar)")

	rootCmd.AddCommand(scaleCmd)
}
