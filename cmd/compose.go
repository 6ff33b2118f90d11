package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/riemann-kernel/kernel/number"
)

var (
	composeLeftKind  string
	composeRightKind string
)

var composeCmd = &cobra.Command{
	Use:   "compose <left> <right>",
	Short: "Compose two numbers and factorize the product",
	Long:  "Multiply two Numbers and decompose the product as a fresh Composite. The operands' own factors are not reused.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		leftKind, err := number.ParseKind(composeLeftKind)
		if err != nil {
			logrus.Fatalf("--left-kind: %v", err)
		}
		rightKind, err := number.ParseKind(composeRightKind)
		if err != nil {
			logrus.Fatalf("--right-kind: %v", err)
		}

		left := number.New(leftKind, mustBigInt("left", args[0]))
		right := number.New(rightKind, mustBigInt("right", args[1]))
		if err := writeComposeReport(os.Stdout, left, right); err != nil {
			logrus.Fatalf("Compose failed: %v", err)
		}
	},
}

func init() {
	composeCmd.Flags().StringVar(&composeLeftKind, "left-kind", "composite", "Kind of the left operand (composite, prime, scalar)")
	composeCmd.Flags().StringVar(&composeRightKind, "right-kind", "composite", "Kind of the right operand (composite, prime, scalar)")

	rootCmd.AddCommand(composeCmd)
}
