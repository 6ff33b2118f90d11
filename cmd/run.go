package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runLambda string // Scale factor for the invariance check

// runCmd executes the demonstration kernel
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compose Prime(2) with Prime(29) and check scale invariance",
	Run: func(cmd *cobra.Command, args []string) {
		lambda := mustBigInt("--lambda", runLambda)
		logrus.Debugf("Running kernel with lambda=%s", lambda)
		if err := writeKernelReport(os.Stdout, lambda); err != nil {
			logrus.Fatalf("Kernel failed: %v", err)
		}
	},
}

func init() {
	runCmd.Flags().StringVar(&runLambda, "lambda", "2", "Scale factor used for the invariance check")

	rootCmd.AddCommand(runCmd)
}
