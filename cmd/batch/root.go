package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "faultmesh-batch",
	Short: "Run task-redistribution strategies over faulted agent networks",
	Long: `faultmesh-batch runs one or more migration strategies (hgtm, mpftm,
gbma, mmlma) against task/agent/graph input triples and reports the
evaluator's cost and survival figures for each run.`,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
