package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/sample"
)

var sampleAll bool

var sampleCmd = &cobra.Command{
	Use:   "sample [dir]",
	Short: "Creates sample input files for trying out the analyzer.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		if sampleAll {
			paths, err := sample.EnsureAll(dir)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		}

		path, err := sample.Ensure(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	sampleCmd.Flags().BoolVar(&sampleAll, "all", false,
		"Create one sample per supported format, not just sample.txt")
	rootCmd.AddCommand(sampleCmd)
}
