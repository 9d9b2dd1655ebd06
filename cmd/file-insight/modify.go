package main

import (
	"github.com/spf13/cobra"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
)

var modifyCmd = &cobra.Command{
	Use:   "modify [paths...]",
	Short: "Writes annotated copies of files instead of analysis reports.",
	Long: `modify reads each input as text and writes a companion with a statistics
header, numbered lines for known text formats, and a footer describing the
modifications. It never interprets the content, so any readable file works.

Without arguments it starts the interactive session in modify mode.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, insight.ModeModify)
	},
}

func init() {
	rootCmd.AddCommand(modifyCmd)
}
