package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "assess",
		Short:        "Obesity category and lifestyle advice from survey answers",
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newExplainCmd())
	return root
}
