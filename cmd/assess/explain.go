package main

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/yusufkecer/obesity-advisor/internal/scale"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "explain PARAM VALUE",
		Short:   "Explain a 0-3 survey answer for FCVC, FAF or TUE",
		Example: "  assess explain FCVC 2",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := cast.ToIntE(args[1])
			if err != nil {
				return fmt.Errorf("value must be an integer: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), scale.Explain(args[0], value))
			return nil
		},
	}
}
