package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/combispec/valuemap"
)

func valuemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "valuemap",
		Short: "Value map utilities",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "fmt <file>",
		Short: "Print a value map in canonical form",
		Long: `Parses a value map and writes it back with explicit signs on every
literal. Malformed input fails with the offending line and column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := valuemap.Load(args[0])
			if err != nil {
				return err
			}
			_, err = m.WriteTo(cmd.OutOrStdout())
			return err
		},
	})

	return cmd
}
