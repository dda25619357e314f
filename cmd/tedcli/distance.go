package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/bracket"
	"github.com/spf13/cobra"
)

func newDistanceCmd() *cobra.Command {
	var fromFile bool

	cmd := &cobra.Command{
		Use:   "distance <tree1> <tree2>",
		Short: "Compute the tree edit distance between two bracket-notation trees",
		Long: `Compute the tree edit distance between two trees.

By default tree1 and tree2 are taken as literal bracket-notation
strings; pass --file to treat them as paths to files containing one
bracket-notation tree each.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s1, s2 := args[0], args[1]
			if fromFile {
				b1, err := os.ReadFile(s1)
				if err != nil {
					return err
				}
				b2, err := os.ReadFile(s2)
				if err != nil {
					return err
				}
				s1, s2 = string(b1), string(b2)
			}

			t1, err := bracket.Parse(s1)
			if err != nil {
				return fmt.Errorf("tree1: %w", err)
			}
			t2, err := bracket.Parse(s2)
			if err != nil {
				return fmt.Errorf("tree2: %w", err)
			}

			cfg, err := loadCostModel()
			if err != nil {
				return err
			}

			d, err := apted.Distance(t1, t2, cfg.Model())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", d)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromFile, "file", false, "treat tree1/tree2 as file paths instead of literal bracket strings")

	return cmd
}
