package main

import (
	"fmt"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/bracket"
	"github.com/katalvlaran/apted/corpus"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <correctness-cases.json>",
		Short: "Check the engine's output against a correctness fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := corpus.LoadCorrectnessCases(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadCostModel()
			if err != nil {
				return err
			}
			model := cfg.Model()

			bar := progressbar.Default(int64(len(cases)), "verifying")
			failures := 0

			for _, c := range cases {
				t1, err := bracket.Parse(c.T1)
				if err != nil {
					return fmt.Errorf("case %s: tree1: %w", c.TestID, err)
				}
				t2, err := bracket.Parse(c.T2)
				if err != nil {
					return fmt.Errorf("case %s: tree2: %w", c.TestID, err)
				}

				got, err := apted.Distance(t1, t2, model)
				if err != nil {
					return fmt.Errorf("case %s: %w", c.TestID, err)
				}
				if got != c.ExpectedDistance {
					failures++
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: want %g, got %g\n", c.TestID, c.ExpectedDistance, got)
				}
				_ = bar.Add(1)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d cases passed\n", len(cases)-failures, len(cases))
			if failures > 0 {
				return fmt.Errorf("tedcli: %d case(s) failed", failures)
			}
			return nil
		},
	}

	return cmd
}
