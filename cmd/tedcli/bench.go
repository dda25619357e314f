package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/bracket"
	"github.com/katalvlaran/apted/corpus"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var repeat int

	cmd := &cobra.Command{
		Use:   "bench <large-case.json>",
		Short: "Measure throughput of the engine on a large fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := corpus.LoadLargeCases(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadCostModel()
			if err != nil {
				return err
			}
			model := cfg.Model()

			bar := progressbar.Default(int64(len(cases)*repeat), "benchmarking")

			start := time.Now()
			var subproblems int64
			eng := apted.NewEngine(model)

			for i := 0; i < repeat; i++ {
				for _, c := range cases {
					t1, err := bracket.Parse(c.T1)
					if err != nil {
						return fmt.Errorf("case %s: tree1: %w", c.TestID, err)
					}
					t2, err := bracket.Parse(c.T2)
					if err != nil {
						return fmt.Errorf("case %s: tree2: %w", c.TestID, err)
					}

					if _, err := eng.Distance(t1, t2); err != nil {
						return fmt.Errorf("case %s: %w", c.TestID, err)
					}
					subproblems += eng.LastSubproblemCount()
					_ = bar.Add(1)
				}
			}

			elapsed := time.Since(start)
			total := len(cases) * repeat
			fmt.Fprintf(cmd.OutOrStdout(), "%d comparison(s) in %s (%.0f/s), %d subproblems solved\n",
				total, elapsed, float64(total)/elapsed.Seconds(), subproblems)

			return nil
		},
	}

	cmd.Flags().IntVar(&repeat, "repeat", 1, "number of times to replay the fixture, for more stable timing")

	return cmd
}
