package main

import "github.com/katalvlaran/apted/costmodel"

// LabelCostConfig is the shape of a user-editable YAML/TOML cost
// config: per-label delete/insert weights with a default for labels
// not listed, and a flat rename cost applied whenever two labels
// differ.
type LabelCostConfig struct {
	DefaultDeleteCost float64            `mapstructure:"default_delete_cost"`
	DefaultInsertCost float64            `mapstructure:"default_insert_cost"`
	DeleteCosts       map[string]float64 `mapstructure:"delete_costs"`
	InsertCosts       map[string]float64 `mapstructure:"insert_costs"`
	RenameCost        float64            `mapstructure:"rename_cost"`
}

// Model builds a costmodel.Model[string] from cfg. A nil cfg yields
// the classical unit-cost model.
func (cfg *LabelCostConfig) Model() costmodel.Model[string] {
	if cfg == nil {
		return costmodel.NewStringUnitCost()
	}

	deleteDefault, insertDefault, renameCost := cfg.DefaultDeleteCost, cfg.DefaultInsertCost, cfg.RenameCost
	if deleteDefault == 0 {
		deleteDefault = 1
	}
	if insertDefault == 0 {
		insertDefault = 1
	}
	if renameCost == 0 {
		renameCost = 1
	}

	return costmodel.NewLabelCost(
		func(label string) float64 {
			if w, ok := cfg.DeleteCosts[label]; ok {
				return w
			}
			return deleteDefault
		},
		func(label string) float64 {
			if w, ok := cfg.InsertCosts[label]; ok {
				return w
			}
			return insertDefault
		},
		func(a, b string) float64 {
			if a == b {
				return 0
			}
			return renameCost
		},
	)
}
