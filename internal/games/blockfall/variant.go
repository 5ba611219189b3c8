package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Variant selects the randomizer and kick rules of a game.
type Variant int

const (
	// VariantClassic draws from a bag with a long history and lets
	// rotations bump one row down.
	VariantClassic Variant = iota
	// VariantLoose uses a short bag history and no row bump.
	VariantLoose
)

func init() {
	registry.Register("blockfall", func() registry.Game { return New() })
	registry.Register("blockfall_loose", func() registry.Game { return NewLoose() })
}

// ID returns the registry id of the variant.
func (v Variant) ID() string {
	if v == VariantLoose {
		return "blockfall_loose"
	}
	return "blockfall"
}

// Title returns the display name of the variant.
func (v Variant) Title() string {
	if v == VariantLoose {
		return "Blockfall (Loose)"
	}
	return "Blockfall"
}

// apply forces the variant's rules onto a loaded config.
func (v Variant) apply(cfg *config.BlockfallConfig) {
	if v == VariantLoose {
		cfg.Bag.History = 4
		cfg.Rotation.RowBump = false
	}
}
