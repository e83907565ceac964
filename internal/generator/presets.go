package generator

import "github.com/fablegen/fable/internal/internet"

// Preset defines a named configuration for record generation.
type Preset string

const (
	// PresetDemo creates a small batch of rich records on private
	// addresses, sized for eyeballing.
	PresetDemo Preset = "demo"

	// PresetBulk creates a few thousand records for seeding fixtures.
	PresetBulk Preset = "bulk"

	// PresetStress creates a large batch for load testing consumers.
	PresetStress Preset = "stress"
)

// Presets lists the available presets in display order.
var Presets = []Preset{PresetDemo, PresetBulk, PresetStress}

// PresetConfig holds the generation parameters for a preset.
type PresetConfig struct {
	// Number of records to generate
	Count int

	// Named network record addresses are drawn from
	Network string

	// Bio sentence length bounds (words)
	BioWordsMin int64
	BioWordsMax int64
}

// GetPresetConfig returns the configuration for a preset; unknown presets
// fall back to demo.
func GetPresetConfig(preset Preset) PresetConfig {
	switch preset {
	case PresetBulk:
		return PresetConfig{
			Count:       5000,
			Network:     internet.NetworkAny,
			BioWordsMin: 5,
			BioWordsMax: 12,
		}

	case PresetStress:
		return PresetConfig{
			Count:       100000,
			Network:     internet.NetworkAny,
			BioWordsMin: 3,
			BioWordsMax: 6,
		}

	default:
		return PresetConfig{
			Count:       25,
			Network:     internet.NetworkPrivateA,
			BioWordsMin: 8,
			BioWordsMax: 16,
		}
	}
}
