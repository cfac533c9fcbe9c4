package mapping

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var embeddedData embed.FS

// Tables bundles every mapping table the translators need. It is built once
// by Load and shared, read-only, across every session (SPEC_FULL.md §3).
type Tables struct {
	Block     *BlockTable
	Item      *ItemTable
	Entity    *EntityTable
	Dimension *DimensionTable
	Gamemode  *GamemodeTable
	Sound     *SoundTable
	Biome     *BiomeTable
}

// Load reads every embedded resource file and builds the process-wide
// mapping tables. It is intended to be called exactly once at startup.
func Load() (*Tables, error) {
	block, err := loadBlockTable()
	if err != nil {
		return nil, fmt.Errorf("load block table: %w", err)
	}
	item, err := loadItemTable()
	if err != nil {
		return nil, fmt.Errorf("load item table: %w", err)
	}
	entity, err := loadEntityTable()
	if err != nil {
		return nil, fmt.Errorf("load entity table: %w", err)
	}
	dimension, err := loadDimensionTable()
	if err != nil {
		return nil, fmt.Errorf("load dimension table: %w", err)
	}
	gamemode, err := loadGamemodeTable()
	if err != nil {
		return nil, fmt.Errorf("load gamemode table: %w", err)
	}
	sound, err := loadSoundTable()
	if err != nil {
		return nil, fmt.Errorf("load sound table: %w", err)
	}
	biome, err := loadBiomeTable()
	if err != nil {
		return nil, fmt.Errorf("load biome table: %w", err)
	}
	return &Tables{
		Block:     block,
		Item:      item,
		Entity:    entity,
		Dimension: dimension,
		Gamemode:  gamemode,
		Sound:     sound,
		Biome:     biome,
	}, nil
}

func readEmbedded(name string, out any) error {
	b, err := embeddedData.ReadFile("data/" + name)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
