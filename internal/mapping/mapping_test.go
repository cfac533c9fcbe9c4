package mapping

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T) *Tables {
	t.Helper()
	tables, err := Load()
	require.NoError(t, err)
	return tables
}

func TestBlockTableRoundTripKnown(t *testing.T) {
	tables := mustLoad(t)
	require.Greater(t, tables.Block.Len(), 0)

	bedrock := tables.Block.ToBedrock("minecraft:stone")
	assert.Equal(t, "minecraft:stone", bedrock.Name)
	assert.Equal(t, "minecraft:stone", tables.Block.ToJava(bedrock.RuntimeID))
}

func TestBlockTableUnknownFallsBack(t *testing.T) {
	tables := mustLoad(t)
	bedrock := tables.Block.ToBedrock("minecraft:does_not_exist_in_either_edition")
	assert.Equal(t, FallbackBlockName, bedrock.Name)
	assert.Equal(t, FallbackBlockRuntimeID, bedrock.RuntimeID)
	assert.Equal(t, FallbackJavaBlock, tables.Block.ToJava(424242))
}

// TestBlockTableRoundTripProperty verifies SPEC_FULL.md §8's round-trip law:
// to_java(to_bedrock(x)) == x for every known Java block state.
func TestBlockTableRoundTripProperty(t *testing.T) {
	tables := mustLoad(t)
	knownKeys := make([]string, 0, len(tables.Block.javaToBedrock))
	for k := range tables.Block.javaToBedrock {
		knownKeys = append(knownKeys, k)
	}
	require.NotEmpty(t, knownKeys)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("to_java(to_bedrock(x)) == x for known states", prop.ForAll(
		func(idx int) bool {
			key := knownKeys[idx%len(knownKeys)]
			bedrock := tables.Block.ToBedrock(key)
			return tables.Block.ToJava(bedrock.RuntimeID) == key
		},
		gen.IntRange(0, 10000),
	))

	properties.TestingRun(t)
}

func TestItemTableRoundTrip(t *testing.T) {
	tables := mustLoad(t)
	bedrock := tables.Item.ToBedrock(5) // diamond_sword
	assert.Equal(t, int32(5), tables.Item.ToJava(bedrock))
}

func TestItemTableUnknownFallsBackToAir(t *testing.T) {
	tables := mustLoad(t)
	assert.Equal(t, FallbackItem, tables.Item.ToBedrock(999999))
}

func TestEntityTableRoundTrip(t *testing.T) {
	tables := mustLoad(t)
	assert.Equal(t, "minecraft:zombie", tables.Entity.ToBedrock("minecraft:zombie"))
	assert.Equal(t, "minecraft:zombie", tables.Entity.ToJava("minecraft:zombie"))
}

func TestEntityTableUnknownFallsBack(t *testing.T) {
	tables := mustLoad(t)
	assert.Equal(t, FallbackEntityKind, tables.Entity.ToBedrock("minecraft:some_future_mob"))
}

func TestDimensionAndGamemodeScenarios(t *testing.T) {
	tables := mustLoad(t)

	// SPEC_FULL.md §8 scenario 1: JoinGame(dimension=0) -> OVERWORLD.
	assert.Equal(t, DimensionOverworld, tables.Dimension.ToBedrock(0))
	// SPEC_FULL.md §8 scenario 1: gamemode=1 -> CREATIVE.
	assert.Equal(t, GamemodeCreative, tables.Gamemode.ToBedrock(1))
	// SPEC_FULL.md §8 scenario 3: CHANGE_GAMEMODE value=2 -> ADVENTURE.
	assert.Equal(t, GamemodeAdventure, tables.Gamemode.ToBedrock(2))
}

func TestSoundAndBiomeFallback(t *testing.T) {
	tables := mustLoad(t)
	assert.Equal(t, FallbackSound, tables.Sound.ToBedrock("entity.unknown.sound"))
	assert.Equal(t, FallbackBiome, tables.Biome.ToBedrock(9999))
}
