package translators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
)

func TestChunkDataTranslatesSectionsAndRemembersCoord(t *testing.T) {
	reg, tables := newTestRegistry(t)
	registerChunk(reg, tables)
	sess := newFakeSession()

	states := make([]string, 4096)
	for i := range states {
		states[i] = "minecraft:stone"
	}

	reg.DispatchJava(context.Background(), sess, java.ChunkData{
		ChunkX:   1,
		ChunkZ:   2,
		Sections: []java.ChunkSection{{Y: 0, BlockStates: states}},
		Biomes:   []int32{1, 2, 3},
	})

	require.Len(t, sess.bedrockOut, 1)
	lc, ok := sess.bedrockOut[0].(bedrock.LevelChunk)
	require.True(t, ok)
	require.Len(t, lc.SubChunks, 1)
	assert.Len(t, lc.SubChunks[0].RuntimeIDs, 1, "single block type collapses to one palette entry")
	assert.Equal(t, []int32{1, 2, 3}, lc.Biomes)
	assert.True(t, sess.HasChunk(sessiontypes.ChunkCoord{X: 1, Z: 2}))
}

func TestUnloadChunkForgetsCoord(t *testing.T) {
	reg, tables := newTestRegistry(t)
	registerChunk(reg, tables)
	sess := newFakeSession()
	sess.RememberChunk(sessiontypes.ChunkCoord{X: 5, Z: 6})

	reg.DispatchJava(context.Background(), sess, java.UnloadChunk{ChunkX: 5, ChunkZ: 6})

	assert.False(t, sess.HasChunk(sessiontypes.ChunkCoord{X: 5, Z: 6}))
	require.Len(t, sess.bedrockOut, 1)
	_, ok := sess.bedrockOut[0].(bedrock.ChunkUnload)
	assert.True(t, ok)
}
