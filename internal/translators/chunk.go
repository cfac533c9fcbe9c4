package translators

import (
	"context"

	"github.com/crossbridge/proxycore/internal/mapping"
	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
)

// registerChunk wires chunk-column translation (SPEC_FULL.md §4.5 "Chunk
// translation"). Every Java block-state section becomes a Bedrock
// sub-chunk addressed through the block table's palette; biome,
// block-entity, and unload handling are carried along unchanged.
func registerChunk(reg *registry.Registry, tables *mapping.Tables) {
	reg.RegisterJava(java.KindChunkData, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		cd := p.(java.ChunkData)

		subChunks := make([]bedrock.SubChunk, 0, len(cd.Sections))
		for _, section := range cd.Sections {
			subChunks = append(subChunks, translateSection(tables, section))
		}

		blockEntities := make([]bedrock.BlockEntityNBT, 0, len(cd.BlockEntities))
		for _, be := range cd.BlockEntities {
			blockEntities = append(blockEntities, bedrock.BlockEntityNBT{
				X: be.X, Y: be.Y, Z: be.Z, Type: be.Type, Payload: be.Payload,
			})
		}

		sess.SendBedrock(bedrock.LevelChunk{
			ChunkX:        cd.ChunkX,
			ChunkZ:        cd.ChunkZ,
			SubChunks:     subChunks,
			Biomes:        cd.Biomes,
			BlockEntities: blockEntities,
		})
		sess.RememberChunk(sessiontypes.ChunkCoord{X: cd.ChunkX, Z: cd.ChunkZ})
	})

	reg.RegisterJava(java.KindUnloadChunk, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		uc := p.(java.UnloadChunk)
		sess.SendBedrock(bedrock.ChunkUnload{ChunkX: uc.ChunkX, ChunkZ: uc.ChunkZ})
		sess.ForgetChunk(sessiontypes.ChunkCoord{X: uc.ChunkX, Z: uc.ChunkZ})
	})
}

func translateSection(tables *mapping.Tables, section java.ChunkSection) bedrock.SubChunk {
	paletteIndex := make(map[int32]int32)
	runtimeIDs := make([]int32, 0, len(section.BlockStates))
	paletteIDs := make([]int32, len(section.BlockStates))

	for i, state := range section.BlockStates {
		bb := tables.Block.ToBedrock(state)
		idx, ok := paletteIndex[bb.RuntimeID]
		if !ok {
			idx = int32(len(runtimeIDs))
			paletteIndex[bb.RuntimeID] = idx
			runtimeIDs = append(runtimeIDs, bb.RuntimeID)
		}
		paletteIDs[i] = idx
	}

	return bedrock.SubChunk{
		Y:          section.Y,
		PaletteIDs: paletteIDs,
		RuntimeIDs: runtimeIDs,
	}
}
