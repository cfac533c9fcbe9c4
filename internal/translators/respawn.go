package translators

import (
	"context"

	"github.com/crossbridge/proxycore/internal/mapping"
	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
)

// registerRespawn wires Java Respawn -> Bedrock Respawn (SPEC_FULL.md
// SUPPLEMENTED FEATURES #4). A dismount-flagged respawn is a full dimension
// change, which invalidates every entity id the session was tracking, so the
// entity table is cleared before the new world's entities start arriving.
func registerRespawn(reg *registry.Registry, tables *mapping.Tables) {
	reg.RegisterJava(java.KindRespawn, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		rp := p.(java.Respawn)

		dimension := tables.Dimension.ToBedrock(rp.Dimension)
		gamemode := tables.Gamemode.ToBedrock(rp.Gamemode)

		world := sess.World()
		world.Dimension = dimension
		world.Gamemode = gamemode
		sess.SetWorld(world)

		if rp.DismountFlag {
			sess.ClearEntities()
		}

		sess.SendBedrock(bedrock.Respawn{
			X:               float32(world.SpawnX),
			Y:               float32(world.SpawnY),
			Z:               float32(world.SpawnZ),
			State:           0,
			EntityRuntimeID: sess.PlayerRuntimeID(),
		})
	})
}
