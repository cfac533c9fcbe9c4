package translators

import (
	"context"

	"github.com/crossbridge/proxycore/internal/coords"
	"github.com/crossbridge/proxycore/internal/mapping"
	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
)

// registerEntityLifecycle wires entity spawn/destroy translation
// (SPEC_FULL.md §4.5 "Entity lifecycle"). Registering an entity allocates
// its Bedrock runtime id; unregistering frees the mapping.
func registerEntityLifecycle(reg *registry.Registry, tables *mapping.Tables) {
	reg.RegisterJava(java.KindSpawnEntity, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		se := p.(java.SpawnEntity)
		kind := tables.Entity.ToBedrock(se.Kind)
		rec := sess.RegisterEntity(se.EntityID, kind, se.X, se.Y, se.Z, se.Yaw, se.Pitch)
		feet := coords.JavaToBedrockFeet(coords.Vec3{X: se.X, Y: se.Y, Z: se.Z}, 0)
		sess.SendBedrock(bedrock.AddEntity{
			EntityRuntimeID: rec.BedrockID,
			EntityUniqueID:  int64(rec.BedrockID),
			Kind:            kind,
			X:               float32(feet.X),
			Y:               float32(feet.Y),
			Z:               float32(feet.Z),
			Pitch:           se.Pitch,
			Yaw:             coords.JavaYawToBedrock(se.Yaw),
		})
	})

	reg.RegisterJava(java.KindSpawnPlayer, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		sp := p.(java.SpawnPlayer)
		rec := sess.RegisterEntity(sp.EntityID, "minecraft:player", sp.X, sp.Y, sp.Z, sp.Yaw, sp.Pitch)
		feet := coords.JavaToBedrockFeet(coords.Vec3{X: sp.X, Y: sp.Y, Z: sp.Z}, coords.PlayerEyeHeight)
		sess.SendBedrock(bedrock.AddPlayer{
			EntityRuntimeID: rec.BedrockID,
			PlayerUUID:      sp.PlayerUUID,
			X:               float32(feet.X),
			Y:               float32(feet.Y),
			Z:               float32(feet.Z),
			Pitch:           sp.Pitch,
			Yaw:             coords.JavaYawToBedrock(sp.Yaw),
		})
	})

	reg.RegisterJava(java.KindDestroyEntities, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		de := p.(java.DestroyEntities)
		for _, javaID := range de.EntityIDs {
			rec, ok := sess.UnregisterEntity(javaID)
			if !ok {
				continue
			}
			sess.SendBedrock(bedrock.RemoveEntity{EntityRuntimeID: rec.BedrockID})
		}
	})
}

// registerMovement wires position/orientation translation (SPEC_FULL.md
// §4.5 "Movement packets translate coordinate frames"). The controlling
// player's own position uses the eye-height offset; other entities use
// their feet position directly, matching the Java wire format's encoding
// for each packet kind.
func registerMovement(reg *registry.Registry) {
	reg.RegisterJava(java.KindPlayerPositionAndLook, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		pp := p.(java.PlayerPositionAndLook)
		feet := coords.JavaToBedrockFeet(coords.Vec3{X: pp.X, Y: pp.Y, Z: pp.Z}, coords.PlayerEyeHeight)
		sess.SendBedrock(bedrock.MovePlayer{
			EntityRuntimeID: sess.PlayerRuntimeID(),
			X:               float32(feet.X),
			Y:               float32(feet.Y),
			Z:               float32(feet.Z),
			Pitch:           pp.Pitch,
			Yaw:             coords.JavaYawToBedrock(pp.Yaw),
			HeadYaw:         coords.JavaYawToBedrock(pp.Yaw),
			OnGround:        pp.OnGround,
		})
	})

	reg.RegisterJava(java.KindEntityTeleport, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		et := p.(java.EntityTeleport)
		rec, ok := sess.GetEntityByJavaID(et.EntityID)
		if !ok {
			return
		}
		feet := coords.JavaToBedrockFeet(coords.Vec3{X: et.X, Y: et.Y, Z: et.Z}, 0)
		sess.UpdateEntityPosition(et.EntityID, et.X, et.Y, et.Z, et.Yaw, et.Pitch)
		sess.SendBedrock(bedrock.MoveEntity{
			EntityRuntimeID: rec.BedrockID,
			X:               float32(feet.X),
			Y:               float32(feet.Y),
			Z:               float32(feet.Z),
			Pitch:           et.Pitch,
			Yaw:             coords.JavaYawToBedrock(et.Yaw),
			HeadYaw:         coords.JavaYawToBedrock(et.Yaw),
			OnGround:        et.OnGround,
		})
	})

	reg.RegisterJava(java.KindEntityRelativeMove, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		em := p.(java.EntityRelativeMove)
		rec, ok := sess.GetEntityByJavaID(em.EntityID)
		if !ok {
			return
		}
		// Java encodes the delta in 1/4096ths of a block relative to the
		// entity's last-known position.
		const unit = 1.0 / 4096.0
		x := rec.X + float64(em.DeltaX)*unit
		y := rec.Y + float64(em.DeltaY)*unit
		z := rec.Z + float64(em.DeltaZ)*unit
		sess.UpdateEntityPosition(em.EntityID, x, y, z, em.Yaw, em.Pitch)

		feet := coords.JavaToBedrockFeet(coords.Vec3{X: x, Y: y, Z: z}, 0)
		sess.SendBedrock(bedrock.MoveEntity{
			EntityRuntimeID: rec.BedrockID,
			X:               float32(feet.X),
			Y:               float32(feet.Y),
			Z:               float32(feet.Z),
			Pitch:           em.Pitch,
			Yaw:             coords.JavaYawToBedrock(em.Yaw),
			HeadYaw:         coords.JavaYawToBedrock(em.Yaw),
			OnGround:        em.OnGround,
		})
	})
}
