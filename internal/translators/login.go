package translators

import (
	"context"

	"github.com/crossbridge/proxycore/internal/mapping"
	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
)

// registerLogin wires the login-sequencing translators (SPEC_FULL.md §4.5
// "Login sequencing"). Bedrock login is a self-contained handshake; opening
// the outbound Java TCP connection afterwards is performed by the session
// manager/pipeline composition root (an external collaborator per
// SPEC_FULL.md §1), not by this translator — the translator's job ends at
// recording identity and requesting the transition.
func registerLogin(reg *registry.Registry, pool *SkinWorkerPool) {
	reg.RegisterBedrock(bedrock.KindLogin, func(ctx context.Context, sess registry.SessionHandle, p bedrock.Packet) {
		login := p.(bedrock.Login)
		sess.SetIdentity(sessiontypes.Identity{
			DisplayName: login.DisplayName,
			PlayerUUID:  login.PlayerUUID,
			SkinBlob:    login.SkinBlob,
			Locale:      login.Locale,
		})
		sess.SetAuthState(sessiontypes.AwaitingJavaLogin)

		pool.Submit(ctx, sess, login.PlayerUUID, func(s registry.SessionHandle, res SkinResult) {
			s.Dispatch(func() {
				if res.Err != nil {
					return
				}
				id := s.Identity()
				id.SkinBlob = res.RGBA
				s.SetIdentity(id)
			})
		})
	})

	reg.RegisterJava(java.KindLoginSuccess, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		ls := p.(java.LoginSuccess)
		id := sess.Identity()
		if id.PlayerUUID == "" {
			id.PlayerUUID = ls.UUID
		}
		if id.DisplayName == "" {
			id.DisplayName = ls.Username
		}
		sess.SetIdentity(id)
	})
}

// registerJoinGame wires Java JoinGame -> Bedrock StartGame (SPEC_FULL.md
// §4.5 "Java JoinGame triggers the emission of a Bedrock StartGame ... at
// which point it transitions to Spawned").
func registerJoinGame(reg *registry.Registry, tables *mapping.Tables) {
	reg.RegisterJava(java.KindJoinGame, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		jg := p.(java.JoinGame)

		dimension := tables.Dimension.ToBedrock(jg.Dimension)
		gamemode := tables.Gamemode.ToBedrock(jg.Gamemode)

		world := sess.World()
		world.Dimension = dimension
		world.Gamemode = gamemode
		sess.SetWorld(world)

		runtimeID := sess.ReservePlayerRuntimeID()

		sess.SendBedrock(bedrock.StartGame{
			EntityRuntimeID: runtimeID,
			EntityUniqueID:  int64(runtimeID),
			Dimension:       dimension,
			Gamemode:        gamemode,
			SpawnX:          float32(world.SpawnX),
			SpawnY:          float32(world.SpawnY),
			SpawnZ:          float32(world.SpawnZ),
			ViewDistance:    world.ViewDistance,
		})

		sess.SetAuthState(sessiontypes.Spawned)
	})
}
