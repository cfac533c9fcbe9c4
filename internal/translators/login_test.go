package translators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossbridge/proxycore/internal/mapping"
	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
)

func newTestRegistry(t *testing.T) (*registry.Registry, *mapping.Tables) {
	t.Helper()
	tables, err := mapping.Load()
	require.NoError(t, err)
	return registry.New(nil), tables
}

func TestBedrockLoginRecordsIdentityAndAwaitsJavaLogin(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerLogin(reg, NewSkinWorkerPool(nil, 0))
	sess := newFakeSession()

	reg.DispatchBedrock(context.Background(), sess, bedrock.Login{
		DisplayName: "Steve",
		PlayerUUID:  "uuid-1",
		Locale:      "en_US",
	})

	assert.Equal(t, "Steve", sess.Identity().DisplayName)
	assert.Equal(t, sessiontypes.AwaitingJavaLogin, sess.AuthState())
}

func TestLoginSuccessBackfillsIdentityOnlyWhenMissing(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerLogin(reg, NewSkinWorkerPool(nil, 0))
	sess := newFakeSession()
	sess.SetIdentity(sessiontypes.Identity{DisplayName: "Steve"})

	reg.DispatchJava(context.Background(), sess, java.LoginSuccess{UUID: "uuid-1", Username: "Alex"})

	id := sess.Identity()
	assert.Equal(t, "uuid-1", id.PlayerUUID)
	assert.Equal(t, "Steve", id.DisplayName, "existing display name is not overwritten")
}

func TestJoinGameTranslatesToStartGameAndSpawns(t *testing.T) {
	reg, tables := newTestRegistry(t)
	registerJoinGame(reg, tables)
	sess := newFakeSession()

	reg.DispatchJava(context.Background(), sess, java.JoinGame{
		Dimension: 0,
		Gamemode:  1,
	})

	require.Len(t, sess.bedrockOut, 1)
	sg, ok := sess.bedrockOut[0].(bedrock.StartGame)
	require.True(t, ok)
	assert.Equal(t, mapping.DimensionOverworld, sg.Dimension)
	assert.Equal(t, mapping.GamemodeCreative, sg.Gamemode)
	assert.Equal(t, sessiontypes.Spawned, sess.AuthState())
	assert.Equal(t, sess.PlayerRuntimeID(), sg.EntityRuntimeID)
}
