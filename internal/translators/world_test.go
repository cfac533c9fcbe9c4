package translators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossbridge/proxycore/internal/coords"
	"github.com/crossbridge/proxycore/internal/mapping"
	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
)

func TestWeatherStartStopTranslation(t *testing.T) {
	reg, tables := newTestRegistry(t)
	registerWorldEvents(reg, tables)
	sess := newFakeSession()

	reg.DispatchJava(context.Background(), sess, java.NotifyClient{Event: java.EventStartRain})

	require.Len(t, sess.bedrockOut, 1)
	le, ok := sess.bedrockOut[0].(bedrock.LevelEvent)
	require.True(t, ok)
	assert.Equal(t, bedrock.LevelEventStartRain, le.Event)
	assert.GreaterOrEqual(t, le.Data, int32(10000))
	assert.Less(t, le.Data, int32(60000))
}

func TestRainStrengthScalesToUint16Data(t *testing.T) {
	reg, tables := newTestRegistry(t)
	registerWorldEvents(reg, tables)
	sess := newFakeSession()

	reg.DispatchJava(context.Background(), sess, java.NotifyClient{Event: java.EventRainStrength, Value: 1.0})

	require.Len(t, sess.bedrockOut, 1)
	le := sess.bedrockOut[0].(bedrock.LevelEvent)
	assert.Equal(t, int32(coords.ScaleUnitIntervalToUint16(1.0)), le.Data)
}

func TestChangeGamemodeUpdatesWorldAndEmitsSetPlayerGameType(t *testing.T) {
	reg, tables := newTestRegistry(t)
	registerWorldEvents(reg, tables)
	sess := newFakeSession()

	reg.DispatchJava(context.Background(), sess, java.NotifyClient{Event: java.EventChangeGamemode, Value: 2})

	require.Len(t, sess.bedrockOut, 1)
	sg, ok := sess.bedrockOut[0].(bedrock.SetPlayerGameType)
	require.True(t, ok)
	assert.Equal(t, mapping.GamemodeAdventure, sg.Gamemode)
	assert.Equal(t, mapping.GamemodeAdventure, sess.World().Gamemode)
}

func TestInvalidBedIsIgnored(t *testing.T) {
	reg, tables := newTestRegistry(t)
	registerWorldEvents(reg, tables)
	sess := newFakeSession()

	reg.DispatchJava(context.Background(), sess, java.NotifyClient{Event: java.EventInvalidBed})

	assert.Empty(t, sess.bedrockOut)
}
