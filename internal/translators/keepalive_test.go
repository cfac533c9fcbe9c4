package translators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
)

func TestJavaKeepAliveIsAnsweredImmediately(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerKeepalive(reg)
	sess := newFakeSession()

	reg.DispatchJava(context.Background(), sess, java.KeepAlive{ID: 42})

	require.Len(t, sess.javaOut, 1)
	ka, ok := sess.javaOut[0].(java.KeepAlive)
	require.True(t, ok)
	assert.Equal(t, int64(42), ka.ID)
}

func TestNetworkStackLatencyNeverReachesJava(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerKeepalive(reg)
	sess := newFakeSession()

	reg.DispatchBedrock(context.Background(), sess, bedrock.NetworkStackLatency{Timestamp: 100})

	assert.Empty(t, sess.javaOut)
	require.Len(t, sess.bedrockOut, 1)
	nsl, ok := sess.bedrockOut[0].(bedrock.NetworkStackLatency)
	require.True(t, ok)
	assert.True(t, nsl.FromServer)
}
