package translators

import (
	"context"

	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
)

// registerKeepalive wires the two liveness-probe legs (SPEC_FULL.md
// SUPPLEMENTED FEATURES #3). A Java KeepAlive is answered immediately on
// the Java leg; a Bedrock NetworkStackLatency ping is answered directly on
// the Bedrock leg and never reaches Java, since Java has no concept of it.
func registerKeepalive(reg *registry.Registry) {
	reg.RegisterJava(java.KindKeepAlive, func(_ context.Context, sess registry.SessionHandle, p java.Packet) {
		ka := p.(java.KeepAlive)
		sess.SendJava(java.KeepAlive{ID: ka.ID})
	})

	reg.RegisterBedrock(bedrock.KindNetworkStackLatency, func(_ context.Context, sess registry.SessionHandle, p bedrock.Packet) {
		nsl := p.(bedrock.NetworkStackLatency)
		sess.SendBedrock(bedrock.NetworkStackLatency{Timestamp: nsl.Timestamp, FromServer: true})
	})
}
