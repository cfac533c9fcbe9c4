// Package codec wraps the external Bedrock and Java wire codecs as typed
// decode/encode oracles (SPEC_FULL.md §4.2). The actual codec libraries
// (RakNet framing, NBT, varint encoding, zlib packet compression) are
// external collaborators per SPEC_FULL.md §1; this package only defines
// the interface the pipeline programs against and the version-negotiation
// contract around it.
package codec

import (
	"fmt"

	"github.com/crossbridge/proxycore/internal/disconnect"
	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
)

// BedrockCodec decodes/encodes one supported Bedrock wire-protocol version.
// A concrete implementation (not part of this module) wraps whatever
// third-party RakNet/NBT codec library is configured.
type BedrockCodec interface {
	// Version is the Bedrock protocol version this codec implements.
	Version() int32
	Decode(raw []byte) (bedrock.Packet, error)
	Encode(p bedrock.Packet) ([]byte, error)
}

// JavaCodec decodes/encodes the single compiled-in Java wire-protocol
// version (SPEC_FULL.md §6 "the fixed Java-edition protocol version
// compiled in").
type JavaCodec interface {
	Version() int32
	Decode(raw []byte) (java.Packet, error)
	Encode(p java.Packet) ([]byte, error)
}

// Adapter selects the right Bedrock codec by version and always encodes/
// decodes Java with the single compiled-in codec (SPEC_FULL.md §4.2).
type Adapter struct {
	bedrockByVersion map[int32]BedrockCodec
	minVersion       int32
	maxVersion       int32
	java             JavaCodec
}

// NewAdapter builds an Adapter from the supported Bedrock codec set and the
// single Java codec. The oldest and newest Bedrock versions present define
// the acceptance bounds (SPEC_FULL.md §4.2).
func NewAdapter(bedrockCodecs []BedrockCodec, javaCodec JavaCodec) (*Adapter, error) {
	if len(bedrockCodecs) == 0 {
		return nil, fmt.Errorf("codec: at least one bedrock codec is required")
	}
	if javaCodec == nil {
		return nil, fmt.Errorf("codec: a java codec is required")
	}
	a := &Adapter{
		bedrockByVersion: make(map[int32]BedrockCodec, len(bedrockCodecs)),
		java:             javaCodec,
	}
	for i, c := range bedrockCodecs {
		v := c.Version()
		a.bedrockByVersion[v] = c
		if i == 0 || v < a.minVersion {
			a.minVersion = v
		}
		if i == 0 || v > a.maxVersion {
			a.maxVersion = v
		}
	}
	return a, nil
}

// NegotiateBedrock selects the codec matching the peer's handshake version.
// If the version falls outside [min, max], the session is refused with a
// protocol-version-mismatch status before any state is allocated
// (SPEC_FULL.md §4.2, §8 "Boundary behavior").
func (a *Adapter) NegotiateBedrock(clientVersion int32) (BedrockCodec, *disconnect.Error) {
	if clientVersion < a.minVersion {
		return nil, disconnect.New(disconnect.KindVersionMismatch, disconnect.ReasonClientOutdated, nil)
	}
	if clientVersion > a.maxVersion {
		return nil, disconnect.New(disconnect.KindVersionMismatch, disconnect.ReasonServerOutdated, nil)
	}
	c, ok := a.bedrockByVersion[clientVersion]
	if !ok {
		return nil, disconnect.New(disconnect.KindVersionMismatch, disconnect.ReasonClientOutdated, nil)
	}
	return c, nil
}

// Java returns the single compiled-in Java codec.
func (a *Adapter) Java() JavaCodec { return a.java }

// MinVersion and MaxVersion report the negotiation bounds, primarily for
// tests and status reporting.
func (a *Adapter) MinVersion() int32 { return a.minVersion }
func (a *Adapter) MaxVersion() int32 { return a.maxVersion }
