// Package pipeline drives the two asynchronous per-session I/O loops
// (SPEC_FULL.md §4.6 "Pipeline"). Each loop only decodes bytes and posts the
// resulting packet into the session's mailbox; all translation happens on
// the session's own goroutine (internal/session.Session.Run), never here.
package pipeline

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/crossbridge/proxycore/internal/codec"
	"github.com/crossbridge/proxycore/internal/disconnect"
	"github.com/crossbridge/proxycore/internal/session"
	"github.com/crossbridge/proxycore/internal/telemetry"
)

// Source reads one framed, still-encoded packet from a transport. The real
// RakNet/TCP transports implement this; they are external collaborators
// (SPEC_FULL.md §1 "the raw RakNet and TCP transports ... treated as
// byte-packet channels").
type Source interface {
	Recv() ([]byte, error)
}

// RunBedrockLoop decodes frames from src and posts them into sess until src
// is exhausted, ctx is cancelled, or the session dies (SPEC_FULL.md §4.6
// "B->J loop: awaits a decoded Bedrock packet ... Packets are processed
// strictly in arrival order"). A malformed frame disconnects the peer with
// protocol_error rather than silently desyncing the connection.
func RunBedrockLoop(ctx context.Context, sess *session.Session, src Source, c codec.BedrockCodec, log telemetry.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sess.Done():
			return
		default:
		}

		raw, err := src.Recv()
		if err != nil {
			if !errors.Is(err, io.EOF) && log != nil {
				log.Warn(ctx, "bedrock transport read failed", "session", sess.ID(), "err", err)
			}
			sess.Disconnect(string(disconnect.ReasonProtocolError))
			return
		}

		pkt, err := c.Decode(raw)
		if err != nil {
			if log != nil {
				log.Warn(ctx, "bedrock decode failed", "session", sess.ID(), "err", err)
			}
			sess.Disconnect(string(disconnect.ReasonProtocolError))
			return
		}

		if !sess.PostBedrock(pkt) {
			return
		}
	}
}

// RunJavaLoop is the J->B counterpart of RunBedrockLoop.
func RunJavaLoop(ctx context.Context, sess *session.Session, src Source, c codec.JavaCodec, log telemetry.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sess.Done():
			return
		default:
		}

		raw, err := src.Recv()
		if err != nil {
			if !errors.Is(err, io.EOF) && log != nil {
				log.Warn(ctx, "java transport read failed", "session", sess.ID(), "err", err)
			}
			sess.Disconnect(string(disconnect.ReasonProtocolError))
			return
		}

		pkt, err := c.Decode(raw)
		if err != nil {
			if log != nil {
				log.Warn(ctx, "java decode failed", "session", sess.ID(), "err", err)
			}
			sess.Disconnect(string(disconnect.ReasonProtocolError))
			return
		}

		if !sess.PostJava(pkt) {
			return
		}
	}
}

// NewTickLimiter builds the token bucket the tick loop waits on, one token
// refilling every interval (SPEC_FULL.md §4.6 "a shared scheduler wakes
// every session every 50ms"). Using a rate.Limiter instead of a bare
// time.Ticker means the same primitive can also bound burstier
// keepalive/movement-flush pacing if a future tick handler needs it, without
// introducing a second timing mechanism.
func NewTickLimiter(interval time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(interval), 1)
}

// RunTickLoop paces sess.PostTick() calls with limiter until ctx is
// cancelled or the session dies (SPEC_FULL.md §4.6 "Ticking").
func RunTickLoop(ctx context.Context, sess *session.Session, limiter *rate.Limiter) {
	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		select {
		case <-sess.Done():
			return
		default:
		}
		if !sess.PostTick() {
			return
		}
	}
}
