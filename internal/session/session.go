// Package session implements the per-connection mutable state and its
// mailbox-serialized lifecycle (SPEC_FULL.md §3 "Session", §4.4 "Session
// State", §4.6 "Pipeline"). All mutation of a Session's fields happens
// inside its own mailbox-processing goroutine; producers on either leg only
// ever enqueue messages (SPEC_FULL.md §9 "Per-session thread safety").
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/crossbridge/proxycore/internal/codec"
	"github.com/crossbridge/proxycore/internal/config"
	"github.com/crossbridge/proxycore/internal/disconnect"
	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
	"github.com/crossbridge/proxycore/internal/telemetry"
)

// Sink is a peer packet handle: something that accepts encoded bytes and
// can be closed (SPEC_FULL.md §3 "Bedrock peer handle (packet sink) and
// Java peer handle (packet sink)"). The real RakNet/TCP transports
// implement this; they are external collaborators (SPEC_FULL.md §1).
type Sink interface {
	Send(data []byte) error
	Close() error
}

type msgKind int

const (
	msgJava msgKind = iota
	msgBedrock
	msgTick
	msgFunc
	msgDisconnect
)

type mailboxMsg struct {
	kind       msgKind
	javaPkt    java.Packet
	bedrockPkt bedrock.Packet
	fn         func()
}

// Session is one accepted client and its paired outbound Java connection
// (SPEC_FULL.md §3 "Session"). Exported accessors implement
// registry.SessionHandle so translators can only reach the operations
// SPEC_FULL.md §4.4 names.
type Session struct {
	id  string
	cfg config.Config
	log telemetry.Logger
	met telemetry.Metrics
	reg *registry.Registry

	javaCodec    codec.JavaCodec
	bedrockCodec codec.BedrockCodec

	javaOut    *outboundBuffer
	bedrockOut *outboundBuffer

	mailbox chan mailboxMsg
	done    chan struct{}

	authState int32 // sessiontypes.AuthState, accessed atomically from outside the mailbox goroutine

	// Everything below is mutated exclusively inside the mailbox-processing
	// goroutine (run). Reads from translators happen there too, so no lock
	// is needed for these fields.
	identity sessiontypes.Identity
	world    sessiontypes.WorldView

	entitiesByJava    map[int32]*sessiontypes.EntityRecord
	entitiesByBedrock map[uint64]*sessiontypes.EntityRecord
	nextBedrockID     uint64
	playerRuntimeID   uint64

	chunks map[sessiontypes.ChunkCoord]struct{}

	windows map[int32]sessiontypes.Window

	forms       map[uint32]*pendingFormEntry
	formCounter uint32

	tick uint64

	disconnectOnce   sync.Once
	disconnectReason disconnect.Reason
}

type pendingFormEntry struct {
	form     *sessiontypes.PendingForm
	deadline time.Time
}

// Config bundles the collaborators a Session needs at construction time.
type Config struct {
	ID           string
	Cfg          config.Config
	Log          telemetry.Logger
	Metrics      telemetry.Metrics
	Registry     *registry.Registry
	JavaCodec    codec.JavaCodec
	BedrockCodec codec.BedrockCodec
	JavaSink     Sink
	BedrockSink  Sink
}

// New constructs a Session in the Unauthenticated state. The caller must
// call Run in its own goroutine to start processing the mailbox.
func New(c Config) *Session {
	s := &Session{
		id:                c.ID,
		cfg:               c.Cfg,
		log:               c.Log,
		met:               c.Metrics,
		reg:               c.Registry,
		javaCodec:         c.JavaCodec,
		bedrockCodec:      c.BedrockCodec,
		mailbox:           make(chan mailboxMsg, 256),
		done:              make(chan struct{}),
		entitiesByJava:    make(map[int32]*sessiontypes.EntityRecord),
		entitiesByBedrock: make(map[uint64]*sessiontypes.EntityRecord),
		chunks:            make(map[sessiontypes.ChunkCoord]struct{}),
		windows:           make(map[int32]sessiontypes.Window),
		forms:             make(map[uint32]*pendingFormEntry),
		nextBedrockID:     1,
	}
	s.javaOut = newOutboundBuffer(c.JavaSink, c.Cfg.OutboundBackpressureLimit, func() {
		s.Disconnect(string(disconnect.ReasonBackpressure))
	})
	s.bedrockOut = newOutboundBuffer(c.BedrockSink, c.Cfg.OutboundBackpressureLimit, func() {
		s.Disconnect(string(disconnect.ReasonBackpressure))
	})
	return s
}

// ID returns the session's stable, opaque identifier.
func (s *Session) ID() string { return s.id }

// Done is closed once the session reaches Dead and its mailbox loop exits.
func (s *Session) Done() <-chan struct{} { return s.done }

// AuthState returns the current lifecycle state. Safe to call from any
// goroutine (SPEC_FULL.md §4.7 "Tick dispatches to all live sessions" reads
// this outside the mailbox goroutine for bookkeeping).
func (s *Session) AuthState() sessiontypes.AuthState {
	return sessiontypes.AuthState(atomic.LoadInt32(&s.authState))
}

// SetAuthState transitions the lifecycle state. Only called from within the
// mailbox goroutine except during construction/admission.
func (s *Session) SetAuthState(v sessiontypes.AuthState) {
	atomic.StoreInt32(&s.authState, int32(v))
}

func (s *Session) Identity() sessiontypes.Identity     { return s.identity }
func (s *Session) SetIdentity(v sessiontypes.Identity) { s.identity = v }
func (s *Session) World() sessiontypes.WorldView       { return s.world }
func (s *Session) SetWorld(v sessiontypes.WorldView)   { s.world = v }
func (s *Session) Tick() uint64                        { return s.tick }

// PostJava enqueues a decoded Java packet for translation. Called from the
// J->B transport-reading loop; returns false if the session is already
// dead (SPEC_FULL.md §8 "No packet is emitted on a session in Dead" implies
// no further packets are accepted either).
func (s *Session) PostJava(p java.Packet) bool {
	return s.post(mailboxMsg{kind: msgJava, javaPkt: p})
}

// PostBedrock is the Bedrock-leg counterpart of PostJava.
func (s *Session) PostBedrock(p bedrock.Packet) bool {
	return s.post(mailboxMsg{kind: msgBedrock, bedrockPkt: p})
}

// PostTick delivers one scheduler pulse (SPEC_FULL.md §4.6 "Ticking").
func (s *Session) PostTick() bool {
	return s.post(mailboxMsg{kind: msgTick})
}

// Dispatch re-enters the session's mailbox with an arbitrary closure. This
// is how long work started off the mailbox goroutine (e.g. a skin fetch
// run on a worker pool) reports its result back without the translator
// that started it ever blocking (SPEC_FULL.md §4.5 "dispatched to a shared
// worker pool and re-enters via a completion message").
func (s *Session) Dispatch(fn func()) {
	s.post(mailboxMsg{kind: msgFunc, fn: fn})
}

func (s *Session) post(m mailboxMsg) bool {
	select {
	case s.mailbox <- m:
		return true
	case <-s.done:
		return false
	}
}

// Run processes the mailbox until the session reaches Dead or ctx is
// cancelled. It is the only goroutine that ever mutates Session's fields.
func (s *Session) Run(ctx context.Context) {
	for {
		select {
		case m := <-s.mailbox:
			s.handle(ctx, m)
			if s.AuthState() == sessiontypes.Dead {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) handle(ctx context.Context, m mailboxMsg) {
	defer func() {
		if r := recover(); r != nil {
			if s.log != nil {
				s.log.Error(ctx, "translator panicked", "session", s.id, "recover", r)
			}
			if s.met != nil {
				s.met.IncCounter("proxycore.translator.panic", 1, "session", s.id)
			}
			s.requestDisconnectLocked(disconnect.ReasonInternalError)
		}
	}()

	switch m.kind {
	case msgJava:
		s.reg.DispatchJava(ctx, s, m.javaPkt)
	case msgBedrock:
		s.reg.DispatchBedrock(ctx, s, m.bedrockPkt)
	case msgTick:
		s.tick++
		s.expirePendingForms(time.Now())
		s.reg.DispatchTick(ctx, s)
	case msgFunc:
		m.fn()
	case msgDisconnect:
		s.teardown(ctx)
	}
}

// Disconnect requests the session end with reason. Safe to call
// concurrently and from any goroutine; only the first call's reason is
// kept and exactly one teardown runs (SPEC_FULL.md §8 scenario 6).
func (s *Session) Disconnect(reason string) {
	first := false
	s.disconnectOnce.Do(func() {
		s.disconnectReason = disconnect.Reason(reason)
		first = true
	})
	if !first {
		return
	}
	select {
	case s.mailbox <- mailboxMsg{kind: msgDisconnect}:
	case <-s.done:
	}
}

// requestDisconnectLocked is the panic-recovery path: it already runs on
// the mailbox goroutine, so teardown happens inline instead of being
// posted back onto the channel it would otherwise deadlock on.
func (s *Session) requestDisconnectLocked(reason disconnect.Reason) {
	first := false
	s.disconnectOnce.Do(func() {
		s.disconnectReason = reason
		first = true
	})
	if !first {
		return
	}
	s.teardown(context.Background())
}

func (s *Session) teardown(ctx context.Context) {
	s.SetAuthState(sessiontypes.Disconnecting)

	s.SendBedrock(bedrock.Disconnect{Reason: string(s.disconnectReason)})

	drain := s.cfg.DisconnectDrainTimeout
	if drain <= 0 {
		drain = 2 * time.Second
	}
	s.bedrockOut.drain(drain)
	s.javaOut.drain(drain)

	s.bedrockOut.close()
	s.javaOut.close()

	s.cancelPendingForms()

	s.SetAuthState(sessiontypes.Dead)
	close(s.done)

	if s.log != nil {
		s.log.Info(ctx, "session disconnected", "session", s.id, "reason", string(s.disconnectReason))
	}
}

// SendJava encodes p with the compiled-in Java codec and enqueues it onto
// the Java peer's outbound buffer. A no-op once the session is Dead
// (SPEC_FULL.md §8 "No packet is emitted on a session in Dead").
func (s *Session) SendJava(p java.Packet) {
	if s.AuthState() == sessiontypes.Dead || s.javaCodec == nil {
		return
	}
	data, err := s.javaCodec.Encode(p)
	if err != nil {
		if s.log != nil {
			s.log.Warn(context.Background(), "java encode failed", "session", s.id, "err", err)
		}
		return
	}
	s.javaOut.enqueue(data)
}

// SendBedrock is the Bedrock-leg counterpart of SendJava.
func (s *Session) SendBedrock(p bedrock.Packet) {
	if s.AuthState() == sessiontypes.Dead || s.bedrockCodec == nil {
		return
	}
	data, err := s.bedrockCodec.Encode(p)
	if err != nil {
		if s.log != nil {
			s.log.Warn(context.Background(), "bedrock encode failed", "session", s.id, "err", err)
		}
		return
	}
	s.bedrockOut.enqueue(data)
}

var _ registry.SessionHandle = (*Session)(nil)
