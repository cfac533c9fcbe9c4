// Package registry maps each decoded packet variant to a translator
// function, one array per direction, indexed by the variant's Kind tag
// (SPEC_FULL.md §4.3 "Translator Registry"). Registration is static and
// happens once at startup; lookup is O(1) array indexing, never reflection
// or a type switch.
package registry

import (
	"context"

	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
)

// SessionHandle is the set of operations a translator may perform on the
// session it was dispatched for (SPEC_FULL.md §4.4 "Public operations").
// Defining it here, rather than importing the concrete session package,
// keeps translators and the registry decoupled from the session package's
// mailbox/lifecycle plumbing: a translator only ever sees this handle.
type SessionHandle interface {
	ID() string

	Identity() sessiontypes.Identity
	SetIdentity(sessiontypes.Identity)
	World() sessiontypes.WorldView
	SetWorld(sessiontypes.WorldView)
	AuthState() sessiontypes.AuthState
	SetAuthState(sessiontypes.AuthState)

	GetEntityByJavaID(javaID int32) (sessiontypes.EntityRecord, bool)
	GetEntityByBedrockID(bedrockID uint64) (sessiontypes.EntityRecord, bool)
	RegisterEntity(javaID int32, kind string, x, y, z float64, yaw, pitch float32) sessiontypes.EntityRecord
	UnregisterEntity(javaID int32) (sessiontypes.EntityRecord, bool)
	UpdateEntityPosition(javaID int32, x, y, z float64, yaw, pitch float32) bool
	ClearEntities()
	ReservePlayerRuntimeID() uint64
	PlayerRuntimeID() uint64

	RememberChunk(c sessiontypes.ChunkCoord)
	ForgetChunk(c sessiontypes.ChunkCoord)
	HasChunk(c sessiontypes.ChunkCoord) bool
	ChunkCount() int

	OpenWindow(w sessiontypes.Window)
	CloseWindow(id int32)
	Window(id int32) (sessiontypes.Window, bool)
	SetSlot(windowID, slotIdx int32, s sessiontypes.Slot)

	NextFormID() uint32
	PutPendingForm(id uint32) *sessiontypes.PendingForm
	CompleteForm(id uint32, result sessiontypes.FormResult) bool

	SendBedrock(p bedrock.Packet)
	SendJava(p java.Packet)
	Disconnect(reason string)

	Dispatch(fn func())
	Tick() uint64
}

// JavaTranslator translates one decoded Java packet, mutating session state
// and emitting zero or more peer packets through the handle (SPEC_FULL.md
// §4.3 "translate(session, packet)").
type JavaTranslator func(ctx context.Context, sess SessionHandle, p java.Packet)

// BedrockTranslator is the Bedrock-leg counterpart of JavaTranslator.
type BedrockTranslator func(ctx context.Context, sess SessionHandle, p bedrock.Packet)

// TickHandler runs once per scheduler pulse, in registration order, inside
// the session's mailbox (SPEC_FULL.md §4.6 "tick handlers may emit
// keepalives, flush batched movement, or expire pending forms").
type TickHandler func(ctx context.Context, sess SessionHandle)

// Logger is the minimal logging surface the registry needs to record a
// silently-dropped packet (SPEC_FULL.md §4.3 "dropped silently ... after a
// debug log entry").
type Logger interface {
	Debug(ctx context.Context, msg string, keyvals ...any)
}

// Registry holds the two direction-indexed dispatch arrays, populated once
// at startup (SPEC_FULL.md §4.3 "Registration is static, populated once at
// startup").
type Registry struct {
	javaTranslators    []JavaTranslator
	bedrockTranslators []BedrockTranslator
	tickHandlers       []TickHandler
	log                Logger
}

// New allocates a Registry sized for the two packet sum types.
func New(log Logger) *Registry {
	return &Registry{
		javaTranslators:    make([]JavaTranslator, java.NumKinds()),
		bedrockTranslators: make([]BedrockTranslator, bedrock.NumKinds()),
		log:                log,
	}
}

// RegisterTick appends a tick handler to run on every scheduler pulse.
func (r *Registry) RegisterTick(fn TickHandler) {
	r.tickHandlers = append(r.tickHandlers, fn)
}

// DispatchTick runs every registered tick handler in registration order.
func (r *Registry) DispatchTick(ctx context.Context, sess SessionHandle) {
	for _, fn := range r.tickHandlers {
		fn(ctx, sess)
	}
}

// RegisterJava installs the translator for one Java packet Kind. Calling it
// twice for the same Kind overwrites the previous registration; callers are
// expected to register each Kind exactly once at startup.
func (r *Registry) RegisterJava(k java.Kind, fn JavaTranslator) {
	r.javaTranslators[k] = fn
}

// RegisterBedrock installs the translator for one Bedrock packet Kind.
func (r *Registry) RegisterBedrock(k bedrock.Kind, fn BedrockTranslator) {
	r.bedrockTranslators[k] = fn
}

// DispatchJava looks up and runs the translator for p's Kind. An
// unregistered Kind is dropped silently after a debug log entry
// (SPEC_FULL.md §4.3, §7 "unmapped_packet").
func (r *Registry) DispatchJava(ctx context.Context, sess SessionHandle, p java.Packet) {
	k := p.Kind()
	if int(k) >= len(r.javaTranslators) {
		r.logDrop(ctx, "java", int(k))
		return
	}
	fn := r.javaTranslators[k]
	if fn == nil {
		r.logDrop(ctx, "java", int(k))
		return
	}
	fn(ctx, sess, p)
}

// DispatchBedrock is the Bedrock-leg counterpart of DispatchJava.
func (r *Registry) DispatchBedrock(ctx context.Context, sess SessionHandle, p bedrock.Packet) {
	k := p.Kind()
	if int(k) >= len(r.bedrockTranslators) {
		r.logDrop(ctx, "bedrock", int(k))
		return
	}
	fn := r.bedrockTranslators[k]
	if fn == nil {
		r.logDrop(ctx, "bedrock", int(k))
		return
	}
	fn(ctx, sess, p)
}

func (r *Registry) logDrop(ctx context.Context, direction string, kind int) {
	if r.log == nil {
		return
	}
	r.log.Debug(ctx, "dropped packet with no registered translator", "direction", direction, "kind", kind)
}
