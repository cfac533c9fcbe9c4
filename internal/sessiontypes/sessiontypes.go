// Package sessiontypes holds the value types shared between the Session
// State, Translator Registry, and Translators components (SPEC_FULL.md §3,
// §4.3, §4.4). It exists so the registry can describe the operations a
// translator needs from a session (SessionHandle) without importing the
// concrete session package, keeping the dependency direction translators ->
// registry -> sessiontypes and session -> registry -> sessiontypes, never
// the reverse.
package sessiontypes

// AuthState is the session's authentication/lifecycle state machine
// (SPEC_FULL.md §3 "Authentication state").
type AuthState int

const (
	Unauthenticated AuthState = iota
	AwaitingJavaLogin
	Spawned
	Disconnecting
	Dead
)

func (s AuthState) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case AwaitingJavaLogin:
		return "awaiting_java_login"
	case Spawned:
		return "spawned"
	case Disconnecting:
		return "disconnecting"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Identity is the player identity attributes carried by the session
// (SPEC_FULL.md §3 "Player identity").
type Identity struct {
	DisplayName string
	PlayerUUID  string
	SkinBlob    []byte
	Locale      string
}

// WorldView is the session's current view of the world (SPEC_FULL.md §3
// "World view").
type WorldView struct {
	Dimension    string
	Gamemode     string
	SpawnX       float64
	SpawnY       float64
	SpawnZ       float64
	ViewDistance int32
}

// EntityRecord is one entry of the per-session entity table (SPEC_FULL.md §3
// "Entity table").
type EntityRecord struct {
	JavaID        int32
	BedrockID     uint64
	Kind          string
	X, Y, Z       float64
	Yaw, Pitch    float32
}

// ChunkCoord addresses one 16x16 chunk column.
type ChunkCoord struct {
	X, Z int32
}

// Window is an inventory window descriptor (SPEC_FULL.md §3 "Inventory
// windows").
type Window struct {
	ID        int32
	Kind      string
	SlotCount int32
	Contents  map[int32]Slot
}

// Slot is one item stack in a window, expressed protocol-neutrally.
type Slot struct {
	Present bool
	ItemID  int32
	Damage  int16
	Count   int8
}

// PendingForm is a single-shot response slot installed by `next_form_id` +
// `put_pending_form` (SPEC_FULL.md §4.4 "Form protocol").
type PendingForm struct {
	ID   uint32
	Done chan FormResult
}

// FormResult is delivered to a PendingForm's Done channel exactly once
// (SPEC_FULL.md §8 "Form id counter is strictly increasing").
type FormResult struct {
	Response  []byte
	Cancelled bool
}
