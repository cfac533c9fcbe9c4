package translators

import (
	"sync"

	"github.com/crossbridge/proxycore/internal/protocol/bedrock"
	"github.com/crossbridge/proxycore/internal/protocol/java"
	"github.com/crossbridge/proxycore/internal/registry"
	"github.com/crossbridge/proxycore/internal/sessiontypes"
)

// fakeSession is a minimal in-memory registry.SessionHandle double for
// exercising translators without the real session's mailbox/codec plumbing.
type fakeSession struct {
	mu sync.Mutex

	identity  sessiontypes.Identity
	world     sessiontypes.WorldView
	authState sessiontypes.AuthState

	byJava    map[int32]sessiontypes.EntityRecord
	byBedrock map[uint64]sessiontypes.EntityRecord
	nextID    uint64
	playerID  uint64

	chunks map[sessiontypes.ChunkCoord]bool
	wins   map[int32]sessiontypes.Window

	pending    map[uint32]*sessiontypes.PendingForm
	formSeq    uint32

	javaOut    []java.Packet
	bedrockOut []bedrock.Packet
	discoReason string

	tick uint64
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		byJava:    make(map[int32]sessiontypes.EntityRecord),
		byBedrock: make(map[uint64]sessiontypes.EntityRecord),
		chunks:    make(map[sessiontypes.ChunkCoord]bool),
		wins:      make(map[int32]sessiontypes.Window),
		pending:   make(map[uint32]*sessiontypes.PendingForm),
	}
}

func (s *fakeSession) ID() string { return "fake" }

func (s *fakeSession) Identity() sessiontypes.Identity         { return s.identity }
func (s *fakeSession) SetIdentity(id sessiontypes.Identity)    { s.identity = id }
func (s *fakeSession) World() sessiontypes.WorldView           { return s.world }
func (s *fakeSession) SetWorld(w sessiontypes.WorldView)       { s.world = w }
func (s *fakeSession) AuthState() sessiontypes.AuthState       { return s.authState }
func (s *fakeSession) SetAuthState(a sessiontypes.AuthState)   { s.authState = a }

func (s *fakeSession) GetEntityByJavaID(javaID int32) (sessiontypes.EntityRecord, bool) {
	rec, ok := s.byJava[javaID]
	return rec, ok
}

func (s *fakeSession) GetEntityByBedrockID(bedrockID uint64) (sessiontypes.EntityRecord, bool) {
	rec, ok := s.byBedrock[bedrockID]
	return rec, ok
}

func (s *fakeSession) RegisterEntity(javaID int32, kind string, x, y, z float64, yaw, pitch float32) sessiontypes.EntityRecord {
	s.nextID++
	rec := sessiontypes.EntityRecord{JavaID: javaID, BedrockID: s.nextID, Kind: kind, X: x, Y: y, Z: z, Yaw: yaw, Pitch: pitch}
	s.byJava[javaID] = rec
	s.byBedrock[rec.BedrockID] = rec
	return rec
}

func (s *fakeSession) UnregisterEntity(javaID int32) (sessiontypes.EntityRecord, bool) {
	rec, ok := s.byJava[javaID]
	if !ok {
		return sessiontypes.EntityRecord{}, false
	}
	delete(s.byJava, javaID)
	delete(s.byBedrock, rec.BedrockID)
	return rec, true
}

func (s *fakeSession) UpdateEntityPosition(javaID int32, x, y, z float64, yaw, pitch float32) bool {
	rec, ok := s.byJava[javaID]
	if !ok {
		return false
	}
	rec.X, rec.Y, rec.Z, rec.Yaw, rec.Pitch = x, y, z, yaw, pitch
	s.byJava[javaID] = rec
	s.byBedrock[rec.BedrockID] = rec
	return true
}

func (s *fakeSession) ClearEntities() {
	s.byJava = make(map[int32]sessiontypes.EntityRecord)
	s.byBedrock = make(map[uint64]sessiontypes.EntityRecord)
}

func (s *fakeSession) ReservePlayerRuntimeID() uint64 {
	s.nextID++
	s.playerID = s.nextID
	return s.playerID
}

func (s *fakeSession) PlayerRuntimeID() uint64 { return s.playerID }

func (s *fakeSession) RememberChunk(c sessiontypes.ChunkCoord) { s.chunks[c] = true }
func (s *fakeSession) ForgetChunk(c sessiontypes.ChunkCoord)   { delete(s.chunks, c) }
func (s *fakeSession) HasChunk(c sessiontypes.ChunkCoord) bool { return s.chunks[c] }
func (s *fakeSession) ChunkCount() int                         { return len(s.chunks) }

func (s *fakeSession) OpenWindow(w sessiontypes.Window) {
	if w.Contents == nil {
		w.Contents = make(map[int32]sessiontypes.Slot)
	}
	s.wins[w.ID] = w
}
func (s *fakeSession) CloseWindow(id int32) { delete(s.wins, id) }
func (s *fakeSession) Window(id int32) (sessiontypes.Window, bool) {
	w, ok := s.wins[id]
	return w, ok
}
func (s *fakeSession) SetSlot(windowID, slotIdx int32, slot sessiontypes.Slot) {
	w, ok := s.wins[windowID]
	if !ok {
		return
	}
	w.Contents[slotIdx] = slot
}

func (s *fakeSession) NextFormID() uint32 {
	s.formSeq++
	return s.formSeq
}

func (s *fakeSession) PutPendingForm(id uint32) *sessiontypes.PendingForm {
	pf := &sessiontypes.PendingForm{ID: id, Done: make(chan sessiontypes.FormResult, 1)}
	s.pending[id] = pf
	return pf
}

func (s *fakeSession) CompleteForm(id uint32, result sessiontypes.FormResult) bool {
	pf, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	pf.Done <- result
	return true
}

func (s *fakeSession) SendBedrock(p bedrock.Packet) { s.bedrockOut = append(s.bedrockOut, p) }
func (s *fakeSession) SendJava(p java.Packet)        { s.javaOut = append(s.javaOut, p) }
func (s *fakeSession) Disconnect(reason string)      { s.discoReason = reason }

func (s *fakeSession) Dispatch(fn func()) { fn() }
func (s *fakeSession) Tick() uint64       { return s.tick }

var _ registry.SessionHandle = (*fakeSession)(nil)
