package session

import "github.com/crossbridge/proxycore/internal/sessiontypes"

// OpenWindow installs a window descriptor (SPEC_FULL.md §4.4 "open_window";
// §3 "Inventory windows").
func (s *Session) OpenWindow(w sessiontypes.Window) {
	if w.Contents == nil {
		w.Contents = make(map[int32]sessiontypes.Slot, w.SlotCount)
	}
	s.windows[w.ID] = w
}

// CloseWindow removes a window descriptor (SPEC_FULL.md §4.4
// "close_window").
func (s *Session) CloseWindow(id int32) {
	delete(s.windows, id)
}

// Window returns the descriptor for id, if open.
func (s *Session) Window(id int32) (sessiontypes.Window, bool) {
	w, ok := s.windows[id]
	return w, ok
}

// SetSlot updates one slot of an already-open window. A reference to a
// window that was never opened (e.g. a stale client click after the server
// closed it) is a no-op, keeping the window map consistent with what the
// peer actually holds.
func (s *Session) SetSlot(windowID, slotIdx int32, slot sessiontypes.Slot) {
	w, ok := s.windows[windowID]
	if !ok {
		return
	}
	w.Contents[slotIdx] = slot
}
