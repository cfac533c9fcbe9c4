package session

import (
	"time"

	"github.com/crossbridge/proxycore/internal/sessiontypes"
)

// NextFormID returns the next value of the monotonic, session-local form id
// counter (SPEC_FULL.md §4.4 "next_form_id"; §8 "Form id counter is
// strictly increasing within a session").
func (s *Session) NextFormID() uint32 {
	s.formCounter++
	return s.formCounter
}

// PutPendingForm installs a single-shot response slot for id (SPEC_FULL.md
// §4.4 "put_pending_form(id) installs a single-shot response slot"). The
// slot is cancelled automatically after the configured form-response
// timeout, or immediately if the session dies first.
func (s *Session) PutPendingForm(id uint32) *sessiontypes.PendingForm {
	timeout := s.cfg.FormResponseTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	pf := &sessiontypes.PendingForm{ID: id, Done: make(chan sessiontypes.FormResult, 1)}
	s.forms[id] = &pendingFormEntry{form: pf, deadline: time.Now().Add(timeout)}
	return pf
}

// CompleteForm fulfils the pending slot for id with result. A response to
// an id with no pending slot (already completed, timed out, or never sent)
// is dropped, reporting false (SPEC_FULL.md §4.4 "unmatched ids are
// dropped"; §8 scenario 5 "a second response with the same id is
// dropped").
func (s *Session) CompleteForm(id uint32, result sessiontypes.FormResult) bool {
	entry, ok := s.forms[id]
	if !ok {
		return false
	}
	delete(s.forms, id)
	entry.form.Done <- result
	return true
}

// expirePendingForms completes every slot past its deadline with a
// cancellation sentinel (SPEC_FULL.md §5 "Form response timeout is
// configurable ... on expiry the slot is completed with cancellation").
// Called once per tick, before tick handlers run.
func (s *Session) expirePendingForms(now time.Time) {
	for id, entry := range s.forms {
		if now.Before(entry.deadline) {
			continue
		}
		delete(s.forms, id)
		entry.form.Done <- sessiontypes.FormResult{Cancelled: true}
	}
}

// cancelPendingForms completes every still-open slot with a cancellation
// sentinel as part of teardown (SPEC_FULL.md §5 "Pending form slots are
// completed with a cancellation sentinel" on disconnect).
func (s *Session) cancelPendingForms() {
	for id, entry := range s.forms {
		delete(s.forms, id)
		entry.form.Done <- sessiontypes.FormResult{Cancelled: true}
	}
}
