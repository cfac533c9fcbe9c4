package session

import "github.com/crossbridge/proxycore/internal/sessiontypes"

// RememberChunk records that the Bedrock peer now holds this chunk column
// (SPEC_FULL.md §4.4 "remember_chunk"; §3 "the chunk set contains exactly
// the chunks the Bedrock peer believes it holds"). Callers must invoke this
// atomically with the chunk-load emission, which holds trivially here
// since both happen inside the same translator dispatch.
func (s *Session) RememberChunk(c sessiontypes.ChunkCoord) {
	s.chunks[c] = struct{}{}
}

// ForgetChunk is the unload counterpart of RememberChunk.
func (s *Session) ForgetChunk(c sessiontypes.ChunkCoord) {
	delete(s.chunks, c)
}

// HasChunk reports whether the chunk is currently tracked as sent.
func (s *Session) HasChunk(c sessiontypes.ChunkCoord) bool {
	_, ok := s.chunks[c]
	return ok
}

// ChunkCount returns the number of chunks currently tracked as sent
// (SPEC_FULL.md §8 "|chunk_set| equals the number of chunk-load emissions
// minus chunk-unload emissions").
func (s *Session) ChunkCount() int {
	return len(s.chunks)
}
