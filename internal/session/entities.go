package session

import "github.com/crossbridge/proxycore/internal/sessiontypes"

// GetEntityByJavaID looks up an entity record by its Java-side id
// (SPEC_FULL.md §4.4 "get_entity_by_java_id").
func (s *Session) GetEntityByJavaID(javaID int32) (sessiontypes.EntityRecord, bool) {
	r, ok := s.entitiesByJava[javaID]
	if !ok {
		return sessiontypes.EntityRecord{}, false
	}
	return *r, true
}

// GetEntityByBedrockID looks up an entity record by its Bedrock runtime id
// (SPEC_FULL.md §4.4 "get_entity_by_bedrock_id"; §8 "a lookup by java id and
// a lookup by bedrock id return the same record").
func (s *Session) GetEntityByBedrockID(bedrockID uint64) (sessiontypes.EntityRecord, bool) {
	r, ok := s.entitiesByBedrock[bedrockID]
	if !ok {
		return sessiontypes.EntityRecord{}, false
	}
	return *r, true
}

// RegisterEntity allocates a fresh Bedrock runtime id for a Java entity and
// records it in both directions of the entity table (SPEC_FULL.md §4.4
// "Entity id allocation"). Runtime ids are never reused within a session.
func (s *Session) RegisterEntity(javaID int32, kind string, x, y, z float64, yaw, pitch float32) sessiontypes.EntityRecord {
	bedrockID := s.nextBedrockID
	s.nextBedrockID++

	rec := &sessiontypes.EntityRecord{
		JavaID:    javaID,
		BedrockID: bedrockID,
		Kind:      kind,
		X:         x,
		Y:         y,
		Z:         z,
		Yaw:       yaw,
		Pitch:     pitch,
	}
	s.entitiesByJava[javaID] = rec
	s.entitiesByBedrock[bedrockID] = rec
	return *rec
}

// UnregisterEntity removes an entity from both directions of the table
// (SPEC_FULL.md §4.4 "unregister_entity").
func (s *Session) UnregisterEntity(javaID int32) (sessiontypes.EntityRecord, bool) {
	r, ok := s.entitiesByJava[javaID]
	if !ok {
		return sessiontypes.EntityRecord{}, false
	}
	delete(s.entitiesByJava, javaID)
	delete(s.entitiesByBedrock, r.BedrockID)
	return *r, true
}

// UpdateEntityPosition rewrites an entity's last-known position and
// orientation in place, leaving its table identity untouched.
func (s *Session) UpdateEntityPosition(javaID int32, x, y, z float64, yaw, pitch float32) bool {
	r, ok := s.entitiesByJava[javaID]
	if !ok {
		return false
	}
	r.X, r.Y, r.Z, r.Yaw, r.Pitch = x, y, z, yaw, pitch
	return true
}

// ReservePlayerRuntimeID allocates a Bedrock runtime id for the controlled
// player itself, distinct from every id ever handed to RegisterEntity
// (SPEC_FULL.md §4.4 "The player's own Bedrock runtime id is reserved at
// spawn and is distinct from all entity ids"). It is not added to the
// entity table: the player is not its own entity-table entry.
func (s *Session) ReservePlayerRuntimeID() uint64 {
	id := s.nextBedrockID
	s.nextBedrockID++
	s.playerRuntimeID = id
	return id
}

// PlayerRuntimeID returns the id last reserved by ReservePlayerRuntimeID, or
// zero before spawn.
func (s *Session) PlayerRuntimeID() uint64 { return s.playerRuntimeID }

// ClearEntities drops every non-player entity from the table (SPEC_FULL.md
// SUPPLEMENTED FEATURES #4: a dimension-change respawn invalidates every
// previously-sent entity, since the Java server never revisits their ids).
func (s *Session) ClearEntities() {
	s.entitiesByJava = make(map[int32]*sessiontypes.EntityRecord)
	s.entitiesByBedrock = make(map[uint64]*sessiontypes.EntityRecord)
}
