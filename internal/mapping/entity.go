package mapping

// FallbackEntityKind is the Bedrock entity identifier substituted for an
// unrecognized Java entity kind. An armor stand is visually inert and never
// attacks, making it a safe default presence for an entity the proxy can't
// otherwise represent (SPEC_FULL.md §4.1 "for entities: a documented
// default").
const FallbackEntityKind = "minecraft:armor_stand"

// FallbackJavaEntityKind is the Java entity identifier an unknown Bedrock
// entity kind maps back to.
const FallbackJavaEntityKind = "minecraft:armor_stand"

// EntityTable translates Java entity-kind identifiers to Bedrock entity
// identifiers and back (SPEC_FULL.md §4.1(c)).
type EntityTable struct {
	bi *biMap[string, string]
}

type entityRecord struct {
	Java    string `json:"java"`
	Bedrock string `json:"bedrock"`
}

func loadEntityTable() (*EntityTable, error) {
	var records []entityRecord
	if err := readEmbedded("entities.json", &records); err != nil {
		return nil, err
	}
	bm := newBiMap[string, string](FallbackEntityKind, FallbackJavaEntityKind)
	for _, r := range records {
		bm.set(r.Java, r.Bedrock)
	}
	return &EntityTable{bi: bm}, nil
}

// ToBedrock maps a Java entity kind to its Bedrock identifier.
func (t *EntityTable) ToBedrock(javaKind string) string { return t.bi.lookupV(javaKind) }

// ToJava maps a Bedrock entity identifier back to the Java entity kind.
func (t *EntityTable) ToJava(bedrockKind string) string { return t.bi.lookupK(bedrockKind) }

// Len returns the number of known entity kinds, primarily for tests.
func (t *EntityTable) Len() int { return t.bi.len() }
