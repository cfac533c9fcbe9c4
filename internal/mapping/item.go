package mapping

// BedrockItem is the Bedrock-side item identifier: a numeric id plus the
// auxiliary "meta"/damage value Bedrock encodes for durability and
// sub-types (SPEC_FULL.md §4.1(b)).
type BedrockItem struct {
	ID   int16
	Meta int16
}

// FallbackItem is the empty/air item substituted for unknown Java item ids
// (SPEC_FULL.md §4.1 "for items: empty/air").
var FallbackItem = BedrockItem{ID: 0, Meta: 0}

// FallbackJavaItemID is the Java item id an unknown Bedrock item maps back
// to.
const FallbackJavaItemID int32 = 0

// ItemTable translates Java item ids to Bedrock item id+meta pairs and
// back.
type ItemTable struct {
	bi *biMap[int32, BedrockItem]
}

type itemRecord struct {
	JavaID       int32  `json:"java_id"`
	JavaName     string `json:"java_name"`
	BedrockID    int16  `json:"bedrock_id"`
	BedrockMeta  int16  `json:"bedrock_meta"`
}

func loadItemTable() (*ItemTable, error) {
	var records []itemRecord
	if err := readEmbedded("items.json", &records); err != nil {
		return nil, err
	}
	bm := newBiMap[int32, BedrockItem](FallbackItem, FallbackJavaItemID)
	for _, r := range records {
		bm.set(r.JavaID, BedrockItem{ID: r.BedrockID, Meta: r.BedrockMeta})
	}
	return &ItemTable{bi: bm}, nil
}

// ToBedrock maps a Java item id to its Bedrock id+meta pair. Unknown ids
// fall back to air.
func (t *ItemTable) ToBedrock(javaItemID int32) BedrockItem { return t.bi.lookupV(javaItemID) }

// ToJava maps a Bedrock item id+meta pair back to the Java item id.
func (t *ItemTable) ToJava(item BedrockItem) int32 { return t.bi.lookupK(item) }

// Len returns the number of known items, primarily for tests.
func (t *ItemTable) Len() int { return t.bi.len() }
