package mapping

// Bedrock dimension identifiers (SPEC_FULL.md §4.1(d)).
const (
	DimensionOverworld = "overworld"
	DimensionNether    = "nether"
	DimensionTheEnd    = "the_end"
)

// FallbackJavaDimension is the Java dimension id an unknown Bedrock
// dimension maps back to; every player must be in some dimension, so the
// overworld is the only sensible default.
const FallbackJavaDimension int32 = 0

// DimensionTable translates Java signed-integer dimension ids to the
// Bedrock enumerated dimension and back (SPEC_FULL.md §4.1(d)).
type DimensionTable struct {
	bi *biMap[int32, string]
}

type dimensionRecord struct {
	Java    int32  `json:"java"`
	Bedrock string `json:"bedrock"`
}

func loadDimensionTable() (*DimensionTable, error) {
	var records []dimensionRecord
	if err := readEmbedded("dimensions.json", &records); err != nil {
		return nil, err
	}
	bm := newBiMap[int32, string](DimensionOverworld, FallbackJavaDimension)
	for _, r := range records {
		bm.set(r.Java, r.Bedrock)
	}
	return &DimensionTable{bi: bm}, nil
}

// ToBedrock maps a Java dimension id to the Bedrock enumerated dimension.
func (t *DimensionTable) ToBedrock(javaDimension int32) string { return t.bi.lookupV(javaDimension) }

// ToJava maps a Bedrock dimension back to its Java signed-integer id.
func (t *DimensionTable) ToJava(bedrockDimension string) int32 { return t.bi.lookupK(bedrockDimension) }
