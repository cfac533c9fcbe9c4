package mapping

// FallbackBiome is the Bedrock biome substituted for an unrecognized Java
// biome id.
const FallbackBiome = "plains"

// FallbackJavaBiome is the Java biome id an unknown Bedrock biome maps
// back to.
const FallbackJavaBiome int32 = 1

// BiomeTable translates Java biome ids to Bedrock biome identifiers and
// back (SPEC_FULL.md §4.1(g)).
type BiomeTable struct {
	bi *biMap[int32, string]
}

type biomeRecord struct {
	Java    int32  `json:"java"`
	Bedrock string `json:"bedrock"`
}

func loadBiomeTable() (*BiomeTable, error) {
	var records []biomeRecord
	if err := readEmbedded("biomes.json", &records); err != nil {
		return nil, err
	}
	bm := newBiMap[int32, string](FallbackBiome, FallbackJavaBiome)
	for _, r := range records {
		bm.set(r.Java, r.Bedrock)
	}
	return &BiomeTable{bi: bm}, nil
}

// ToBedrock maps a Java biome id to its Bedrock identifier.
func (t *BiomeTable) ToBedrock(javaBiome int32) string { return t.bi.lookupV(javaBiome) }

// ToJava maps a Bedrock biome identifier back to its Java id.
func (t *BiomeTable) ToJava(bedrockBiome string) int32 { return t.bi.lookupK(bedrockBiome) }
