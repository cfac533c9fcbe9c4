package mapping

// Bedrock gamemode identifiers (SPEC_FULL.md §4.1(e)).
const (
	GamemodeSurvival  = "survival"
	GamemodeCreative  = "creative"
	GamemodeAdventure = "adventure"
	GamemodeSpectator = "spectator"
)

// FallbackJavaGamemode is the Java gamemode id an unrecognized Bedrock
// gamemode maps back to.
const FallbackJavaGamemode int32 = 0

// GamemodeTable translates Java gamemode ids to Bedrock gamemode
// identifiers and back (SPEC_FULL.md §4.1(e), §8 scenario 3).
type GamemodeTable struct {
	bi *biMap[int32, string]
}

type gamemodeRecord struct {
	Java    int32  `json:"java"`
	Bedrock string `json:"bedrock"`
}

func loadGamemodeTable() (*GamemodeTable, error) {
	var records []gamemodeRecord
	if err := readEmbedded("gamemodes.json", &records); err != nil {
		return nil, err
	}
	bm := newBiMap[int32, string](GamemodeSurvival, FallbackJavaGamemode)
	for _, r := range records {
		bm.set(r.Java, r.Bedrock)
	}
	return &GamemodeTable{bi: bm}, nil
}

// ToBedrock maps a Java gamemode id to the Bedrock gamemode identifier.
func (t *GamemodeTable) ToBedrock(javaGamemode int32) string { return t.bi.lookupV(javaGamemode) }

// ToJava maps a Bedrock gamemode back to its Java id.
func (t *GamemodeTable) ToJava(bedrockGamemode string) int32 { return t.bi.lookupK(bedrockGamemode) }
