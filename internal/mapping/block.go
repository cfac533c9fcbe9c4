package mapping

// BedrockBlock is the Bedrock-side representation of a block state: a
// namespaced name plus the runtime id used in the palette sent to clients
// (SPEC_FULL.md §4.1 "block-state palette").
type BedrockBlock struct {
	Name      string
	RuntimeID int32
}

// FallbackBlockName is the Bedrock "info update" placeholder substituted
// for any Java block state this proxy doesn't recognize (SPEC_FULL.md
// §4.1, §8 scenario 4).
const FallbackBlockName = "minecraft:info_update"

// FallbackBlockRuntimeID is the runtime id reserved for FallbackBlockName.
// It is intentionally outside the range of ids assigned to known blocks.
const FallbackBlockRuntimeID int32 = -1

// FallbackJavaBlock is the Java block state a fallback Bedrock runtime id
// maps back to.
const FallbackJavaBlock = "minecraft:air"

// BlockTable translates Java block-state identifiers to Bedrock block
// states and back (SPEC_FULL.md §4.1(a)). Immutable after loadBlockTable
// returns, so lookups need no locking.
type BlockTable struct {
	javaToBedrock map[string]BedrockBlock
	runtimeToJava map[int32]string
}

type blockRecord struct {
	Java        string `json:"java"`
	BedrockName string `json:"bedrock_name"`
	RuntimeID   int32  `json:"runtime_id"`
}

func loadBlockTable() (*BlockTable, error) {
	var records []blockRecord
	if err := readEmbedded("blocks.json", &records); err != nil {
		return nil, err
	}
	t := &BlockTable{
		javaToBedrock: make(map[string]BedrockBlock, len(records)),
		runtimeToJava: make(map[int32]string, len(records)),
	}
	for _, r := range records {
		t.javaToBedrock[r.Java] = BedrockBlock{Name: r.BedrockName, RuntimeID: r.RuntimeID}
		t.runtimeToJava[r.RuntimeID] = r.Java
	}
	return t, nil
}

// ToBedrock maps a Java block-state identifier to its Bedrock block state.
// Unknown identifiers return the "info update" fallback; the lookup never
// errors (SPEC_FULL.md §4.1 "Contracts").
func (t *BlockTable) ToBedrock(javaBlockState string) BedrockBlock {
	if b, ok := t.javaToBedrock[javaBlockState]; ok {
		return b
	}
	return BedrockBlock{Name: FallbackBlockName, RuntimeID: FallbackBlockRuntimeID}
}

// ToJava maps a Bedrock runtime id back to the Java block-state identifier
// it was translated from. Unknown runtime ids return FallbackJavaBlock.
func (t *BlockTable) ToJava(runtimeID int32) string {
	if j, ok := t.runtimeToJava[runtimeID]; ok {
		return j
	}
	return FallbackJavaBlock
}

// Len returns the number of known block states, primarily for tests.
func (t *BlockTable) Len() int { return len(t.javaToBedrock) }
