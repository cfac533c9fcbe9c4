package mapping

// FallbackSound is the Bedrock sound event substituted for an unrecognized
// Java sound; a soft UI click is unobtrusive if it fires unexpectedly.
const FallbackSound = "random.click"

// FallbackJavaSound is the Java sound event an unknown Bedrock sound maps
// back to.
const FallbackJavaSound = "ui.button.click"

// SoundTable translates Java sound-event identifiers to Bedrock sound
// identifiers and back (SPEC_FULL.md §4.1(f)).
type SoundTable struct {
	bi *biMap[string, string]
}

type soundRecord struct {
	Java    string `json:"java"`
	Bedrock string `json:"bedrock"`
}

func loadSoundTable() (*SoundTable, error) {
	var records []soundRecord
	if err := readEmbedded("sounds.json", &records); err != nil {
		return nil, err
	}
	bm := newBiMap[string, string](FallbackSound, FallbackJavaSound)
	for _, r := range records {
		bm.set(r.Java, r.Bedrock)
	}
	return &SoundTable{bi: bm}, nil
}

// ToBedrock maps a Java sound event to its Bedrock identifier.
func (t *SoundTable) ToBedrock(javaSound string) string { return t.bi.lookupV(javaSound) }

// ToJava maps a Bedrock sound identifier back to the Java sound event.
func (t *SoundTable) ToJava(bedrockSound string) string { return t.bi.lookupK(bedrockSound) }
