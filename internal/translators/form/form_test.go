package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeAcceptsValidDescription(t *testing.T) {
	data, err := Serialize(map[string]any{
		"type":  "modal",
		"title": "Confirm",
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title":"Confirm"`)
}

func TestSerializeRejectsMissingTitle(t *testing.T) {
	_, err := Serialize(map[string]any{"type": "modal"})
	assert.Error(t, err)
}

func TestSerializeRejectsUnknownType(t *testing.T) {
	_, err := Serialize(map[string]any{"type": "carousel", "title": "x"})
	assert.Error(t, err)
}
