package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocTemplateIsValidJSON(t *testing.T) {
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(docTemplate), &doc))
	require.Contains(t, doc, "paths")
}

// The blackout endpoints are consumed by the legacy frontend under the
// session-blackouts prefix; the doc must advertise those exact paths.
func TestDocTemplateAdvertisesBlackoutPaths(t *testing.T) {
	var doc struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docTemplate), &doc))

	assert.Contains(t, doc.Paths, "/session-blackouts")
	assert.Contains(t, doc.Paths, "/session-blackouts/{id}")
	assert.Contains(t, doc.Paths, "/session-blackouts/check")
	assert.NotContains(t, doc.Paths, "/blackouts")
}
