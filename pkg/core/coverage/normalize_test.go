package coverage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awayboard/awayboard/pkg/core/model"
)

func TestUnmarshal_MixedLegacyAndStructured(t *testing.T) {
	data := []byte(`[
		"Hand over the Acme renewal",
		{"id": "cov-1", "title": "Backlog triage", "tasks": [{"id": "t-1", "text": "Check queue", "done": true}]}
	]`)

	var raw []RawItem
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)

	assert.Equal(t, "Hand over the Acme renewal", raw[0].Text)
	assert.Nil(t, raw[0].Item)

	require.NotNil(t, raw[1].Item)
	assert.Equal(t, "cov-1", raw[1].Item.ID)
	assert.Equal(t, "Backlog triage", raw[1].Item.Title)
}

func TestUnmarshal_RejectsOtherShapes(t *testing.T) {
	var raw []RawItem
	err := json.Unmarshal([]byte(`[42]`), &raw)
	assert.Error(t, err)
}

func TestNormalize_WrapsLegacyString(t *testing.T) {
	items := Normalize([]RawItem{{Text: "Watch the on-call rotation"}})

	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, "Watch the on-call rotation", items[0].Title)
	assert.Empty(t, items[0].Link)
	assert.Empty(t, items[0].Notes)
	assert.Empty(t, items[0].Tasks)
}

func TestNormalize_FillsMissingIDs(t *testing.T) {
	raw := []RawItem{{Item: &rawStructured{
		Title: "Deals pipeline",
		Tasks: []rawTask{
			{Text: "Ping finance"},
			{ID: "t-keep", Text: "Close Q3 report", Done: true},
		},
	}}}

	items := Normalize(raw)

	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	require.Len(t, items[0].Tasks, 2)
	assert.NotEmpty(t, items[0].Tasks[0].ID)
	assert.False(t, items[0].Tasks[0].Done)
	assert.Equal(t, "t-keep", items[0].Tasks[1].ID)
	assert.True(t, items[0].Tasks[1].Done)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := []RawItem{
		{Text: "Legacy item"},
		{Item: &rawStructured{Title: "Structured item", Tasks: []rawTask{{Text: "A task"}}}},
	}

	once := Normalize(raw)
	twice := Normalize(FromItems(once))

	// Ids assigned on the first pass must be preserved, not regenerated
	assert.Equal(t, once, twice)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	structured := &rawStructured{Title: "Keep me", Tasks: []rawTask{{Text: "No id yet"}}}
	raw := []RawItem{{Item: structured}}

	_ = Normalize(raw)

	assert.Empty(t, structured.ID)
	assert.Empty(t, structured.Tasks[0].ID)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Nil(t, Normalize([]RawItem{}))
}

func TestRoundTrip_LegacyConvergesToStructured(t *testing.T) {
	legacy := []byte(`["Cover standup"]`)
	structured := []byte(`[{"title": "Cover standup"}]`)

	var rawLegacy, rawStructuredItems []RawItem
	require.NoError(t, json.Unmarshal(legacy, &rawLegacy))
	require.NoError(t, json.Unmarshal(structured, &rawStructuredItems))

	fromLegacy := Normalize(rawLegacy)
	fromStructured := Normalize(rawStructuredItems)

	require.Len(t, fromLegacy, 1)
	require.Len(t, fromStructured, 1)

	// Identical content up to the generated ids
	fromLegacy[0].ID = ""
	fromStructured[0].ID = ""
	assert.Equal(t, fromStructured, fromLegacy)
}

func TestMarshal_EmitsCanonicalShape(t *testing.T) {
	data, err := json.Marshal([]RawItem{{Text: "Legacy"}})
	require.NoError(t, err)

	var decoded []model.CoverageItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Legacy", decoded[0].Title)
	assert.NotEmpty(t, decoded[0].ID)
}
