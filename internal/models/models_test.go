package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListUnmarshalArray(t *testing.T) {
	var tags TagList
	err := json.Unmarshal([]byte(`["cozy", " quiet ", ""]`), &tags)
	require.NoError(t, err)
	assert.Equal(t, TagList{"cozy", "quiet"}, tags)
}

func TestTagListUnmarshalString(t *testing.T) {
	var tags TagList
	err := json.Unmarshal([]byte(`"cozy, quiet ,,  "`), &tags)
	require.NoError(t, err)
	assert.Equal(t, TagList{"cozy", "quiet"}, tags)
}

func TestTagListUnmarshalNull(t *testing.T) {
	var tags TagList
	err := json.Unmarshal([]byte(`null`), &tags)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagListUnmarshalRejectsOtherTypes(t *testing.T) {
	var tags TagList
	err := json.Unmarshal([]byte(`42`), &tags)
	assert.Error(t, err)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, TagList{"a", "b"}, SplitTags(" a , b "))
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags(" , ,"))
}

func TestSplitTagsRoundTrip(t *testing.T) {
	tags := SplitTags("cozy, quiet,view")
	assert.Equal(t, "cozy,quiet,view", tags.Join())
	assert.Equal(t, tags, SplitTags(tags.Join()))
}

func TestSplitTagsMarshalsAsEmptyArray(t *testing.T) {
	data, err := json.Marshal(SplitTags(""))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
