package atlas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/atlasgraph/vocabulary/ccf"
)

func TestTypeSetAddGroup(t *testing.T) {
	s := NewTypeSet(ccf.TypeStructure)
	s.Add(ccf.TypeGroup)

	assert.ElementsMatch(t, TypeSet{ccf.TypeStructure, ccf.TypeGroup}, s)

	// Merging again must not duplicate the tag.
	s.Add(ccf.TypeGroup)
	assert.Len(t, s, 2)
}

func TestTypeSetAddToEmpty(t *testing.T) {
	var s TypeSet
	s.Add(ccf.TypeGroup)
	assert.Equal(t, TypeSet{ccf.TypeGroup}, s)
}

func TestNewTypeSetDeduplicates(t *testing.T) {
	s := NewTypeSet(ccf.TypeDataSource, ccf.TypeImageDataSource, ccf.TypeDataSource)
	assert.Equal(t, TypeSet{ccf.TypeDataSource, ccf.TypeImageDataSource}, s)
}

func TestTypeSetMarshalJSON(t *testing.T) {
	single, err := json.Marshal(NewTypeSet(ccf.TypeStructure))
	require.NoError(t, err)
	assert.Equal(t, `"Structure"`, string(single))

	many, err := json.Marshal(NewTypeSet(ccf.TypeStructure, ccf.TypeGroup))
	require.NoError(t, err)
	assert.Equal(t, `["Structure","Group"]`, string(many))

	_, err = json.Marshal(TypeSet{})
	assert.Error(t, err, "empty type set must not serialize")
}

func TestTypeSetUnmarshalJSON(t *testing.T) {
	var s TypeSet
	require.NoError(t, json.Unmarshal([]byte(`"Header"`), &s))
	assert.Equal(t, TypeSet{ccf.TypeHeader}, s)

	require.NoError(t, json.Unmarshal([]byte(`["DataSource","ImageDataSource","DataSource"]`), &s))
	assert.Equal(t, TypeSet{ccf.TypeDataSource, ccf.TypeImageDataSource}, s)

	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}
