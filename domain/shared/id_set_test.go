package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDSet_AddIsIdempotent(t *testing.T) {
	a, b := NewUuid(), NewUuid()
	s := NewIDSet(a, b, a)

	s.Add(a)
	s.Add(b)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Uuid{a, b}, s.Values())
	assert.Equal(t, []string{a.String(), b.String()}, s.Strings())
}

func TestIDSet_RemoveNonMemberIsNoop(t *testing.T) {
	a, b := NewUuid(), NewUuid()
	s := NewIDSet(a)

	s.Remove(b)
	assert.Equal(t, []Uuid{a}, s.Values())

	s.Remove(a)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(a))
}

// TestIDSet_SyncReplaces 先 add x、y 再 sync [z]，结果只剩 z
func TestIDSet_SyncReplaces(t *testing.T) {
	x, y, z := NewUuid(), NewUuid(), NewUuid()
	var s IDSet[Uuid]
	s.Add(x)
	s.Add(y)

	require.NoError(t, s.Sync("categories_id", []Uuid{z, z}))
	assert.Equal(t, []Uuid{z}, s.Values())
	assert.False(t, s.Has(x))

	require.NoError(t, s.Sync("categories_id", []Uuid{}))
	assert.Equal(t, 0, s.Len())

	err := s.Sync("categories_id", nil)
	require.Error(t, err)
	assert.Equal(t, "categories_id is required", err.Error())
}

func TestIDSet_Intersects(t *testing.T) {
	a, b, c := NewUuid(), NewUuid(), NewUuid()
	s := NewIDSet(a, b)

	assert.True(t, s.Intersects([]Uuid{c, b}))
	assert.False(t, s.Intersects([]Uuid{c}))
	assert.False(t, s.Intersects(nil))
}
