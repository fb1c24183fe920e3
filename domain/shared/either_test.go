package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEither_Ok(t *testing.T) {
	e := Ok[int, error](5)

	assert.True(t, e.IsOk())
	assert.False(t, e.IsFail())
	assert.Equal(t, 5, e.Ok())
	assert.Nil(t, e.Error())

	v, err := e.AsArray()
	assert.Equal(t, 5, v)
	assert.NoError(t, err)
}

func TestEither_Fail(t *testing.T) {
	boom := errors.New("boom")
	e := Fail[[]string](boom)

	assert.True(t, e.IsFail())
	assert.Nil(t, e.Ok())
	assert.Equal(t, boom, e.Error())

	v, err := e.AsArray()
	assert.Nil(t, v)
	assert.ErrorIs(t, err, boom)
}

func TestSafe(t *testing.T) {
	ok := Safe(func() (string, error) { return "value", nil })
	assert.True(t, ok.IsOk())
	assert.Equal(t, "value", ok.Ok())

	boom := errors.New("boom")
	failed := Safe(func() (string, error) { return "ignored", boom })
	assert.True(t, failed.IsFail())
	assert.Equal(t, "", failed.Ok())
	assert.ErrorIs(t, failed.Error(), boom)
}
