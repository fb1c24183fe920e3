package shared

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type prefixSpec struct{ prefix string }

func (s prefixSpec) IsSatisfiedBy(_ context.Context, v string) bool {
	return strings.HasPrefix(v, s.prefix)
}

func TestAllOf(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, AllOf[string]())
	assert.Nil(t, AllOf[string](nil, nil))

	single := AllOf[string](nil, prefixSpec{"ab"})
	assert.Equal(t, prefixSpec{"ab"}, single)

	both := AllOf[string](prefixSpec{"a"}, nil, prefixSpec{"ab"})
	assert.True(t, both.IsSatisfiedBy(ctx, "abc"))
	assert.False(t, both.IsSatisfiedBy(ctx, "acb"))
}

func TestOrNot(t *testing.T) {
	ctx := context.Background()
	spec := Or[string](prefixSpec{"x"}, Not[string](prefixSpec{"a"}))

	assert.True(t, spec.IsSatisfiedBy(ctx, "xyz"))
	assert.True(t, spec.IsSatisfiedBy(ctx, "bcd"))
	assert.False(t, spec.IsSatisfiedBy(ctx, "abc"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Science Fiction", "FIC"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Drama", "dramas"))

	// 非 ASCII 字符不做大小写映射
	assert.True(t, ContainsFold("école", "é"))
	assert.False(t, ContainsFold("ÉCOLE", "é"))
	assert.True(t, ContainsFold("ÉCOLE", "École"))
	assert.False(t, ContainsFold("\u212Aelvin", "k"))
}

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "hello, world!", FoldASCII("HeLLo, World!"))
	assert.Equal(t, "Élan \u212A", FoldASCII("ÉLAN \u212A"))
	assert.Equal(t, "", FoldASCII(""))
}
