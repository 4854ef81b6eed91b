package ability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindMove, KindGather, KindBuild, KindAttack, KindGarrison} {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, ok := ParseKind("fly")
	assert.False(t, ok)

	_, ok = ParseKind("unknown")
	assert.False(t, ok)

	assert.Equal(t, "unknown", Kind(0).String())
	assert.Equal(t, "unknown", Kind(200).String())
}

func TestNewHandlesAreDistinct(t *testing.T) {
	a, b := New(KindBuild), New(KindBuild)

	assert.NotSame(t, a, b)
	assert.Equal(t, a.Kind(), b.Kind())
	assert.Equal(t, "build", a.String())
	assert.False(t, Ability(a) == Ability(b))
}
