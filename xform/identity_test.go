package xform_test

import (
	"testing"

	"github.com/on-the-ground/xform_go/xform"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_ReturnsArgument(t *testing.T) {
	assert.Equal(t, 3, xform.Identity(3))
	assert.Equal(t, "go", xform.Identity("go"))
}

func TestIdentity_ReturnsSameReference(t *testing.T) {
	m := map[string]int{"a": 1}
	out := xform.Identity(m)
	out["b"] = 2
	assert.Equal(t, 2, m["b"])

	p := &struct{ n int }{n: 1}
	assert.Same(t, p, xform.Identity(p))

	s := []int{1, 2, 3}
	xform.Identity(s)[0] = 9
	assert.Equal(t, 9, s[0])
}

func TestIdentityFn(t *testing.T) {
	assert.Equal(t, 7, xform.IdentityFn(7))

	err := recoverError(func() { xform.IdentityFn(7, 8) })
	assert.ErrorIs(t, err, xform.ErrStageArity)
}
