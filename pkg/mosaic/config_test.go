package mosaic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, "dog.jpg", c.Input)
	assert.Equal(t, "out.jpg", c.Output)
	assert.Equal(t, 25, c.Ratio)
	assert.NoError(t, c.Validate())
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig()
	c.Ratio = 0
	err := c.Validate()
	assert.ErrorIs(t, err, ErrInvalidRatio)
	assert.True(t, IsKind(err, KindRatio))

	c = DefaultConfig()
	c.Output = ""
	assert.True(t, IsKind(c.Validate(), KindEncode))

	c = DefaultConfig()
	c.Input = ""
	assert.True(t, IsKind(c.Validate(), KindDecode))
}

func TestErrorKinds(t *testing.T) {
	err := &Error{Kind: KindDecode, Op: "load", Path: "a.png", Err: errors.New("boom")}
	assert.Equal(t, "decode load a.png: boom", err.Error())
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.False(t, IsKind(nil, KindUnknown))
	assert.Equal(t, "fetch", KindFetch.String())
}
