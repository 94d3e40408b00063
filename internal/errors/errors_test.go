package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Format(t *testing.T) {
	err := New(ErrSpawn, "Couldn't run 'ping'", "Check that ping is on your PATH.")

	msg := err.Error()
	assert.Contains(t, msg, "✗ Couldn't run 'ping'")
	assert.Contains(t, msg, "Check that ping is on your PATH.")
}

func TestError_WrapPreservesCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := WrapWithCode(cause, ErrSpawn, "Couldn't run 'ping'", "")

	assert.Contains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, cause)
}

func TestIsCode(t *testing.T) {
	err := New(ErrGeometry, "diagonal", "")

	assert.True(t, IsCode(err, ErrGeometry))
	assert.False(t, IsCode(err, ErrStream))
	assert.False(t, IsCode(nil, ErrGeometry))
	assert.False(t, IsCode(stderrors.New("plain"), ErrGeometry))
}

func TestIsCode_WrappedDeeper(t *testing.T) {
	inner := New(ErrStream, "ping quit", "")
	outer := Wrap(inner, "stream failed")

	require.True(t, IsCode(outer, ErrStream))
}
