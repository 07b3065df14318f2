package fault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOfWrapped(t *testing.T) {
	base := New(KindDecode, "a.png", errors.New("image: unknown format"))
	wrapped := fmt.Errorf("resize: %w", base)

	assert.True(t, Is(wrapped, KindDecode))
	assert.False(t, Is(wrapped, KindFileWrite))
	assert.Equal(t, "DecodeError: a.png: image: unknown format", base.Error())
	assert.Equal(t, "DecodeError", KindDecode.String())
}

func TestKindOfMissingFile(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)

	assert.Equal(t, KindFileNotFound, KindOf(err))
	assert.True(t, Is(FromOpen("missing.md", err), KindFileNotFound))
	assert.NoError(t, FromOpen("x", nil))
}

func TestKindOfNil(t *testing.T) {
	assert.False(t, Is(nil, KindUnknown))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}
