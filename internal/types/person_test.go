package types_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/constructor-demos/internal/types"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write refused") }

func TestPersonDisplay(t *testing.T) {
	p := types.NewPerson("Aditya", 19)

	var sb strings.Builder
	require.NoError(t, p.Display(&sb))
	assert.Equal(t, "Name: Aditya\nAge: 19\n", sb.String())
}

func TestPersonCopy(t *testing.T) {
	original := types.NewPerson("Aditya", 19)

	var out strings.Builder
	dup, err := original.Copy(&out)
	require.NoError(t, err)

	assert.Equal(t, "Copy Constructor called!\n", out.String())
	assert.Equal(t, original, dup)
	assert.Equal(t, original.String(), dup.String())

	// The original is untouched by the copy.
	assert.Equal(t, "Name: Aditya\nAge: 19\n", original.String())
}

func TestPersonCopyEachTimeAnnounces(t *testing.T) {
	var out strings.Builder
	p := types.NewPerson("Aditya", 19)

	first, err := p.Copy(&out)
	require.NoError(t, err)
	_, err = first.Copy(&out)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out.String(), types.CopyNotice))
}

func TestPersonCopyWriteError(t *testing.T) {
	p := types.NewPerson("Aditya", 19)

	dup, err := p.Copy(failingWriter{})
	require.Error(t, err)
	assert.Equal(t, p, dup)
}

func TestPersonValidate(t *testing.T) {
	assert.NoError(t, types.NewPerson("Aditya", 19).Validate())
	assert.Error(t, types.NewPerson("", 19).Validate())
	assert.Error(t, types.NewPerson("Aditya", -1).Validate())
}
