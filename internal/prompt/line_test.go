package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineText(t *testing.T) {
	var out bytes.Buffer
	l := NewLine(strings.NewReader("\nvalue\n"), &out)

	got, err := l.Text("Name:", "dflt", nil)
	require.NoError(t, err)
	assert.Equal(t, "dflt", got)
	assert.Contains(t, out.String(), "Name: (dflt): ")

	got, err = l.Text("Name:", "dflt", nil)
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestLineTextRepromptsOnValidationFailure(t *testing.T) {
	var out bytes.Buffer
	l := NewLine(strings.NewReader("bad\ngood\n"), &out)

	got, err := l.Text("Name:", "", func(s string) error {
		if s != "good" {
			return errors.New("must be good")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "good", got)
	assert.Contains(t, out.String(), "✖ must be good")
}

func TestLineTextLastLineWithoutNewline(t *testing.T) {
	l := NewLine(strings.NewReader("tail"), &bytes.Buffer{})
	got, err := l.Text("Name:", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}

func TestLineEOFCancels(t *testing.T) {
	l := NewLine(strings.NewReader(""), &bytes.Buffer{})

	_, err := l.Text("Name:", "x", nil)
	assert.ErrorIs(t, err, ErrCancelled)
	_, err = l.Confirm("Sure?", true)
	assert.ErrorIs(t, err, ErrCancelled)
	_, err = l.Select("Pick:", []string{"a"}, 0)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestLineConfirm(t *testing.T) {
	var out bytes.Buffer
	l := NewLine(strings.NewReader("maybe\nY\n\n"), &out)

	ok, err := l.Confirm("Sure?", false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "answer y or n")

	ok, err = l.Confirm("Sure?", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLineSelect(t *testing.T) {
	var out bytes.Buffer
	l := NewLine(strings.NewReader("\n9\n2\n"), &out)
	opts := []string{"private", "public"}

	got, err := l.Select("Scope:", opts, 0)
	require.NoError(t, err)
	assert.Equal(t, "private", got)
	assert.Contains(t, out.String(), "  2) public")

	got, err = l.Select("Scope:", opts, 0)
	require.NoError(t, err)
	assert.Equal(t, "public", got)
	assert.Contains(t, out.String(), `invalid selection "9"`)
}

func TestLineSelectNoOptions(t *testing.T) {
	l := NewLine(strings.NewReader("1\n"), &bytes.Buffer{})
	_, err := l.Select("Pick:", nil, 0)
	assert.Error(t, err)
}
