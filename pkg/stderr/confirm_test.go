// pkg/stderr/confirm_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test confirmation prompt answers, retry loop and input errors

package stderr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustadex/stderr/pkg/borders"
	"github.com/rustadex/stderr/pkg/config"
	"github.com/rustadex/stderr/pkg/errors"
)

func TestConfirmYes(t *testing.T) {
	for _, input := range []string{"y\n", "Y\n", "yes\n", "  y  \n"} {
		l, _ := newBufLogger(config.Config{})
		answer, err := l.ConfirmBuilder("Proceed?").
			WithReader(strings.NewReader(input)).
			Ask()
		require.NoError(t, err, "input %q", input)
		require.NotNil(t, answer)
		assert.True(t, *answer, "input %q", input)
	}
}

func TestConfirmNo(t *testing.T) {
	for _, input := range []string{"n\n", "N\n", "nope\n"} {
		l, _ := newBufLogger(config.Config{})
		answer, err := l.ConfirmBuilder("Proceed?").
			WithReader(strings.NewReader(input)).
			Ask()
		require.NoError(t, err)
		require.NotNil(t, answer)
		assert.False(t, *answer)
	}
}

func TestConfirmQuit(t *testing.T) {
	l, _ := newBufLogger(config.Config{})
	answer, err := l.ConfirmBuilder("Proceed?").
		WithReader(strings.NewReader("q\n")).
		Ask()
	require.NoError(t, err)
	assert.Nil(t, answer)
}

func TestConfirmRetriesOnInvalidInput(t *testing.T) {
	l, buf := newBufLogger(config.Config{})
	answer, err := l.ConfirmBuilder("Proceed?").
		WithReader(strings.NewReader("maybe\n\ny\n")).
		Ask()
	require.NoError(t, err)
	require.NotNil(t, answer)
	assert.True(t, *answer)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "Invalid input"))
	assert.Equal(t, 3, strings.Count(out, "[y/n/q] > "))
}

func TestConfirmInputEnds(t *testing.T) {
	l, _ := newBufLogger(config.Config{})
	answer, err := l.ConfirmBuilder("Proceed?").
		WithReader(strings.NewReader("")).
		Ask()
	require.Error(t, err)
	assert.Nil(t, answer)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInput))
}

func TestConfirmQuietAutoConfirms(t *testing.T) {
	l, buf := newBufLogger(config.Config{Quiet: true})

	// no reader at all: quiet answers yes before input is touched
	answer, err := l.Confirm("Proceed?")
	require.NoError(t, err)
	require.NotNil(t, answer)
	assert.True(t, *answer)
	assert.Equal(t, "", buf.String())
}

func TestConfirmBoxedPrompt(t *testing.T) {
	l, buf := newBufLogger(config.Config{})
	answer, err := l.ConfirmBuilder("Delete everything?").
		Boxed(true).
		Style(borders.Heavy).
		WithReader(strings.NewReader("n\n")).
		Ask()
	require.NoError(t, err)
	require.NotNil(t, answer)
	assert.False(t, *answer)

	out := buf.String()
	assert.Contains(t, out, "┃ Delete everything? ┃")
	assert.Contains(t, out, "Your choice [y/n/q] -> ")
}
