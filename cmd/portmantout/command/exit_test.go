package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintMessageAndReturnExitCode(t *testing.T) {
	require.Equal(t, 0, PrintMessageAndReturnExitCode(nil))
	require.Equal(t, 1, PrintMessageAndReturnExitCode(errors.New("boom")))
	require.Equal(t, 2, PrintMessageAndReturnExitCode(NewExitError(2, errors.New("corrupt"))))
}

func TestExitError_Is(t *testing.T) {
	a := NewExitError(2, errors.New("one"))
	b := NewExitError(2, errors.New("two"))
	c := NewExitError(1, errors.New("three"))

	require.ErrorIs(t, a, b)
	require.NotErrorIs(t, a, c)
}
