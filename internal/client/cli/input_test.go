package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  a@b.com  \n"))

	got, err := GetSimpleText(reader, "Enter email", &out)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", got)
	require.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "no-newline", got)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("hunter2"), pw)
	require.Contains(t, out.String(), "Enter password")
}

func TestWipeBytes(t *testing.T) {
	b := []byte("secret")
	wipeBytes(b)
	require.Equal(t, make([]byte, 6), b)
}
