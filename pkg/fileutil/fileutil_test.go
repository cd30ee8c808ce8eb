package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestHash_IsDeterministic(t *testing.T) {
	path := writeFile(t, "a.txt", "hello world")

	h1, err := Hash(path)
	require.NoError(t, err)
	h2, err := Hash(path)
	require.NoError(t, err)

	require.Equal(t, h1, h2)
	require.Len(t, h1, 64)
}

func TestHash_ChangesWithContent(t *testing.T) {
	a := writeFile(t, "a.txt", "hello world")
	b := writeFile(t, "b.txt", "hello worle")

	ha, err := Hash(a)
	require.NoError(t, err)
	hb, err := Hash(b)
	require.NoError(t, err)

	require.NotEqual(t, ha, hb)
}

func TestHash_MissingFileFails(t *testing.T) {
	_, err := Hash(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestShortHash_IsPrefixOfHash(t *testing.T) {
	path := writeFile(t, "a.txt", "hello world")

	full, err := Hash(path)
	require.NoError(t, err)

	short, err := ShortHash(path, 12)
	require.NoError(t, err)
	require.Len(t, short, 12)
	require.True(t, strings.HasPrefix(full, short))
}

func TestShortHash_DefaultsLength(t *testing.T) {
	path := writeFile(t, "a.txt", "hello world")

	short, err := ShortHash(path, 0)
	require.NoError(t, err)
	require.Len(t, short, 8)

	tooLong, err := ShortHash(path, 1000)
	require.NoError(t, err)
	require.Len(t, tooLong, 8)
}

func TestCurrentYear(t *testing.T) {
	require.Equal(t, time.Now().Year(), CurrentYear())
}

func TestFormatDate(t *testing.T) {
	dt := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	require.Equal(t, "2024-06-15", FormatDate(dt, ""))
	require.Equal(t, "June 15, 2024", FormatDate(dt, "January 2, 2006"))
}
