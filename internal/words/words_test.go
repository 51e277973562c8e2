package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/grabble/internal/dict"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	content := "cat\nDOG\n  bird  \nat\nx\nit's\n\ncatfish\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	d := dict.New()
	require.NoError(t, LoadFile(d, path))

	require.True(t, d.Contains("cat"))
	require.True(t, d.Contains("dog"), "words are lowercased")
	require.True(t, d.Contains("bird"), "words are trimmed")
	require.True(t, d.Contains("catfish"))
	require.False(t, d.Contains("at"), "short words are dropped")
	require.False(t, d.Contains("x"))
	require.Equal(t, 4, d.Len())
}

func TestLoadFileMissing(t *testing.T) {
	d := dict.New()
	require.Error(t, LoadFile(d, filepath.Join(t.TempDir(), "nope.txt")))
}

func TestLoadFileAllUnusable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc3po\n"), 0o644))

	d := dict.New()
	require.Error(t, LoadFile(d, path))
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("WORDLIST_FILE", "")

	d := dict.New()
	require.NoError(t, Load(d))
	require.False(t, d.Empty())
	require.True(t, d.Contains("cat"))
	require.True(t, d.Contains("catfish"))
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("zebra\n"), 0o644))
	t.Setenv("WORDLIST_FILE", path)

	d := dict.New()
	require.NoError(t, Load(d))
	require.True(t, d.Contains("zebra"))
	require.Equal(t, 1, d.Len())
}
