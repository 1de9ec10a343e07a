package recent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushFrontAndDedupe(t *testing.T) {
	list := []string{"🔥", "🍕", "🎉"}

	got := Push(list, "🚀", 20)
	require.Equal(t, []string{"🚀", "🔥", "🍕", "🎉"}, got)

	// Re-picking an emoji moves it to the front instead of duplicating.
	got = Push(got, "🍕", 20)
	require.Equal(t, []string{"🍕", "🚀", "🔥", "🎉"}, got)
}

func TestPushTruncatesToMax(t *testing.T) {
	list := []string{"a", "b", "c"}
	got := Push(list, "d", 3)
	require.Equal(t, []string{"d", "a", "b"}, got)
}

func TestPushDoesNotMutateInput(t *testing.T) {
	list := []string{"a", "b"}
	_ = Push(list, "c", 20)
	require.Equal(t, []string{"a", "b"}, list)
}

func TestPushZeroMaxUsesDefault(t *testing.T) {
	var list []string
	for i := 0; i < 30; i++ {
		list = Push(list, string(rune('a'+i)), 0)
	}
	require.Len(t, list, DefaultMax)
}

func TestStoreLoadMissingFile(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	list, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestStoreRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	want := []string{"😀", "🔥", "🍕"}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".emoji_picker")
	s := Store{Dir: dir}
	require.NoError(t, s.Save([]string{"😀"}))

	_, err := os.Stat(filepath.Join(dir, "recent_emojis.json"))
	require.NoError(t, err)
}

func TestStoreLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recent_emojis.json"), []byte("{not json"), 0o644))
	s := Store{Dir: dir}
	_, err := s.Load()
	require.Error(t, err)
}
