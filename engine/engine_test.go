package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Steakkk/RustyZip/coder/huffman"
)

// overdeepText holds ten characters whose weights double one to the next,
// chaining the code tree past the eight levels a byte-sized code covers.
func overdeepText() string {
	var b strings.Builder
	for i := range 10 {
		count := 1
		if i > 0 {
			count = 1 << (i - 1)
		}
		b.WriteString(strings.Repeat(string(rune('a'+i)), count))
	}
	return b.String()
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEncodeFileWritesEncodedOutput(t *testing.T) {
	text := "aaababababa"
	in := writeInput(t, "input.txt", text)
	out := in + ".rz"
	encoded, err := encodeFile([]string{"huffman"}, in, out)
	require.NoError(t, err)
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, encoded, written)
	want, err := huffman.Encode(text)
	require.NoError(t, err)
	require.Equal(t, want, written)
}

func TestEncodeFileEmptyInput(t *testing.T) {
	in := writeInput(t, "empty.txt", "")
	out := in + ".rz"
	_, err := encodeFile([]string{"huffman"}, in, out)
	require.NoError(t, err)
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Empty(t, written)
}

func TestEncodeFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "absent.txt")
	_, err := encodeFile([]string{"huffman"}, in, in+".rz")
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestEncodeFileUnwritableSink(t *testing.T) {
	in := writeInput(t, "input.txt", "abc")
	out := filepath.Join(filepath.Dir(in), "missing", "out.rz")
	_, err := encodeFile([]string{"huffman"}, in, out)
	require.ErrorIs(t, err, ErrSinkUnavailable)
}

func TestEncodeFileNoOutputOnCoderFailure(t *testing.T) {
	in := writeInput(t, "skewed.txt", overdeepText())
	out := in + ".rz"
	_, err := encodeFile([]string{"huffman"}, in, out)
	require.ErrorIs(t, err, huffman.ErrTreeTooDeep)
	require.NoFileExists(t, out)
}

func TestEncodeFilesEncodesEach(t *testing.T) {
	dir := t.TempDir()
	texts := map[string]string{
		"one.txt": "aaababababa",
		"two.txt": "ababababacccdee",
	}
	var files []string
	for name, text := range texts {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(text), 0644))
		files = append(files, path)
	}
	require.NoError(t, EncodeFiles([]string{"huffman"}, files, ".rz"))
	for name, text := range texts {
		written, err := os.ReadFile(filepath.Join(dir, name+".rz"))
		require.NoError(t, err)
		want, err := huffman.Encode(text)
		require.NoError(t, err)
		require.Equal(t, want, written)
	}
}

func TestEncodeUnknownCoder(t *testing.T) {
	_, err := encode([]byte("abc"), []string{"lzss"})
	require.ErrorIs(t, err, ErrUnknownCoder)
}
