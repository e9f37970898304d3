// Package huffman derives a prefix-free code for the characters of a text
// and encodes the text with it. Character frequencies shape a binary tree
// whose left and right turns become code bits, so no character's code path
// is a prefix of another's. Every encoded character occupies one whole
// output byte, which caps usable trees at eight levels below the root.
package huffman

import (
	"errors"
	"fmt"
	"io"

	pb "github.com/cheggaaa/pb/v3"
)

var (
	// ErrTreeTooDeep reports an alphabet whose code tree exceeds the
	// eight levels an 8-bit code can address.
	ErrTreeTooDeep = errors.New("code tree deeper than 8-bit code capacity")
	// ErrCharUnmapped reports a character with no entry in the code
	// table.
	ErrCharUnmapped = errors.New("character missing from code table")
)

// A CodeTable maps each character of a text to its assigned code value.
type CodeTable map[rune]byte

// countFrequencies tallies occurrences per character of text.
func countFrequencies(text string) map[rune]int {
	freq := make(map[rune]int)
	for _, ch := range text {
		freq[ch]++
	}
	return freq
}

// assignCodes reads the code table out of t. A lone leaf, covering
// single-character and empty input, gets code 0 directly. Any other tree is
// walked depth first, each leaf receiving the bits accumulated along its
// path.
func assignCodes(t tree) (CodeTable, error) {
	table := make(CodeTable)
	if l, ok := t.(leaf); ok {
		table[l.ch] = 0
		return table, nil
	}
	if err := walk(t, table, 0, 1); err != nil {
		return nil, err
	}
	return table, nil
}

// walk assigns codes below t. code holds the bits accumulated so far and
// cursor the bit for the current depth; descending a level shifts the
// cursor left, and taking a right branch toggles the bit the cursor held on
// arrival. A cursor of zero at a node means its children sit more than
// eight levels down, past what a byte-sized code can express.
func walk(t tree, table CodeTable, code, cursor byte) error {
	switch v := t.(type) {
	case leaf:
		table[v.ch] = code
	case node:
		if cursor == 0 {
			return ErrTreeTooDeep
		}
		if err := walk(v.left, table, code, cursor<<1); err != nil {
			return err
		}
		code ^= cursor
		if err := walk(v.right, table, code, cursor<<1); err != nil {
			return err
		}
	}
	return nil
}

// Encode maps every character of text to its code, one output byte per
// character, in text order.
func (t CodeTable) Encode(text string) ([]byte, error) {
	encoded := make([]byte, 0, len(text))
	for _, ch := range text {
		code, ok := t[ch]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrCharUnmapped, ch)
		}
		encoded = append(encoded, code)
	}
	return encoded, nil
}

// BuildTable derives the code table for text: characters are counted,
// gathered into a weight-sorted forest of leaves, merged into a single
// tree, and the tree's paths read back out as codes.
func BuildTable(text string) (CodeTable, error) {
	return assignCodes(buildTree(newForest(countFrequencies(text))))
}

// Encode builds the code table for text and encodes text with it. Empty
// input encodes to an empty sequence.
func Encode(text string) ([]byte, error) {
	table, err := BuildTable(text)
	if err != nil {
		return nil, err
	}
	return table.Encode(text)
}

// progressChunk is the number of characters encoded between progress bar
// updates.
const progressChunk = 4096

// A Writer encodes everything handed to Write and forwards the encoded
// bytes to the underlying writer. Each Write is coded independently with a
// table derived from that write's content.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer encoding into w.
func NewWriter(w io.Writer) io.WriteCloser {
	return &Writer{w: w}
}

func (cw *Writer) Write(data []byte) (int, error) {
	text := string(data)
	table, err := BuildTable(text)
	if err != nil {
		return 0, err
	}
	chars := []rune(text)
	bar := pb.New(len(chars))
	bar.Set(pb.Bytes, true)
	bar.Start()
	defer bar.Finish()
	encoded := make([]byte, 0, len(chars))
	for start := 0; start < len(chars); start += progressChunk {
		end := min(start+progressChunk, len(chars))
		chunk, err := table.Encode(string(chars[start:end]))
		if err != nil {
			return 0, err
		}
		encoded = append(encoded, chunk...)
		bar.Add(end - start)
	}
	if _, err := cw.w.Write(encoded); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (cw *Writer) Close() error {
	return nil
}
