// Package engine drives file encoding: it reads each input file, runs the
// content through the selected coders, writes the result alongside the
// input, and reports the size change.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/Steakkk/RustyZip/coder/huffman"
)

// Coders lists the registered coder names as accepted on the command line.
var Coders = [...]string{
	"huffman",
}

var writers = map[string]func(io.Writer) io.WriteCloser{
	"huffman": huffman.NewWriter,
}

var (
	// ErrSourceUnavailable reports an input file that could not be read.
	ErrSourceUnavailable = errors.New("input source cannot be read")
	// ErrSinkUnavailable reports an output file that could not be written.
	ErrSinkUnavailable = errors.New("output sink cannot be written")
	// ErrUnknownCoder reports a coder name with no registered writer.
	ErrUnknownCoder = errors.New("unknown coder")
)

type encoder struct {
	coder   string
	encoded []byte
}

func (e *encoder) write(content []byte) (int, error) {
	newWriter, ok := writers[e.coder]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCoder, e.coder)
	}
	var buf bytes.Buffer
	w := newWriter(&buf)
	defer w.Close()
	if _, err := w.Write(content); err != nil {
		return 0, err
	}
	e.encoded = buf.Bytes()
	return len(e.encoded), nil
}

// EncodeFiles runs every file through the named coders in order and writes
// each result next to its input with ext appended. The first failure stops
// the run; a file whose pipeline fails gets no output at all.
func EncodeFiles(coders, files []string, ext string) error {
	for _, file := range files {
		if _, err := encodeFile(coders, file, file+ext); err != nil {
			return err
		}
	}
	return nil
}

func encodeFile(coders []string, path, outPath string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	color.Cyan("Encoding %s...", path)
	encoded, err := encode(content, coders)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath, encoded, 0644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	fmt.Printf("Input size (in bytes): %v\n", len(content))
	fmt.Printf("Encoded size (in bytes): %v\n", len(encoded))
	if len(content) > 0 {
		fmt.Printf("Encoding ratio: %.2f%%\n", float32(len(encoded))/float32(len(content))*100)
	}
	color.Green("Wrote %s", outPath)
	return encoded, nil
}

func encode(content []byte, coders []string) ([]byte, error) {
	for _, coder := range coders {
		e := encoder{coder: coder}
		if _, err := e.write(content); err != nil {
			return nil, err
		}
		content = e.encoded
	}
	return content, nil
}
