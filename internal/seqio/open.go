package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// ErrInputOpen is returned when an input FASTA path cannot be opened.
var ErrInputOpen = errors.New("seqio: cannot open input")

// ErrOutputOpen is returned when an output FASTA path cannot be created.
var ErrOutputOpen = errors.New("seqio: cannot create output")

// Open opens path for reading and returns a Reader over it. A ".sz"
// suffix is transparently decompressed with snappy, the same
// convention the rest of the pipeline's intermediate files use.
func Open(path string) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %v", ErrInputOpen, path, err)
	}
	var r io.Reader = f
	if strings.HasSuffix(path, ".sz") {
		r = snappy.NewReader(f)
	}
	return NewReader(bufio.NewReaderSize(r, 64*1024)), f, nil
}

// Create creates path for writing and returns a Writer over it. A
// ".sz" suffix transparently snappy-compresses the stream.
func Create(path string, lineWidth int) (*Writer, io.Closer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %v", ErrOutputOpen, path, err)
	}
	bw := bufio.NewWriterSize(f, 64*1024)
	if strings.HasSuffix(path, ".sz") {
		sw := snappy.NewBufferedWriter(bw)
		return NewWriter(sw, lineWidth), closerFunc(func() error {
			if err := sw.Close(); err != nil {
				f.Close()
				return err
			}
			if err := bw.Flush(); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}), nil
	}
	return NewWriter(bw, lineWidth), closerFunc(func() error {
		if err := bw.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
