package graphutils

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"
)

// ErrSizeMismatch is returned when the header's byte count disagrees with n and m.
var ErrSizeMismatch = errors.New("graphutils: size mismatch")

// SnappySuffix marks binary graphs stored as a snappy framed stream.
const SnappySuffix = ".sz"

// Header is the fixed prefix of a binary CSR graph file.
type Header struct {
	N, M, Sizes uint64
}

// ExpectedSizes returns the byte count a well-formed file with this n and m
// has. It overflows for absurd n or m; Validate rejects those first.
func (h Header) ExpectedSizes() uint64 {
	return (h.N+1)*8 + h.M*4 + 3*8
}

// maxEdges bounds m so that ExpectedSizes cannot overflow for any n <= MaxVertices.
const maxEdges = (math.MaxUint64 - (MaxVertices+1)*8 - 3*8) / 4

// Validate checks the header against itself and, when fileSize >= 0, against
// the number of bytes actually available.
func (h Header) Validate(fileSize int64) error {
	if h.N > MaxVertices {
		return fmt.Errorf("%w: %d", ErrTooManyVertices, h.N)
	}
	if h.M > maxEdges {
		return fmt.Errorf("%w: m=%d cannot be addressed", ErrSizeMismatch, h.M)
	}
	if h.Sizes != h.ExpectedSizes() {
		return fmt.Errorf("%w: got %d, expected %d", ErrSizeMismatch, h.Sizes, h.ExpectedSizes())
	}
	if fileSize >= 0 && h.Sizes > uint64(fileSize) {
		return fmt.Errorf("%w: header needs %d bytes, file has %d", ErrSizeMismatch, h.Sizes, fileSize)
	}
	return nil
}

// ReadGraphFromBin reads a binary CSR graph in the below format.
/*
Data format (little endian):
n (uint64)
m (uint64)
sizes (uint64)
offsets[0…n] ( (n+1)×uint64 )
edgeIDs[0…m-1] ( m×uint32 )
*/
// Files ending in SnappySuffix are decoded as a snappy stream; others are
// memory-mapped so huge graphs are not copied through a read buffer twice.
func ReadGraphFromBin(path string) (offsets []uint64, edges []uint32, err error) {
	r, closer, size, err := openBin(path)
	if err != nil {
		return nil, nil, err
	}
	defer closer.Close()

	offsets, edges, err = readCSR(r, size)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return offsets, edges, nil
}

// ReadHeader decodes only the three header words of a binary CSR graph.
func ReadHeader(path string) (Header, error) {
	r, closer, _, err := openBin(path)
	if err != nil {
		return Header{}, err
	}
	defer closer.Close()

	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("read header %s: %w", path, err)
	}
	return h, nil
}

// openBin returns a reader over the file's bytes and their count, or -1 for
// snappy streams whose decoded length is unknown until read.
func openBin(path string) (io.Reader, io.Closer, int64, error) {
	if strings.HasSuffix(path, SnappySuffix) {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("open %s: %w", path, err)
		}
		return snappy.NewReader(bufio.NewReader(f)), f, -1, nil
	}
	m, err := mmap.Open(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("mmap %s: %w", path, err)
	}
	size := int64(m.Len())
	return bufio.NewReaderSize(io.NewSectionReader(m, 0, size), 1<<20), m, size, nil
}

// readBlock is how many words readWords decodes per call when the total is
// not yet backed by a known file size.
const readBlock = 1 << 16

func readCSR(r io.Reader, size int64) ([]uint64, []uint32, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, nil, err
	}
	if err := h.Validate(size); err != nil {
		return nil, nil, err
	}

	// A size-checked header can be allocated up front; a streamed one grows
	// as data arrives so a lying header fails with EOF instead of a huge make.
	trusted := size >= 0
	offsets, err := readWords[uint64](r, h.N+1, trusted)
	if err != nil {
		return nil, nil, err
	}
	edges, err := readWords[uint32](r, h.M, trusted)
	if err != nil {
		return nil, nil, err
	}
	return offsets, edges, nil
}

func readWords[T uint32 | uint64](r io.Reader, count uint64, trusted bool) ([]T, error) {
	if trusted {
		out := make([]T, count)
		if err := binary.Read(r, binary.LittleEndian, out); err != nil {
			return nil, err
		}
		return out, nil
	}
	out := make([]T, 0, min(count, readBlock))
	buf := make([]T, min(count, readBlock))
	for remaining := count; remaining > 0; {
		k := min(remaining, readBlock)
		if err := binary.Read(r, binary.LittleEndian, buf[:k]); err != nil {
			return nil, err
		}
		out = append(out, buf[:k]...)
		remaining -= k
	}
	return out, nil
}

// WriteGraphToBin writes offsets and edges in the ReadGraphFromBin format.
// A path ending in SnappySuffix is written as a snappy stream.
func WriteGraphToBin(path string, offsets []uint64, edges []uint32) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer
	var flush func() error
	if strings.HasSuffix(path, SnappySuffix) {
		sw := snappy.NewBufferedWriter(f)
		w, flush = sw, sw.Close
	} else {
		bw := bufio.NewWriter(f)
		w, flush = bw, bw.Flush
	}

	h := Header{N: uint64(len(offsets) - 1), M: uint64(len(edges))}
	h.Sizes = h.ExpectedSizes()
	for _, v := range []any{h, offsets, edges} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return flush()
}

// LoadGraph reads a graph file and builds its CSR pair. Format is "bin"
// (binary CSR, optionally snappy) or "adj" (text adjacency list).
func LoadGraph(path, format string, symmetric bool) (*Graph, error) {
	switch format {
	case "bin":
		offsets, edges, err := ReadGraphFromBin(path)
		if err != nil {
			return nil, err
		}
		return FromCSR(offsets, edges, symmetric)
	case "adj":
		adj, err := ReadAdjList(path)
		if err != nil {
			return nil, err
		}
		return FromAdjacency(adj, symmetric)
	default:
		return nil, fmt.Errorf("graphutils: unknown graph format %q", format)
	}
}
