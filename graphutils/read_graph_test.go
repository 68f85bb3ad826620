package graphutils

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/require"
)

func TestBinRoundTrip(t *testing.T) {
	g := diamond(t)
	offsets, edges := g.CSR()

	for _, name := range []string{"diamond.bin", "diamond.bin" + SnappySuffix} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteGraphToBin(path, offsets, edges))

			h, err := ReadHeader(path)
			require.NoError(t, err)
			require.Equal(t, Header{N: 6, M: 5, Sizes: h.ExpectedSizes()}, h)

			gotOffsets, gotEdges, err := ReadGraphFromBin(path)
			require.NoError(t, err)
			require.Equal(t, offsets, gotOffsets)
			require.Equal(t, edges, gotEdges)

			loaded, err := LoadGraph(path, "bin", false)
			require.NoError(t, err)
			require.Equal(t, []uint32{1, 2}, loaded.InNeighbors(3))
		})
	}
}

func TestReadGraphFromBinSizeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, binary.Write(f, binary.LittleEndian, Header{N: 1, M: 0, Sizes: 1}))
	require.NoError(t, f.Close())

	_, _, err = ReadGraphFromBin(path)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

// writeRaw writes little-endian values to path, snappy framed for SnappySuffix.
func writeRaw(t *testing.T, path string, values ...any) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	var w io.Writer = f
	var sw *snappy.Writer
	if strings.HasSuffix(path, SnappySuffix) {
		sw = snappy.NewBufferedWriter(f)
		w = sw
	}
	for _, v := range values {
		require.NoError(t, binary.Write(w, binary.LittleEndian, v))
	}
	if sw != nil {
		require.NoError(t, sw.Close())
	}
	require.NoError(t, f.Close())
}

func TestReadGraphFromBinRejectsOversizedHeaders(t *testing.T) {
	overflow := Header{N: 0, M: 1 << 62}
	overflow.Sizes = overflow.ExpectedSizes() // wraps around to 32

	truncated := Header{N: 0, M: 1 << 40}
	truncated.Sizes = truncated.ExpectedSizes()

	tooMany := Header{N: MaxVertices + 1, M: 0}
	tooMany.Sizes = tooMany.ExpectedSizes()

	for _, tc := range []struct {
		name   string
		file   string
		header Header
		want   error
	}{
		{name: "edge_count_overflows_size", file: "g.bin", header: overflow, want: ErrSizeMismatch},
		{name: "edge_count_overflows_size_snappy", file: "g.bin" + SnappySuffix, header: overflow, want: ErrSizeMismatch},
		{name: "header_larger_than_file", file: "g.bin", header: truncated, want: ErrSizeMismatch},
		{name: "header_larger_than_stream", file: "g.bin" + SnappySuffix, header: truncated, want: io.ErrUnexpectedEOF},
		{name: "too_many_vertices", file: "g.bin", header: tooMany, want: ErrTooManyVertices},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			writeRaw(t, path, tc.header, []uint64{0}, []uint32{1, 2, 3})

			require.NotPanics(t, func() {
				_, err := LoadGraph(path, "bin", false)
				require.ErrorIs(t, err, tc.want)
			})
		})
	}
}

func TestHeaderValidate(t *testing.T) {
	h := Header{N: 6, M: 5}
	h.Sizes = h.ExpectedSizes()
	require.NoError(t, h.Validate(-1))
	require.NoError(t, h.Validate(int64(h.Sizes)))
	require.ErrorIs(t, h.Validate(int64(h.Sizes)-1), ErrSizeMismatch)
}

func TestReadGraphFromBinMissing(t *testing.T) {
	_, _, err := ReadGraphFromBin(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
}

func TestReadAdjList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("# diamond\n0 1 2\n1 3\n\n2 3\n3 4\n5\n"), 0o644))

	adj, err := ReadAdjList(path)
	require.NoError(t, err)
	require.Equal(t, [][]uint32{{1, 2}, {3}, {3}, {4}, nil, nil}, adj)

	g, err := LoadGraph(path, "adj", false)
	require.NoError(t, err)
	require.Equal(t, 6, g.NumVertices())
}

func TestReadAdjListBadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 x\n"), 0o644))
	_, err := ReadAdjList(path)
	require.ErrorContains(t, err, "bad vertex id")
}

func TestReadAdjListRejectsHugeIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 4294967294\n"), 0o644))
	_, err := ReadAdjList(path)
	require.ErrorIs(t, err, ErrTooManyVertices)
}

func TestLoadGraphUnknownFormat(t *testing.T) {
	_, err := LoadGraph("whatever", "gml", false)
	require.Error(t, err)
}
