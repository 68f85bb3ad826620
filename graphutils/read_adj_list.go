package graphutils

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MaxAdjListVertices caps vertex ids in text adjacency lists. Larger graphs
// belong in the binary format.
const MaxAdjListVertices = 1 << 28

// ReadAdjList reads a text adjacency list: one line per source vertex,
// "u v1 v2 ...". Blank lines and lines starting with '#' are skipped.
// Vertices that only appear as targets still get an (empty) list.
func ReadAdjList(path string) ([][]uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	// Lines are kept as parsed and the graph is sized once from the largest id.
	var rows [][]uint32
	n := 0

	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)
	line := 0
	for sc.Scan() {
		line++
		tok := strings.Fields(sc.Text())
		if len(tok) == 0 || strings.HasPrefix(tok[0], "#") {
			continue
		}
		ids := make([]uint32, len(tok))
		for i, s := range tok {
			v, err := strconv.ParseUint(s, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad vertex id %q", path, line, s)
			}
			if v >= MaxAdjListVertices {
				return nil, fmt.Errorf("%w: %s:%d: vertex id %d >= %d", ErrTooManyVertices, path, line, v, MaxAdjListVertices)
			}
			ids[i] = uint32(v)
			n = max(n, int(v)+1)
		}
		rows = append(rows, ids)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	G := make([][]uint32, n)
	for _, ids := range rows {
		u := ids[0]
		G[u] = append(G[u], ids[1:]...)
	}
	return G, nil
}
