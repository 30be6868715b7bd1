package radar

import (
	"math"
	"sort"
)

// DefaultChunkSize is the side length, in world units, of one fog-of-war
// chunk on the full map.
const DefaultChunkSize = 128.0

// Chunk identifies one fixed-size square region of the world.
type Chunk struct {
	X, Z int
}

// ChunkSet is the exploration memory backing the full map's fog-of-war: the
// set of chunks the viewer has driven through this session. It only ever
// grows. Persistence across sessions, if wanted, is the caller's job — the
// set is exposed as plain coordinates for that.
type ChunkSet struct {
	size float64
	seen map[Chunk]struct{}
}

// NewChunkSet creates an empty exploration memory with the given chunk side
// length. A non-positive size falls back to DefaultChunkSize.
func NewChunkSet(size float64) *ChunkSet {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &ChunkSet{size: size, seen: make(map[Chunk]struct{})}
}

// chunkAt quantizes a world position. Floor, not truncation: positions just
// west of the origin land in chunk -1, not chunk 0.
func (s *ChunkSet) chunkAt(wx, wz float64) Chunk {
	return Chunk{
		X: int(math.Floor(wx / s.size)),
		Z: int(math.Floor(wz / s.size)),
	}
}

// Visit marks the chunk containing the world position as explored and
// returns it.
func (s *ChunkSet) Visit(wx, wz float64) Chunk {
	c := s.chunkAt(wx, wz)
	s.seen[c] = struct{}{}
	return c
}

// Seen reports whether a chunk has been explored.
func (s *ChunkSet) Seen(c Chunk) bool {
	_, ok := s.seen[c]
	return ok
}

// SeenAt reports whether the chunk containing a world position has been
// explored.
func (s *ChunkSet) SeenAt(wx, wz float64) bool {
	return s.Seen(s.chunkAt(wx, wz))
}

// Len returns the number of explored chunks.
func (s *ChunkSet) Len() int { return len(s.seen) }

// Size returns the chunk side length in world units.
func (s *ChunkSet) Size() float64 { return s.size }

// Chunks returns every explored chunk in deterministic order, for
// serialization by the caller.
func (s *ChunkSet) Chunks() []Chunk {
	out := make([]Chunk, 0, len(s.seen))
	for c := range s.seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].X < out[j].X
	})
	return out
}
