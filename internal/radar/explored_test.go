package radar

import "testing"

func TestChunkSet_FloorQuantization(t *testing.T) {
	s := NewChunkSet(128)
	if c := s.Visit(0, 0); c != (Chunk{0, 0}) {
		t.Fatalf("origin should land in chunk (0,0), got %v", c)
	}
	if c := s.Visit(127.9, 127.9); c != (Chunk{0, 0}) {
		t.Fatalf("expected (0,0), got %v", c)
	}
	if c := s.Visit(128, 0); c != (Chunk{1, 0}) {
		t.Fatalf("expected (1,0), got %v", c)
	}
	// Floor, not truncation: just west of the origin is chunk -1.
	if c := s.Visit(-0.5, -0.5); c != (Chunk{-1, -1}) {
		t.Fatalf("expected (-1,-1), got %v", c)
	}
}

func TestChunkSet_RevisitIsIdempotent(t *testing.T) {
	s := NewChunkSet(64)
	s.Visit(10, 10)
	s.Visit(20, 20)
	s.Visit(63, 1)
	if s.Len() != 1 {
		t.Fatalf("revisits inside one chunk must not grow the set: len=%d", s.Len())
	}
}

func TestChunkSet_ChunksDeterministicOrder(t *testing.T) {
	s := NewChunkSet(10)
	s.Visit(35, 5)
	s.Visit(5, 5)
	s.Visit(5, 25)
	got := s.Chunks()
	want := []Chunk{{0, 0}, {3, 0}, {0, 2}}
	if len(got) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chunk %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestChunkSet_DefaultSize(t *testing.T) {
	s := NewChunkSet(0)
	if s.Size() != DefaultChunkSize {
		t.Fatalf("expected fallback to default chunk size, got %.1f", s.Size())
	}
}
