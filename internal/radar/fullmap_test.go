package radar

import (
	"math"
	"testing"
	"time"
)

func TestFullMap_NoRangeCull(t *testing.T) {
	f := NewFullMap(DefaultFullMapConfig(), DefaultChunkSize)
	f.Update(Viewer{}, []TrackedEntity{{ID: 1, X: 0, Z: 99999}}, time.Second)
	ps := f.Placements()
	if len(ps) != 1 {
		t.Fatalf("full map must not range-cull; got %d placements", len(ps))
	}
	if !ps[0].ClampedToEdge {
		t.Fatal("distant contact should be pinned to the rim")
	}
	mag := math.Sqrt(ps[0].X*ps[0].X + ps[0].Y*ps[0].Y)
	if mag > f.cfg.DisplayRadius+1e-9 {
		t.Fatalf("clamped placement escapes the map disc: %.4f", mag)
	}
}

func TestFullMap_HandleStableAcrossTicks(t *testing.T) {
	f := NewFullMap(DefaultFullMapConfig(), DefaultChunkSize)
	ents := []TrackedEntity{{ID: 42, X: 100, Z: 100}}
	f.Update(Viewer{}, ents, time.Second)
	m1 := f.markers[42]
	if m1 == nil {
		t.Fatal("no marker acquired")
	}
	for i := 0; i < 5; i++ {
		ents[0].X += 30
		f.Update(Viewer{}, ents, time.Second)
	}
	if f.markers[42] != m1 {
		t.Fatal("persistent marker was recycled while its entity stayed on the map")
	}
}

func TestFullMap_AbsentEntityReleased(t *testing.T) {
	f := NewFullMap(DefaultFullMapConfig(), DefaultChunkSize)
	f.Update(Viewer{}, []TrackedEntity{{ID: 1, X: 10, Z: 10}, {ID: 2, X: 20, Z: 20}}, time.Second)
	if f.pool.InUse() != 2 {
		t.Fatalf("expected 2 handles in use, got %d", f.pool.InUse())
	}
	f.Update(Viewer{}, []TrackedEntity{{ID: 2, X: 20, Z: 20}}, time.Second)
	if f.pool.InUse() != 1 {
		t.Fatalf("expected 1 handle after release, got %d", f.pool.InUse())
	}
	if _, held := f.markers[1]; held {
		t.Fatal("marker map still holds the vanished entity")
	}
}

func TestFullMap_ExplorationRecordedEveryTick(t *testing.T) {
	f := NewFullMap(DefaultFullMapConfig(), 100)
	// Geometry is throttled, but exploration is not: each call lands a chunk.
	f.Update(Viewer{X: 50, Z: 50}, nil, time.Millisecond)
	f.Update(Viewer{X: 150, Z: 50}, nil, time.Millisecond)
	f.Update(Viewer{X: 250, Z: 50}, nil, time.Millisecond)
	if f.ExploredCount() != 3 {
		t.Fatalf("expected 3 explored chunks, got %d", f.ExploredCount())
	}
	if !f.SeenAt(60, 60) || !f.SeenAt(160, 60) || !f.SeenAt(260, 60) {
		t.Fatal("visited chunks not marked seen")
	}
	if f.SeenAt(360, 60) {
		t.Fatal("unvisited chunk marked seen")
	}
}

func TestFullMap_ExplorationMonotonic(t *testing.T) {
	f := NewFullMap(DefaultFullMapConfig(), 50)
	seen := map[Chunk]bool{}
	v := Viewer{}
	for i := 0; i < 200; i++ {
		v.X += 17
		v.Z -= 9
		f.Update(v, nil, 16*time.Millisecond)
		for _, c := range f.Explored() {
			seen[c] = true
		}
		// Every chunk ever reported must still be present.
		if f.ExploredCount() < len(seen) {
			t.Fatalf("explored set shrank at step %d: %d < %d", i, f.ExploredCount(), len(seen))
		}
		for c := range seen {
			if !f.Seen(c) {
				t.Fatalf("chunk %v lost from the explored set", c)
			}
		}
	}
}
