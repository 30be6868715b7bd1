package radar

import "testing"

func newMarkerPool(capacity int) *Pool[*Marker] {
	return NewPool(capacity, newMarker, (*Marker).hide)
}

func TestPool_CapacityInvariant(t *testing.T) {
	p := newMarkerPool(3)
	var held []*Marker
	for i := 0; i < 3; i++ {
		m, ok := p.Acquire()
		if !ok {
			t.Fatalf("acquire %d under capacity must succeed", i)
		}
		held = append(held, m)
		if p.InUse() > p.Capacity() {
			t.Fatalf("in-use %d exceeds capacity %d", p.InUse(), p.Capacity())
		}
	}
	if _, ok := p.Acquire(); ok {
		t.Fatal("acquire beyond capacity must report exhaustion")
	}
	if p.InUse() != 3 {
		t.Fatalf("expected 3 in use, got %d", p.InUse())
	}
	_ = held
}

func TestPool_ReleaseRecycles(t *testing.T) {
	p := newMarkerPool(1)
	m1, _ := p.Acquire()
	p.Release(m1)
	m2, ok := p.Acquire()
	if !ok {
		t.Fatal("acquire after release must succeed")
	}
	if m1 != m2 {
		t.Fatal("pool created a new handle instead of recycling the freed one")
	}
}

func TestPool_ReleaseClearsState(t *testing.T) {
	p := newMarkerPool(1)
	m, _ := p.Acquire()
	m.EntityID = 99
	m.X, m.Y = 12, -7
	m.Style.Pulse = 0.8
	m.Visible = true
	p.Release(m)
	if *m != (Marker{}) {
		t.Fatalf("released handle leaked state into its next occupant: %+v", *m)
	}
}

func TestPool_ExhaustionRecoversAfterRelease(t *testing.T) {
	p := newMarkerPool(2)
	a, _ := p.Acquire()
	b, _ := p.Acquire()
	if _, ok := p.Acquire(); ok {
		t.Fatal("expected exhaustion")
	}
	p.Release(a)
	if _, ok := p.Acquire(); !ok {
		t.Fatal("pool must recover as handles are released")
	}
	_ = b
}

func TestPool_Reset(t *testing.T) {
	p := newMarkerPool(4)
	for i := 0; i < 4; i++ {
		m, _ := p.Acquire()
		m.Visible = true
	}
	p.Reset()
	if p.InUse() != 0 {
		t.Fatalf("reset left %d handles in use", p.InUse())
	}
	for i := 0; i < 4; i++ {
		m, ok := p.Acquire()
		if !ok {
			t.Fatalf("acquire %d after reset must succeed", i)
		}
		if m.Visible {
			t.Fatal("reset must hide every handle")
		}
	}
}
