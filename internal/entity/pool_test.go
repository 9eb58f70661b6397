package entity

import (
	"math/rand"
	"testing"
)

type rock struct {
	id int
	y  float64
	vy float64
}

func (r *rock) Fall(dt float64) { r.y += r.vy * dt }
func (r *rock) Top() float64    { return r.y }

func newRockPool() *Pool[rock, *rock] {
	return New[rock, *rock](4, DefaultSweepMargin)
}

func checkAccounting(t *testing.T, p *Pool[rock, *rock]) {
	t.Helper()
	if p.Live()+p.Recycled() != p.Constructed() {
		t.Fatalf("live %d + recycled %d != constructed %d", p.Live(), p.Recycled(), p.Constructed())
	}
}

func TestPoolSpawnReusesRecycled(t *testing.T) {
	p := newRockPool()

	h := p.Spawn(rock{id: 1, y: 0, vy: 100})
	p.Spawn(rock{id: 2, y: 0, vy: 0})
	if p.Constructed() != 2 {
		t.Fatalf("expected 2 constructed, got %d", p.Constructed())
	}

	if !p.Recycle(h) {
		t.Fatal("Recycle of live handle should succeed")
	}
	checkAccounting(t, p)

	h3 := p.Spawn(rock{id: 3, y: 42})
	if p.Constructed() != 2 {
		t.Errorf("spawn after recycle should reuse storage, constructed = %d", p.Constructed())
	}
	if h3.Index() != h.Index() {
		t.Errorf("expected slot %d to be reused, got %d", h.Index(), h3.Index())
	}

	r, ok := p.Get(h3)
	if !ok || r.id != 3 || r.y != 42 || r.vy != 0 {
		t.Errorf("reused slot not fully overwritten: %+v", r)
	}
	checkAccounting(t, p)
}

func TestPoolStaleHandle(t *testing.T) {
	p := newRockPool()

	h := p.Spawn(rock{id: 1})
	p.Recycle(h)
	p.Spawn(rock{id: 2}) // reuses the slot

	if _, ok := p.Get(h); ok {
		t.Error("stale handle should not resolve")
	}
	if p.Recycle(h) {
		t.Error("stale handle should not recycle the new occupant")
	}
	if p.Live() != 1 {
		t.Errorf("expected 1 live, got %d", p.Live())
	}

	var zero Handle
	if _, ok := p.Get(zero); ok {
		t.Error("zero handle should never resolve")
	}
}

func TestPoolUpdateAndSweep(t *testing.T) {
	p := newRockPool()

	p.Spawn(rock{id: 1, y: 0, vy: 10})
	p.Spawn(rock{id: 2, y: 96, vy: 10})  // 96+10 = 106 > 100+5 -> swept
	p.Spawn(rock{id: 3, y: 94, vy: 10})  // 104 <= 105 -> stays
	p.Spawn(rock{id: 4, y: 200, vy: 10}) // swept

	swept := p.UpdateAndSweep(100, 1)
	if swept != 2 {
		t.Errorf("expected 2 swept, got %d", swept)
	}
	if p.Live() != 2 || p.Recycled() != 2 {
		t.Errorf("expected 2 live / 2 recycled, got %d / %d", p.Live(), p.Recycled())
	}

	// Every survivor advanced exactly once.
	got := map[int]float64{}
	p.Each(func(r *rock) bool {
		got[r.id] = r.y
		return true
	})
	if got[1] != 10 || got[3] != 104 {
		t.Errorf("unexpected survivor positions: %v", got)
	}
	checkAccounting(t, p)
}

func TestPoolClearAll(t *testing.T) {
	p := newRockPool()
	for i := 0; i < 5; i++ {
		p.Spawn(rock{id: i})
	}

	before := p.Recycled()
	n := p.ClearAll()
	if n != 5 {
		t.Errorf("ClearAll returned %d, expected 5", n)
	}
	if p.Live() != 0 {
		t.Errorf("expected no live objects, got %d", p.Live())
	}
	if p.Recycled() != before+5 {
		t.Errorf("expected %d recycled, got %d", before+5, p.Recycled())
	}
	checkAccounting(t, p)
}

func TestPoolFirstUsesPoolOrder(t *testing.T) {
	p := newRockPool()
	p.Spawn(rock{id: 1, y: 0})
	p.Spawn(rock{id: 2, y: 50})
	p.Spawn(rock{id: 3, y: 50})

	h, r, ok := p.First(func(r *rock) bool { return r.y == 50 })
	if !ok || r.id != 2 {
		t.Fatalf("First should return id 2, got %+v (ok=%v)", r, ok)
	}

	p.Recycle(h)
	_, r, ok = p.First(func(r *rock) bool { return r.y == 50 })
	if !ok || r.id != 3 {
		t.Errorf("after recycling, First should return id 3, got %+v", r)
	}

	if _, _, ok := p.First(func(r *rock) bool { return r.y < 0 }); ok {
		t.Error("First should report no match")
	}
}

func TestPoolEachStops(t *testing.T) {
	p := newRockPool()
	for i := 0; i < 4; i++ {
		p.Spawn(rock{id: i})
	}
	visits := 0
	p.Each(func(*rock) bool {
		visits++
		return visits < 2
	})
	if visits != 2 {
		t.Errorf("Each should stop after fn returns false, visited %d", visits)
	}
}

func TestPoolRandomOpsNeverLeak(t *testing.T) {
	p := newRockPool()
	rng := rand.New(rand.NewSource(7))
	var handles []Handle

	for step := 0; step < 2000; step++ {
		switch rng.Intn(5) {
		case 0, 1:
			handles = append(handles, p.Spawn(rock{id: step, y: rng.Float64() * 120, vy: rng.Float64() * 30}))
		case 2:
			p.UpdateAndSweep(100, 0.5)
		case 3:
			if len(handles) > 0 {
				p.Recycle(handles[rng.Intn(len(handles))])
			}
		case 4:
			if rng.Intn(10) == 0 {
				p.ClearAll()
			}
		}
		checkAccounting(t, p)
	}

	// Each live slot is listed exactly once.
	seen := map[*rock]bool{}
	p.Each(func(r *rock) bool {
		if seen[r] {
			t.Fatalf("object %d listed twice", r.id)
		}
		seen[r] = true
		return true
	})
	if len(seen) != p.Live() {
		t.Errorf("Each visited %d objects, Live() = %d", len(seen), p.Live())
	}
}
