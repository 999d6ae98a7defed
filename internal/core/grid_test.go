package core

import (
	"errors"
	"testing"
)

func TestNewGridStartsDead(t *testing.T) {
	g, err := NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	rows, cols := g.Dims()
	if rows != 3 || cols != 4 {
		t.Fatalf("dims = %dx%d, expected 3x4", rows, cols)
	}
	if got := g.AliveCount(); got != 0 {
		t.Fatalf("fresh grid has %d alive cells", got)
	}
	for _, s := range g.Cells() {
		if s != Dead {
			t.Fatalf("fresh grid contains %v", s)
		}
	}
}

func TestNewGridAllocationFailure(t *testing.T) {
	_, err := NewGrid(1<<20, 1<<20)
	var ae *AllocError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *AllocError, got %v", err)
	}
}

func TestSetGetToggle(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(1, 0, Alive)
	if g.Get(1, 0) != Alive {
		t.Fatal("Set/Get mismatch")
	}
	g.Toggle(1, 0)
	if g.Get(1, 0) != Dead {
		t.Fatal("Toggle did not kill the cell")
	}
	g.Toggle(0, 1)
	if g.Get(0, 1) != Alive {
		t.Fatal("Toggle did not revive the cell")
	}
}

func TestInBounds(t *testing.T) {
	g, err := NewGrid(2, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	cases := []struct {
		r, c int
		want bool
	}{
		{0, 0, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{2, 0, false},
		{0, 3, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.r, tc.c); got != tc.want {
			t.Fatalf("InBounds(%d, %d) = %v, expected %v", tc.r, tc.c, got, tc.want)
		}
	}
}

func TestClear(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(0, 0, Alive)
	g.Set(1, 1, Alive)
	g.Clear()
	if got := g.AliveCount(); got != 0 {
		t.Fatalf("Clear left %d alive cells", got)
	}
}

func TestString(t *testing.T) {
	g, err := NewGrid(2, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(0, 1, Alive)
	g.Set(1, 2, Alive)
	want := ".#.\n..#\n"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, expected %q", got, want)
	}
}
