// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ringidx_test

import (
	"testing"

	"github.com/momentics/tinydeque/internal/ringidx"
)

func TestWrapNormalizes(t *testing.T) {
	cases := []struct {
		i, size, want int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{9, 4, 1},
		{-1, 4, 3},
		{-5, 4, 3},
		{-4, 4, 0},
		{7, 1, 0},
	}
	for _, c := range cases {
		if got := ringidx.Wrap(c.i, c.size); got != c.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", c.i, c.size, got, c.want)
		}
	}
}

func TestWrapZeroSize(t *testing.T) {
	// Degenerate zero-capacity buffer: no modulo-by-zero, index pinned to 0.
	if got := ringidx.Wrap(5, 0); got != 0 {
		t.Errorf("Wrap(5, 0) = %d, want 0", got)
	}
	if got := ringidx.WrapAdd(0, 1, 0); got != 0 {
		t.Errorf("WrapAdd(0, 1, 0) = %d, want 0", got)
	}
	if got := ringidx.WrapSub(0, 1, 0); got != 0 {
		t.Errorf("WrapSub(0, 1, 0) = %d, want 0", got)
	}
}

func TestWrapAddSub(t *testing.T) {
	if got := ringidx.WrapAdd(3, 2, 4); got != 1 {
		t.Errorf("WrapAdd(3, 2, 4) = %d, want 1", got)
	}
	if got := ringidx.WrapSub(0, 1, 4); got != 3 {
		t.Errorf("WrapSub(0, 1, 4) = %d, want 3", got)
	}
	if got := ringidx.WrapSub(2, 6, 4); got != 0 {
		t.Errorf("WrapSub(2, 6, 4) = %d, want 0", got)
	}
}

func TestSplitEmpty(t *testing.T) {
	buf := []int{9, 9, 9, 9}
	first, second := ringidx.Split(buf, 2, 0)
	if len(first) != 0 || len(second) != 0 {
		t.Errorf("empty split = (%v, %v), want two empty views", first, second)
	}
}

func TestSplitContiguous(t *testing.T) {
	buf := []int{0, 1, 2, 3, 0}
	first, second := ringidx.Split(buf, 1, 3)
	if len(second) != 0 {
		t.Errorf("contiguous split second view = %v, want empty", second)
	}
	want := []int{1, 2, 3}
	for i, v := range want {
		if first[i] != v {
			t.Errorf("first[%d] = %d, want %d", i, first[i], v)
		}
	}
}

func TestSplitWrapped(t *testing.T) {
	// Logical [3, 4, 1] laid out as buf[3]=3, buf[0]=4... tail=3, length=3
	buf := []int{4, 1, 0, 3}
	first, second := ringidx.Split(buf, 3, 3)
	if len(first) != 1 || first[0] != 3 {
		t.Errorf("first = %v, want [3]", first)
	}
	if len(second) != 2 || second[0] != 4 || second[1] != 1 {
		t.Errorf("second = %v, want [4 1]", second)
	}
}

func TestSplitFullSameIndex(t *testing.T) {
	// Full ring with tail == head: the whole buffer, starting at tail.
	buf := []int{2, 3, 0, 1}
	first, second := ringidx.Split(buf, 2, 4)
	got := append(append([]int{}, first...), second...)
	want := []int{0, 1, 2, 3}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("concatenation = %v, want %v", got, want)
		}
	}
}
