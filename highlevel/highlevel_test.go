// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// highlevel_test.go — builder construction and validation tests.
package highlevel_test

import (
	"errors"
	"testing"

	"github.com/momentics/staticring/api"
	"github.com/momentics/staticring/highlevel"
	"github.com/momentics/staticring/ring"
)

func TestNew_Variants(t *testing.T) {
	cases := []struct {
		variant highlevel.Variant
		wantLen int // reported length of a fresh ring of capacity 8
	}{
		{highlevel.VariantChecked, 0},
		{highlevel.Variant(""), 0}, // defaults to checked
		{highlevel.VariantManx, 8},
		{highlevel.VariantFIFO, 0},
	}
	for _, tc := range cases {
		r, err := highlevel.New[int](highlevel.Config{Capacity: 8, Variant: tc.variant})
		if err != nil {
			t.Fatalf("New(%q): %v", tc.variant, err)
		}
		if r.Cap() != 8 {
			t.Errorf("New(%q): cap=%d, want 8", tc.variant, r.Cap())
		}
		if r.Len() != tc.wantLen {
			t.Errorf("New(%q): fresh len=%d, want %d", tc.variant, r.Len(), tc.wantLen)
		}
		r.Push(1)
	}
}

func TestNew_ConcreteTypes(t *testing.T) {
	r, err := highlevel.New[string](highlevel.Config{Capacity: 4, Variant: highlevel.VariantFIFO})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*ring.FIFO[string]); !ok {
		t.Errorf("VariantFIFO built %T", r)
	}
	d, ok := r.(api.Drainable[string])
	if !ok {
		t.Fatal("FIFO does not satisfy api.Drainable")
	}
	d.Push("x")
	if v, ok := d.Pop(); !ok || v != "x" {
		t.Errorf("Pop = (%q, %v)", v, ok)
	}
}

func TestNew_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3, ring.MaxCapacity + 1} {
		_, err := highlevel.New[int](highlevel.Config{Capacity: capacity})
		if err == nil {
			t.Errorf("New with capacity %d succeeded", capacity)
			continue
		}
		var apiErr *api.Error
		if !errors.As(err, &apiErr) || apiErr.Code != api.ErrCodeInvalidArgument {
			t.Errorf("capacity %d: unexpected error %v", capacity, err)
		}
	}
}

func TestNew_UnknownVariant(t *testing.T) {
	_, err := highlevel.New[int](highlevel.Config{Capacity: 4, Variant: "bogus"})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Code != api.ErrCodeNotSupported {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := highlevel.DefaultConfig()
	r, err := highlevel.New[byte](cfg)
	if err != nil {
		t.Fatalf("DefaultConfig not buildable: %v", err)
	}
	if r.Cap() != cfg.Capacity {
		t.Errorf("cap=%d, want %d", r.Cap(), cfg.Capacity)
	}
}
