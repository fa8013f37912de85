// File: highlevel/highlevel.go
// Options-driven construction layer for staticring engines.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This package is the error-returning counterpart to the panicking
// constructors in package ring, for callers whose capacity arrives from
// configuration rather than a compile-time constant. Variant selection,
// naming and visibility — decorative concerns in the macro-generation
// sense — reduce in Go to ordinary type aliases at the call site:
//
//	type FrameLog = ring.Checked[Frame]
//
// so the builder carries only the parameters with behavioral effect.

package highlevel

import (
	"github.com/momentics/staticring/api"
	"github.com/momentics/staticring/ring"
)

// Variant selects the engine a builder call produces.
type Variant string

const (
	// VariantChecked tracks fill state; empty/partial/full are observable.
	VariantChecked Variant = "checked"
	// VariantManx omits fill tracking; the ring always reports full-size.
	VariantManx Variant = "manx"
	// VariantFIFO adds consuming oldest-first reads.
	VariantFIFO Variant = "fifo"
)

// Config holds parameters immutable per ring. All fields influence
// construction only; a built ring never re-reads its Config.
type Config struct {
	Capacity int     // Slot count, [ring.MinCapacity, ring.MaxCapacity]
	Variant  Variant // Engine variant, defaults to VariantChecked
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Capacity: 64,
		Variant:  VariantChecked,
	}
}

// New builds a ring engine for element type T from cfg. Unlike the
// constructors in package ring it reports invalid configuration as an
// error instead of panicking.
func New[T any](cfg Config) (api.Ring[T], error) {
	if cfg.Capacity < ring.MinCapacity || cfg.Capacity > ring.MaxCapacity {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "capacity out of range").
			WithContext("capacity", cfg.Capacity).
			WithContext("min", ring.MinCapacity).
			WithContext("max", ring.MaxCapacity)
	}
	switch cfg.Variant {
	case VariantChecked, "":
		return ring.NewChecked[T](cfg.Capacity), nil
	case VariantManx:
		return ring.NewManx[T](cfg.Capacity), nil
	case VariantFIFO:
		return ring.NewFIFO[T](cfg.Capacity), nil
	default:
		return nil, api.NewError(api.ErrCodeNotSupported, "unknown ring variant").
			WithContext("variant", string(cfg.Variant))
	}
}
