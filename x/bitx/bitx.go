// Package bitx holds single-bit helpers for unsigned register and memory words.
//
// Positions at or beyond the width of T select no bit: Mask returns 0, Bit
// returns 0 and Set/Clear return v unchanged.
package bitx

import "golang.org/x/exp/constraints"

// Mask returns a word with only bit pos set.
func Mask[T constraints.Unsigned](pos uint8) T { return T(1) << pos }

// Bit returns bit pos of v as 0 or 1.
func Bit[T constraints.Unsigned](v T, pos uint8) T { return (v >> pos) & 0x01 }

// Set returns v with bit pos set.
func Set[T constraints.Unsigned](v T, pos uint8) T { return v | Mask[T](pos) }

// Clear returns v with bit pos cleared.
func Clear[T constraints.Unsigned](v T, pos uint8) T { return v &^ Mask[T](pos) }

// With returns v with bit pos set when b is nonzero and cleared otherwise.
func With[T constraints.Unsigned, B constraints.Integer](v T, pos uint8, b B) T {
	if b != 0 {
		return Set(v, pos)
	}
	return Clear(v, pos)
}
