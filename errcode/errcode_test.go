package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":              OK,
		"invalid_params":  InvalidParams,
		"invalid_address": InvalidAddress,
		"invalid_bit":     InvalidBit,
		"invalid_config":  InvalidConfig,
		"unknown_preset":  UnknownPreset,
		"bus_fault":       BusFault,
		"unsupported":     Unsupported,
		"error":           Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to ok")
	}
	if Of(BusFault) != BusFault {
		t.Fatal("bare code not returned")
	}
	if Of(New(InvalidBit, "cfg", "bit 9")) != InvalidBit {
		t.Fatal("wrapped code not extracted")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatal("foreign error should map to generic code")
	}
}

func TestOfThroughErrorfWrapping(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{fmt.Errorf("load preset: %w", New(InvalidBit, "cfg", "bit 9")), InvalidBit},
		{fmt.Errorf("flush: %w", BusFault), BusFault},
		{fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", Wrap(Unsupported, "tx", errors.New("no bus")))), Unsupported},
		{New(InvalidConfig, "cfg", ""), InvalidConfig},
		{fmt.Errorf("plain: %v", BusFault), Error},
	}
	for _, tc := range cases {
		if got := Of(tc.err); got != tc.want {
			t.Fatalf("Of(%q) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("nack")
	err := Wrap(BusFault, "at24.read", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause lost")
	}
	if !errors.Is(err, BusFault) {
		t.Fatal("errors.Is should match on code")
	}
	if got, want := err.Error(), "at24.read: bus_fault: nack"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if Wrap(BusFault, "x", nil) != nil {
		t.Fatal("wrapping nil must stay nil")
	}
}
