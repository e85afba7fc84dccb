package eeprom

import "testing"

func TestMemStartsErased(t *testing.T) {
	m := NewMem(16)
	if m.Size() != 16 {
		t.Fatalf("size=%d", m.Size())
	}
	for i, b := range m.Bytes() {
		if b != Erased {
			t.Fatalf("cell %d = %#02x, want erased", i, b)
		}
	}
}

func TestMemOutOfRange(t *testing.T) {
	m := NewMem(2)
	m.Write(2, 0x00)
	if got := m.Read(100); got != Erased {
		t.Fatalf("read past end = %#02x", got)
	}
	if m.Reads() != 1 || m.Writes() != 1 {
		t.Fatalf("reads=%d writes=%d", m.Reads(), m.Writes())
	}
	m.ResetCounters()
	if m.Reads() != 0 || m.Writes() != 0 {
		t.Fatal("counters not reset")
	}
}

func TestMemFromCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	m := NewMemFrom(src)
	m.Write(0, 9)
	if src[0] != 1 {
		t.Fatal("NewMemFrom aliases its input")
	}
	if m.Read(0) != 9 {
		t.Fatal("write lost")
	}
}
