package image

import (
	"os"
	"path/filepath"
	"testing"

	"gatedrive-go/eeprom"
)

func TestOpenMissingStartsErased(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dev.bin")
	s, err := Open(p, 32)
	if err != nil {
		t.Fatal(err)
	}
	if s.Path() != p {
		t.Fatalf("Path = %q", s.Path())
	}
	if s.Size() != 32 || s.Read(31) != eeprom.Erased || s.Dirty() || s.FileLen() != -1 {
		t.Fatalf("size=%d last=%#02x dirty=%v", s.Size(), s.Read(31), s.Dirty())
	}
}

func TestOpenPadsShortImage(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dev.bin")
	if err := os.WriteFile(p, []byte{0x00, 0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(p, 8)
	if err != nil {
		t.Fatal(err)
	}
	if s.Read(2) != 0x02 || s.Read(3) != eeprom.Erased || s.FileLen() != 3 {
		t.Fatalf("cells = % x", s.Bytes())
	}
}

func TestFlushKeepsBytesPastSize(t *testing.T) {
	p := filepath.Join(t.TempDir(), "at24c64.bin")
	orig := make([]byte, 8192)
	for i := range orig {
		orig[i] = byte(i)
	}
	if err := os.WriteFile(p, orig, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(p, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if s.FileLen() != 8192 {
		t.Fatalf("FileLen = %d", s.FileLen())
	}
	eeprom.WriteBit(s, 2, 7, 1)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 8192 {
		t.Fatalf("file length %d, want 8192", len(b))
	}
	for i := range b {
		want := orig[i]
		if i == 2 {
			want |= 0x80
		}
		if b[i] != want {
			t.Fatalf("byte %d = %#02x, want %#02x", i, b[i], want)
		}
	}
}

func TestFlushKeepsShortFileLength(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dev.bin")
	if err := os.WriteFile(p, []byte{0x00, 0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(p, 8)
	if err != nil {
		t.Fatal(err)
	}
	eeprom.WriteBit(s, 1, 7, 1)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(p)
	if len(b) != 3 || b[1] != 0x81 {
		t.Fatalf("file = % x", b)
	}

	eeprom.WriteBit(s, 5, 0, 0)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	b, _ = os.ReadFile(p)
	want := []byte{0x00, 0x81, 0x02, 0xFF, 0xFF, 0xFE}
	if string(b) != string(want) {
		t.Fatalf("file = % x, want % x", b, want)
	}
}

func TestFlushPersistsBitWrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dev.bin")
	s, err := Open(p, 4)
	if err != nil {
		t.Fatal(err)
	}
	eeprom.WriteBit(s, 2, 0, 0)
	if !s.Dirty() {
		t.Fatal("write should mark dirty")
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if s.Dirty() {
		t.Fatal("flush should clear dirty")
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 4 || b[2] != 0xFE {
		t.Fatalf("file = % x", b)
	}

	again, err := Open(p, 4)
	if err != nil {
		t.Fatal(err)
	}
	if eeprom.ReadBit(again, 2, 0) != 0 || eeprom.ReadBit(again, 2, 1) != 1 {
		t.Fatalf("reloaded = % x", again.Bytes())
	}
}

func TestOpenRejectsBadSize(t *testing.T) {
	for _, n := range []int{0, -1, 1<<16 + 1} {
		if _, err := Open(filepath.Join(t.TempDir(), "x"), n); err == nil {
			t.Fatalf("size %d accepted", n)
		}
	}
}
