// Package image keeps an EEPROM image in a plain file so host tools can edit
// a device dump offline.
package image

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gatedrive-go/eeprom"
)

// Store is a file-backed eeprom.ByteStore. Writes land in memory until Flush.
//
// Flush never shortens the file: bytes past size are carried through
// untouched, and a short file only grows as far as the highest written cell.
type Store struct {
	path    string
	mem     *eeprom.Mem
	fileLen int    // -1 when the file did not exist
	extent  int    // cells of mem written back on Flush
	tail    []byte // file bytes past size
	dirty   bool
}

var _ eeprom.ByteStore = (*Store)(nil)

// Open loads the image at path. A missing file starts as size erased cells.
// A short file reads as erased past its end.
func Open(path string, size int) (*Store, error) {
	if size <= 0 || size > 1<<16 {
		return nil, fmt.Errorf("image: size %d out of range", size)
	}
	cells := make([]byte, size)
	for i := range cells {
		cells[i] = eeprom.Erased
	}
	s := &Store{path: path, fileLen: -1, extent: size}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		copy(cells, b)
		s.fileLen = len(b)
		if len(b) > size {
			s.tail = append([]byte(nil), b[size:]...)
		} else {
			s.extent = len(b)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("image: read %s: %w", path, err)
	}
	s.mem = eeprom.NewMemFrom(cells)
	return s, nil
}

func (s *Store) Read(addr uint16) byte { return s.mem.Read(addr) }

func (s *Store) Write(addr uint16, v byte) {
	s.mem.Write(addr, v)
	if n := int(addr) + 1; n <= s.mem.Size() && n > s.extent {
		s.extent = n
	}
	s.dirty = true
}

func (s *Store) Path() string  { return s.path }
func (s *Store) Size() int     { return s.mem.Size() }
func (s *Store) Dirty() bool   { return s.dirty }
func (s *Store) Bytes() []byte { return s.mem.Bytes() }

// FileLen is the length of the file as opened, or -1 if it did not exist.
func (s *Store) FileLen() int { return s.fileLen }

// Flush writes the image back through a temp file and rename.
func (s *Store) Flush() error {
	if !s.dirty {
		return nil
	}
	data := append(append([]byte(nil), s.mem.Bytes()[:s.extent]...), s.tail...)

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".eeprom-*")
	if err != nil {
		return fmt.Errorf("image: flush: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("image: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("image: flush: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("image: flush: %w", err)
	}
	s.dirty = false
	return nil
}
