package eeprom

// Erased is the value of a blank EEPROM cell.
const Erased byte = 0xFF

// Mem is an in-memory ByteStore of fixed capacity. It starts erased.
// Reads past the end return Erased and writes past the end are dropped;
// both still count as accesses.
type Mem struct {
	cells  []byte
	reads  int
	writes int
}

var _ ByteStore = (*Mem)(nil)

func NewMem(size int) *Mem {
	m := &Mem{cells: make([]byte, size)}
	m.Erase()
	return m
}

// NewMemFrom wraps a copy of b.
func NewMemFrom(b []byte) *Mem {
	return &Mem{cells: append([]byte(nil), b...)}
}

func (m *Mem) Read(addr uint16) byte {
	m.reads++
	if int(addr) >= len(m.cells) {
		return Erased
	}
	return m.cells[addr]
}

func (m *Mem) Write(addr uint16, v byte) {
	m.writes++
	if int(addr) >= len(m.cells) {
		return
	}
	m.cells[addr] = v
}

// Preload sets a cell without counting an access.
func (m *Mem) Preload(addr uint16, v byte) {
	if int(addr) < len(m.cells) {
		m.cells[addr] = v
	}
}

// Erase fills every cell with Erased. Counters are kept.
func (m *Mem) Erase() {
	for i := range m.cells {
		m.cells[i] = Erased
	}
}

// Bytes returns the backing cells. The slice aliases the store.
func (m *Mem) Bytes() []byte { return m.cells }

func (m *Mem) Size() int   { return len(m.cells) }
func (m *Mem) Reads() int  { return m.reads }
func (m *Mem) Writes() int { return m.writes }

// ResetCounters zeroes the access counters.
func (m *Mem) ResetCounters() { m.reads, m.writes = 0, 0 }
