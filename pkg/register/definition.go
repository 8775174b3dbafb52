package register

import "fmt"

// Definition is the per-address metadata describing one register.
// Entries carry only the fields their encoding needs: More points a
// primary at its companion address(es), Second names the low byte
// metric of a DUint8 split, Cont marks a companion that never emits a
// metric of its own, Unknown marks an address with no known meaning.
type Definition struct {
	Name      string
	Second    string
	Encoding  Encoding
	Scaling   Scaling
	Unit      MeasurementUnit
	More      []uint16
	TrueValue uint16
	WriteSafe bool
	Prom      Kind
	Cont      bool
	Unknown   bool
}

// Table is a total mapping from register address to definition: every
// address in 0..max resolves to some entry, gaps being filled with
// explicit unknown markers at build time. Tables are built once at
// startup and never mutated.
type Table struct {
	name string
	max  uint16
	defs map[uint16]Definition
}

// newTable normalizes the sparse definition map into a total one:
// omitted defaults become explicit (scaling 1, gauge, true value 1)
// and every unlisted address up to max gets an unknown marker named
// <name>_reg<addr>.
func newTable(name string, max uint16, defs map[uint16]Definition) *Table {
	t := &Table{
		name: name,
		max:  max,
		defs: make(map[uint16]Definition, max+1),
	}
	for addr := uint16(0); addr <= max; addr++ {
		d, ok := defs[addr]
		if !ok {
			d = Definition{Name: fmt.Sprintf("%s_reg%03d", name, addr), Unknown: true}
		}
		if d.Scaling == 0 {
			d.Scaling = Unit
		}
		if d.Prom == "" {
			d.Prom = Gauge
		}
		if d.TrueValue == 0 {
			d.TrueValue = 1
		}
		t.defs[addr] = d
	}
	return t
}

// Lookup resolves an address to its definition. Addresses beyond the
// table's range resolve to an unknown marker so conversion of an
// over-wide block degrades to skipping rather than failing.
func (t *Table) Lookup(address uint16) Definition {
	d, ok := t.defs[address]
	if !ok {
		return Definition{Name: fmt.Sprintf("%s_reg%03d", t.name, address), Unknown: true, Scaling: Unit, Prom: Gauge, TrueValue: 1}
	}
	return d
}

// Max is the highest address the table defines.
func (t *Table) Max() uint16 {
	return t.max
}

func cont(name string) Definition {
	return Definition{Name: name, Cont: true}
}
