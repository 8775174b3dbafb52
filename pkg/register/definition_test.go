package register

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableTotality(t *testing.T) {
	for _, tbl := range []*Table{HoldingRegisters, InputRegisters} {
		for address := uint16(0); address <= tbl.Max(); address++ {
			d := tbl.Lookup(address)
			require.NotEmpty(t, d.Name, "address %d", address)
			if !d.Cont && !d.Unknown {
				assert.NotZero(t, d.Scaling, "address %d (%q)", address, d.Name)
				assert.NotEmpty(t, d.Prom, "address %d (%q)", address, d.Name)
			}
		}
	}
}

func TestTableDefaults(t *testing.T) {
	tbl := newTable("test", 2, map[uint16]Definition{
		0: {Name: "plain"},
	})

	d := tbl.Lookup(0)
	assert.Equal(t, Uint16, d.Encoding)
	assert.Equal(t, Unit, d.Scaling)
	assert.Equal(t, Gauge, d.Prom)
	assert.Equal(t, uint16(1), d.TrueValue)
}

func TestTableUnknownFill(t *testing.T) {
	tbl := newTable("test", 2, map[uint16]Definition{
		0: {Name: "plain"},
	})

	for address := uint16(1); address <= 2; address++ {
		d := tbl.Lookup(address)
		assert.True(t, d.Unknown)
		assert.Equal(t, fmt.Sprintf("test_reg%03d", address), d.Name)
	}

	// out of range reads as unknown too
	d := tbl.Lookup(500)
	assert.True(t, d.Unknown)
}

func TestUint32CompanionsAreContinuations(t *testing.T) {
	for _, tbl := range []*Table{HoldingRegisters, InputRegisters} {
		for address := uint16(0); address <= tbl.Max(); address++ {
			d := tbl.Lookup(address)
			if d.Cont || d.Unknown {
				continue
			}
			if d.Encoding != Uint32High && d.Encoding != ASCII {
				continue
			}
			for _, more := range d.More {
				assert.True(t, tbl.Lookup(more).Cont, "companion %d of %q", more, d.Name)
			}
		}
	}
}
