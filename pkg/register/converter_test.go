package register

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *Table {
	return newTable("test", 20, map[uint16]Definition{
		0:  {Name: "enabled", Encoding: Bool},
		1:  {Name: "usb_inserted", Encoding: Bool, TrueValue: 0x08},
		2:  {Name: "status_bits", Encoding: Bitfield},
		3:  {Name: "device_type_code", Encoding: Hex},
		4:  {Name: "temperature", Encoding: Int16, Scaling: Deci, Unit: TempC},
		5:  {Name: "frequency", Scaling: Centi, Unit: FrequencyHz},
		6:  {Name: "energy_total", Encoding: Uint32High, Scaling: Deci, Unit: EnergyKwh, More: []uint16{7}, Prom: Counter},
		7:  cont("energy_total"),
		8:  {Name: "battery_soc_max", Second: "battery_soc_min", Encoding: DUint8},
		9:  {Name: "serial_number", Encoding: ASCII, More: []uint16{10, 11}},
		10: cont("serial_number"),
		11: cont("serial_number"),
		12: {Name: "charge_slot_start", Encoding: Time},
		13: {Name: "power_factor", Encoding: PowerFactor},
		14: {Name: "broken_total", Encoding: Uint32High, More: []uint16{16}},
		15: {Name: "orphan_low", Encoding: Uint32Low},
	})
}

func TestConvertBool(t *testing.T) {
	tbl := testTable()

	metrics, err := tbl.Convert(0, map[uint16]uint16{0: 1})
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "enabled", metrics[0].Name)
	assert.Equal(t, float64(1), metrics[0].Value)

	metrics, err = tbl.Convert(0, map[uint16]uint16{0: 0})
	require.NoError(t, err)
	assert.Equal(t, float64(0), metrics[0].Value)

	_, err = tbl.Convert(0, map[uint16]uint16{0: 2})
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestConvertBoolCustomTrueValue(t *testing.T) {
	tbl := testTable()

	metrics, err := tbl.Convert(1, map[uint16]uint16{1: 0x08})
	require.NoError(t, err)
	assert.Equal(t, float64(1), metrics[0].Value)

	_, err = tbl.Convert(1, map[uint16]uint16{1: 1})
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestConvertBitfieldAndHex(t *testing.T) {
	tbl := testTable()

	metrics, err := tbl.Convert(2, map[uint16]uint16{2: 0x0205})
	require.NoError(t, err)
	assert.Equal(t, float64(0x0205), metrics[0].Value)

	metrics, err = tbl.Convert(3, map[uint16]uint16{3: 0x2001})
	require.NoError(t, err)
	assert.Equal(t, "2001", metrics[0].Value)

	metrics, err = tbl.Convert(3, map[uint16]uint16{3: 0x003F})
	require.NoError(t, err)
	assert.Equal(t, "003f", metrics[0].Value)
}

func TestConvertScaling(t *testing.T) {
	tbl := testTable()

	metrics, err := tbl.Convert(4, map[uint16]uint16{4: 0xFFF6})
	require.NoError(t, err)
	assert.Equal(t, float64(-1), metrics[0].Value)
	assert.Equal(t, TempC, metrics[0].Unit)

	metrics, err = tbl.Convert(5, map[uint16]uint16{5: 4999})
	require.NoError(t, err)
	assert.Equal(t, 49.99, metrics[0].Value)
}

func TestConvertUint32(t *testing.T) {
	tbl := testTable()

	metrics, err := tbl.Convert(6, map[uint16]uint16{6: 0x0001, 7: 0x0002})
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, float64(0x10002)/10, metrics[0].Value)
	assert.Equal(t, Counter, metrics[0].Prom)

	// the low half is consumed through the primary, not on its own
	metrics, err = tbl.Convert(7, map[uint16]uint16{6: 1, 7: 2})
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestConvertUint32CompanionMismatch(t *testing.T) {
	tbl := testTable()

	_, err := tbl.Convert(14, map[uint16]uint16{14: 1, 15: 2, 16: 3})
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestConvertUint32LowAsPrimary(t *testing.T) {
	tbl := testTable()

	_, err := tbl.Convert(15, map[uint16]uint16{15: 2})
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestConvertDUint8(t *testing.T) {
	tbl := testTable()

	metrics, err := tbl.Convert(8, map[uint16]uint16{8: 0x0102})
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, "battery_soc_max", metrics[0].Name)
	assert.Equal(t, float64(1), metrics[0].Value)
	assert.Equal(t, "battery_soc_min", metrics[1].Name)
	assert.Equal(t, float64(2), metrics[1].Value)
}

func TestConvertASCII(t *testing.T) {
	tbl := testTable()

	metrics, err := tbl.Convert(9, map[uint16]uint16{9: 0x4142, 10: 0x3132, 11: 0x3334})
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "AB1234", metrics[0].Value)

	_, err = tbl.Convert(9, map[uint16]uint16{9: 0x4142, 10: 0x80FF, 11: 0x3334})
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestConvertTimeAndPowerFactor(t *testing.T) {
	tbl := testTable()

	metrics, err := tbl.Convert(12, map[uint16]uint16{12: 430})
	require.NoError(t, err)
	assert.Equal(t, float64(430), metrics[0].Value)

	for raw, want := range map[uint16]float64{10000: 0, 10500: 0.05, 9000: -0.1} {
		metrics, err = tbl.Convert(13, map[uint16]uint16{13: raw})
		require.NoError(t, err)
		assert.InDelta(t, want, metrics[0].Value, 1e-9)
	}
}

func TestConvertMissingRegister(t *testing.T) {
	tbl := testTable()

	_, err := tbl.Convert(0, map[uint16]uint16{})
	assert.True(t, errors.Is(err, ErrDecode))

	// companion absent from the store
	_, err = tbl.Convert(6, map[uint16]uint16{6: 1})
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestConvertUnknownAndContinuation(t *testing.T) {
	tbl := testTable()

	metrics, err := tbl.Convert(17, map[uint16]uint16{17: 123})
	require.NoError(t, err)
	assert.Empty(t, metrics)

	metrics, err = tbl.Convert(10, map[uint16]uint16{10: 123})
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestSortMetrics(t *testing.T) {
	metrics := []Metric{{Name: "b"}, {Name: "a"}, {Name: "c"}}
	SortMetrics(metrics)
	assert.Equal(t, "a", metrics[0].Name)
	assert.Equal(t, "b", metrics[1].Name)
	assert.Equal(t, "c", metrics[2].Name)
}
