package exposition

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givenergyexporter/pkg/register"
)

func sampleMetrics() []register.Metric {
	return []register.Metric{
		{Name: "battery_soc", Value: float64(87), Prom: register.Gauge},
		{Name: "battery_throughput_total", Value: 6553.8, Unit: register.EnergyKwh, Prom: register.Counter},
		{Name: "inverter_heatsink", Value: -1.5, Unit: register.TempC, Prom: register.Gauge},
		{Name: "inverter_serial_number", Value: "SA2143000B"},
		{Name: "meter_type_code", Value: "2001"},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2023, 11, 5, 12, 30, 0, 0, time.UTC)
	require.NoError(t, Render(&buf, sampleMetrics(), at))

	want := `# givenergy-exporter report 2023-11-05T12:30:00Z
# TYPE givenergy_battery_soc gauge
givenergy_battery_soc 87
# TYPE givenergy_battery_throughput_total_kwh counter
givenergy_battery_throughput_total_kwh 6553.8
# TYPE givenergy_inverter_heatsink_temp_c gauge
givenergy_inverter_heatsink_temp_c -1.5
# COMMENT givenergy_inverter_serial_number SA2143000B
# COMMENT givenergy_meter_type_code 2001
`
	assert.Equal(t, want, buf.String())
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2023, 11, 5, 12, 30, 0, 0, time.UTC)
	require.NoError(t, Render(&buf, nil, at))
	assert.Equal(t, "# givenergy-exporter report 2023-11-05T12:30:00Z\n", buf.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "givenergy.prom")
	require.NoError(t, WriteFile(path, sampleMetrics()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "givenergy_battery_soc 87\n")

	// no leftover temporary files after the rename
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "givenergy.prom", entries[0].Name())
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "givenergy.prom")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, WriteFile(path, sampleMetrics()))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale")
}
