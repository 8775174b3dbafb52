package collector

import (
	"context"
	"io"
	"net"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givenergyexporter/pkg/protocol/givenergy/runtime"
	"givenergyexporter/pkg/register"
)

// fakeInverter answers register reads from two flat word arrays. A
// function code listed in fail makes it flag a device error instead.
type fakeInverter struct {
	listener net.Listener
	input    [302]uint16
	holding  [202]uint16
	fail     byte
}

func newFakeInverter(t *testing.T) *fakeInverter {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	f := &fakeInverter{listener: listener}
	t.Cleanup(func() { _ = listener.Close() })
	go f.serve()
	return f
}

func (f *fakeInverter) hostPort(t *testing.T) (string, int) {
	t.Helper()
	host, portText, err := net.SplitHostPort(f.listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portText)
	require.NoError(t, err)
	return host, port
}

func (f *fakeInverter) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeInverter) handle(conn net.Conn) {
	defer conn.Close()
	for {
		request := make([]byte, 34)
		if _, err := io.ReadFull(conn, request); err != nil {
			return
		}
		functionCode := request[27]
		base := uint16(request[28])<<8 | uint16(request[29])
		count := uint16(request[30])<<8 | uint16(request[31])

		payload := make([]byte, 0, 36+2*count)
		payload = append(payload, []byte("WF2143000A")...)
		payload = append(payload, 0, 0, 0, 0, 0, 0, 0, 8)
		payload = append(payload, 0x32)
		if functionCode == f.fail {
			payload = append(payload, functionCode|0x80)
		} else {
			payload = append(payload, functionCode)
		}
		payload = append(payload, []byte("SA2143000B")...)
		payload = append(payload, byte(base>>8), byte(base), byte(count>>8), byte(count))
		if functionCode != f.fail {
			for reg := base; reg < base+count; reg++ {
				var v uint16
				if functionCode == runtime.ReadInputRegisters {
					v = f.input[reg]
				} else {
					v = f.holding[reg]
				}
				payload = append(payload, byte(v>>8), byte(v))
			}
		}
		payload = append(payload, 0xBE, 0xEF)

		frame := make([]byte, 0, 8+len(payload))
		frame = append(frame, 0x59, 0x59, 0x00, 0x01)
		length := uint16(len(payload) + 2)
		frame = append(frame, byte(length>>8), byte(length), 0x01, 0x02)
		frame = append(frame, payload...)
		if _, err := conn.Write(frame); err != nil {
			return
		}
	}
}

func findMetric(metrics []register.Metric, name string) (register.Metric, bool) {
	for _, m := range metrics {
		if m.Name == name {
			return m, true
		}
	}
	return register.Metric{}, false
}

func TestPollOnce(t *testing.T) {
	f := newFakeInverter(t)
	// battery state of charge, input register 100
	f.input[100] = 87
	// battery throughput counter across input 6 and 7
	f.input[6] = 0x0001
	f.input[7] = 0x0002
	// inverter serial across holding 13..17
	for i, word := range []uint16{0x5341, 0x3231, 0x3433, 0x3030, 0x3042} {
		f.holding[13+uint16(i)] = word
	}

	host, port := f.hostPort(t)
	c := New(host, port)
	metrics, err := c.PollOnce(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, metrics)

	m, ok := findMetric(metrics, "battery_soc")
	require.True(t, ok)
	assert.Equal(t, float64(87), m.Value)

	m, ok = findMetric(metrics, "battery_throughput_total")
	require.True(t, ok)
	assert.Equal(t, float64(0x10002)/10, m.Value)
	assert.Equal(t, register.Counter, m.Prom)

	m, ok = findMetric(metrics, "inverter_serial_number")
	require.True(t, ok)
	assert.Equal(t, "SA2143000B", m.Value)

	for i := 1; i < len(metrics); i++ {
		assert.LessOrEqual(t, metrics[i-1].Name, metrics[i].Name)
	}
}

func TestPollOnceDeterministic(t *testing.T) {
	f := newFakeInverter(t)
	f.input[100] = 42

	host, port := f.hostPort(t)
	c := New(host, port)

	first, err := c.PollOnce(context.Background())
	require.NoError(t, err)
	second, err := c.PollOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPollOnceDeviceError(t *testing.T) {
	f := newFakeInverter(t)
	f.fail = runtime.ReadHoldingRegisters

	host, port := f.hostPort(t)
	c := New(host, port)
	_, err := c.PollOnce(context.Background())
	assert.True(t, errors.Is(err, runtime.ErrDeviceError))
}

func TestPollOnceConnectionRefused(t *testing.T) {
	f := newFakeInverter(t)
	host, port := f.hostPort(t)
	require.NoError(t, f.listener.Close())

	c := New(host, port)
	_, err := c.PollOnce(context.Background())
	assert.True(t, errors.Is(err, runtime.ErrBadConn))
}
