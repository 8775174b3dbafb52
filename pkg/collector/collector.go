package collector

import (
	"context"
	"fmt"
	"net"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"givenergyexporter/pkg/protocol/givenergy/runtime"
	"givenergyexporter/pkg/register"
)

// Block is one contiguous register read. The plans below deliberately
// leave gaps: blocks the inverter is known to answer for, nothing more.
type Block struct {
	FunctionCode  byte
	BaseRegister  uint16
	RegisterCount uint16
}

var inputBlocks = []Block{
	{runtime.ReadInputRegisters, 0, 60},
	{runtime.ReadInputRegisters, 60, 60},
	{runtime.ReadInputRegisters, 180, 60},
}

var holdingBlocks = []Block{
	{runtime.ReadHoldingRegisters, 0, 60},
	{runtime.ReadHoldingRegisters, 60, 60},
	{runtime.ReadHoldingRegisters, 120, 60},
}

// Collector polls one inverter over its Wi-Fi adapter and converts the
// raw registers into metrics.
type Collector struct {
	Host string
	Port int
}

func New(host string, port int) *Collector {
	if port == 0 {
		port = runtime.DefaultPort
	}
	return &Collector{Host: host, Port: port}
}

// PollOnce dials the adapter, reads every block of both plans and
// converts the result. Any transport, device or conversion failure
// aborts the cycle; there is no partial result. The metric slice comes
// back sorted by name so repeated polls of identical register content
// are byte for byte reproducible downstream.
func (c *Collector) PollOnce(ctx context.Context) ([]register.Metric, error) {
	address := net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, errors.Wrap(runtime.ErrBadConn, err.Error())
	}
	tc := &runtime.TcpClient{Tunnel: conn}
	defer tc.Close()

	inputStore, err := c.readBlocks(tc, inputBlocks)
	if err != nil {
		return nil, err
	}
	holdingStore, err := c.readBlocks(tc, holdingBlocks)
	if err != nil {
		return nil, err
	}

	metrics := make([]register.Metric, 0, 256)
	for _, read := range []struct {
		table *register.Table
		store map[uint16]uint16
	}{
		{register.InputRegisters, inputStore},
		{register.HoldingRegisters, holdingStore},
	} {
		for address := uint16(0); address <= read.table.Max(); address++ {
			if _, ok := read.store[address]; !ok {
				continue
			}
			converted, err := read.table.Convert(address, read.store)
			if err != nil {
				return nil, err
			}
			metrics = append(metrics, converted...)
		}
	}
	register.SortMetrics(metrics)

	klog.V(3).InfoS("Poll finished", "host", c.Host, "metrics", len(metrics))
	return metrics, nil
}

func (c *Collector) readBlocks(tc *runtime.TcpClient, blocks []Block) (map[uint16]uint16, error) {
	store := make(map[uint16]uint16, 64*len(blocks))
	for _, block := range blocks {
		request, err := runtime.NewReadRequest(block.FunctionCode, block.BaseRegister, block.RegisterCount)
		if err != nil {
			return nil, err
		}
		response, err := tc.Transact(request)
		if err != nil {
			return nil, err
		}
		if response.Error {
			return nil, errors.Wrapf(runtime.ErrDeviceError,
				"function code %d base %d count %d", response.FunctionCode, block.BaseRegister, block.RegisterCount)
		}
		for reg, v := range response.Registers {
			store[reg] = v
		}
		klog.V(4).InfoS("Block read", "functionCode", block.FunctionCode,
			"base", block.BaseRegister, "count", block.RegisterCount)
	}
	return store, nil
}
