// Package modbus adapts a goburrow Modbus TCP connection to the bridge
// Client interface. The adapter is geometry only: it packs requests and
// unpacks raw responses, it knows nothing about the register map.
package modbus

import (
	"time"

	"github.com/goburrow/modbus"
	"github.com/pkg/errors"
)

// Client is a single Modbus TCP connection to one FORGE endpoint. The unit
// id is fixed at connect time and the bridge drives the client from one
// goroutine, so requests need no serialization here.
type Client struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// New creates a connected Modbus TCP client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("bridge modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	return c.handler.Close()
}

// ---- bridge.Client interface ----

func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	raw, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	if len(raw) < int(qty)*2 {
		return nil, errors.Errorf("bridge modbus: short response: %d bytes for %d registers", len(raw), qty)
	}
	return unpackRegisters(raw[:int(qty)*2]), nil
}

func (c *Client) ReadDiscreteInputs(addr, qty uint16) ([]bool, error) {
	raw, err := c.client.ReadDiscreteInputs(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackBits(raw, int(qty)), nil
}

func (c *Client) WriteMultipleRegisters(addr uint16, regs []uint16) error {
	_, err := c.client.WriteMultipleRegisters(addr, uint16(len(regs)), packRegisters(regs))
	return err
}

func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}

func unpackRegisters(data []byte) []uint16 {
	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}

func unpackBits(data []byte, count int) []bool {
	out := make([]bool, count)
	for i := range out {
		if i/8 < len(data) && data[i/8]&(1<<uint(i%8)) != 0 {
			out[i] = true
		}
	}
	return out
}
