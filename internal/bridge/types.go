package bridge

// Client is the subset of a Modbus master the bridge needs. The bridge
// calls it from a single goroutine, implementations need no locking beyond
// their own connection handling.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error)
	ReadDiscreteInputs(addr, qty uint16) ([]bool, error)
	WriteMultipleRegisters(addr uint16, regs []uint16) error
}

// Geometry fixes where the FORGE block sits in the endpoint's register
// tables. Control0 occupies ControlRegs holding registers at ControlAddr,
// high half word first; the status block StatusRegs holding registers at
// StatusAddr, Status0 then Status1, high half word first each. LoaderAddr
// is an optional discrete input carrying loader_done; when nil the line is
// taken as done.
type Geometry struct {
	ControlAddr uint16
	StatusAddr  uint16
	LoaderAddr  *uint16
}

// Register block sizes, fixed by the register map.
const (
	ControlRegs = 2
	StatusRegs  = 4
)
