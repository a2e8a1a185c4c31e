package edb

import "errors"

var (
	ErrNotATable   = errors.New("edb: region does not hold a table")
	ErrOutOfRange  = errors.New("edb: record number out of range")
	ErrTableFull   = errors.New("edb: table is full")
	ErrShortBuffer = errors.New("edb: buffer shorter than record size")
)

// Status is the status-code view of the errors returned by Table.
type Status int

const (
	StatusOK Status = iota
	StatusNotATable
	StatusOutOfRange
	StatusTableFull
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotATable:
		return "not a table"
	case StatusOutOfRange:
		return "out of range"
	case StatusTableFull:
		return "table full"
	default:
		return "unknown"
	}
}

// StatusOf maps an error returned by Table to its Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNotATable):
		return StatusNotATable
	case errors.Is(err, ErrOutOfRange):
		return StatusOutOfRange
	case errors.Is(err, ErrTableFull):
		return StatusTableFull
	default:
		return StatusUnknown
	}
}
