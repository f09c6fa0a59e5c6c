package status

import "fmt"

// Status is the code returned by every public entry point
type Status int

// Values match the numbering of the C interface
const (
	StatusSuccess        Status = 0
	StatusInvalidHandle  Status = 1
	StatusInvalidPointer Status = 3
	StatusInvalidSize    Status = 4
	StatusInternalError  Status = 6
	StatusInvalidValue   Status = 7
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidHandle:
		return "invalid handle"
	case StatusInvalidPointer:
		return "invalid pointer"
	case StatusInvalidSize:
		return "invalid size"
	case StatusInternalError:
		return "internal error"
	case StatusInvalidValue:
		return "invalid value"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// FromError maps an internal error onto the external status set
func FromError(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	switch KindOf(err) {
	case InvalidHandle:
		return StatusInvalidHandle
	case InvalidPointer:
		return StatusInvalidPointer
	case InvalidSize:
		return StatusInvalidSize
	case InvalidEnum, InvalidValue, TransferMismatch, LocationTransferFault:
		return StatusInvalidValue
	}
	return StatusInternalError
}

// Guard converts a panic escaping an entry point into StatusInternalError. It
// must be deferred directly by the function owning st:
//
//	func Daxpyi(...) (st status.Status) {
//		defer status.Guard(&st)
//		...
//	}
func Guard(st *Status) {
	if r := recover(); r != nil {
		*st = StatusInternalError
	}
}
