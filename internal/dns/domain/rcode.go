package domain

import "fmt"

// RCode represents a DNS response code indicating the result of a query.
type RCode uint8

// DNS response code constants
const (
	RCodeNoError        RCode = 0 // NOERROR - no error condition
	RCodeFormatError    RCode = 1 // FORMERR - the server could not interpret the query
	RCodeServerFailure  RCode = 2 // SERVFAIL - internal failure
	RCodeNameError      RCode = 3 // NXDOMAIN - the name does not exist
	RCodeNotImplemented RCode = 4 // NOTIMP - the requested operation is unsupported
	RCodeRefused        RCode = 5 // REFUSED - policy refusal
)

// IsValid returns true if the RCode is within the supported response code range.
func (r RCode) IsValid() bool {
	return r <= 5
}

// String returns the textual representation of the RCode.
func (r RCode) String() string {
	switch r {
	case RCodeNoError:
		return "NOERROR"
	case RCodeFormatError:
		return "FORMERR"
	case RCodeServerFailure:
		return "SERVFAIL"
	case RCodeNameError:
		return "NXDOMAIN"
	case RCodeNotImplemented:
		return "NOTIMP"
	case RCodeRefused:
		return "REFUSED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(r))
	}
}
