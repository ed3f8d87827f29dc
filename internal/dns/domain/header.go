package domain

// Header represents the fixed 12-byte DNS message header (RFC 1035 §4.1.1).
// The five flag bits and the Opcode/Z/RCode subfields occupy two packed
// bytes on the wire; the wire package owns that packing.
type Header struct {
	ID     uint16
	QR     bool   // query (false) or response (true)
	Opcode Opcode // 4 bits on the wire
	AA     bool   // authoritative answer
	TC     bool   // truncated
	RD     bool   // recursion desired
	RA     bool   // recursion available
	Z      uint8  // reserved, 3 bits on the wire
	RCode  RCode  // 4 bits on the wire

	// Section counts. Producers must keep these equal to the number of
	// records actually present; parsers consume exactly these many.
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// IsQuery returns true if the header describes a query rather than a response.
func (h Header) IsQuery() bool {
	return !h.QR
}
