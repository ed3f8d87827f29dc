package domain

// Answer represents one resource record of a DNS message answer section.
// Data holds the record's RDATA as opaque bytes; its meaning depends on
// Type and is not interpreted here.
type Answer struct {
	Name  Name
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  []byte
}

// NewAnswer constructs an Answer from a dotted domain name and raw rdata.
func NewAnswer(name string, rrtype RRType, class RRClass, ttl uint32, data []byte) Answer {
	if data == nil {
		data = []byte{}
	}
	return Answer{
		Name:  ParseName(name),
		Type:  rrtype,
		Class: class,
		TTL:   ttl,
		Data:  data,
	}
}
