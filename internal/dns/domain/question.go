package domain

// Question represents one entry of a DNS message question section.
type Question struct {
	Name  Name
	Type  RRType
	Class RRClass
}

// NewQuestion constructs a Question from a dotted domain name.
func NewQuestion(name string, rrtype RRType, class RRClass) Question {
	return Question{
		Name:  ParseName(name),
		Type:  rrtype,
		Class: class,
	}
}
