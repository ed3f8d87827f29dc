package domain

// Message represents a complete DNS message: a header followed by its
// question and answer sections. Authority and additional sections are
// never populated; their counts stay zero.
//
// Messages are plain values constructed fresh per request or response and
// never mutated in place.
type Message struct {
	Header    Header
	Questions []Question
	Answers   []Answer
}

// NewMessage constructs a Message whose header counts match the given
// sections. The counts in h are overwritten so the header can never
// disagree with the records that follow it on the wire.
func NewMessage(h Header, questions []Question, answers []Answer) Message {
	if questions == nil {
		questions = []Question{}
	}
	if answers == nil {
		answers = []Answer{}
	}
	h.QDCount = uint16(len(questions))
	h.ANCount = uint16(len(answers))
	h.NSCount = 0
	h.ARCount = 0
	return Message{
		Header:    h,
		Questions: questions,
		Answers:   answers,
	}
}
