package domain

import "testing"

func TestNewMessage_SetsCounts(t *testing.T) {
	questions := []Question{
		NewQuestion("example.com", RRTypeA, RRClassIN),
		NewQuestion("example.org", RRTypeAAAA, RRClassIN),
	}
	answers := []Answer{
		NewAnswer("example.com", RRTypeA, RRClassIN, 60, []byte{1, 2, 3, 4}),
	}

	// counts in the provided header must be overwritten
	msg := NewMessage(Header{ID: 42, QDCount: 99, ANCount: 99, NSCount: 7, ARCount: 7}, questions, answers)

	if msg.Header.QDCount != 2 {
		t.Errorf("QDCount = %d, want 2", msg.Header.QDCount)
	}
	if msg.Header.ANCount != 1 {
		t.Errorf("ANCount = %d, want 1", msg.Header.ANCount)
	}
	if msg.Header.NSCount != 0 || msg.Header.ARCount != 0 {
		t.Errorf("NSCount/ARCount = %d/%d, want 0/0", msg.Header.NSCount, msg.Header.ARCount)
	}
	if msg.Header.ID != 42 {
		t.Errorf("ID = %d, want 42", msg.Header.ID)
	}
}

func TestNewMessage_NilSections(t *testing.T) {
	msg := NewMessage(Header{ID: 1}, nil, nil)

	if msg.Questions == nil || msg.Answers == nil {
		t.Fatal("expected non-nil sections")
	}
	if msg.Header.QDCount != 0 || msg.Header.ANCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", msg.Header.QDCount, msg.Header.ANCount)
	}
}

func TestHeader_IsQuery(t *testing.T) {
	if !(Header{QR: false}).IsQuery() {
		t.Error("expected query for QR=false")
	}
	if (Header{QR: true}).IsQuery() {
		t.Error("expected response for QR=true")
	}
}

func TestNewAnswer_NilData(t *testing.T) {
	a := NewAnswer("example.com", RRTypeTXT, RRClassIN, 30, nil)
	if a.Data == nil {
		t.Fatal("expected non-nil Data")
	}
	if len(a.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(a.Data))
	}
}
