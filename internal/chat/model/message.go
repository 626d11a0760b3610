package models

import "errors"

// Message is immutable once appended. Timestamp is milliseconds since
// epoch and doubles as the sort score in the log; ties are broken by
// insertion order.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Validate checks the decoded shape of a stored entry. A log read fails
// entirely if any entry is malformed.
func (m *Message) Validate() error {
	if m.ID == "" {
		return errors.New("message id is empty")
	}
	if m.SenderID == "" {
		return errors.New("message senderId is empty")
	}
	if m.Text == "" {
		return errors.New("message text is empty")
	}
	if m.Timestamp <= 0 {
		return errors.New("message timestamp is not set")
	}
	return nil
}
