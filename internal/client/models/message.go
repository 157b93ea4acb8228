package models

import "time"

// UnknownSender is shown when a message carries no usable sender.
const UnknownSender = "Unknown"

// Sender identifies the author of a forum message. The backend may omit it
// entirely, or send it without a name.
type Sender struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name,omitempty"`
	Role Role   `json:"role,omitempty"`
}

// Message is a forum post.
type Message struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	SubjectID string    `json:"subjectId,omitempty"`
	Sender    *Sender   `json:"sender,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SenderName returns the author's name or UnknownSender.
func (m Message) SenderName() string {
	if m.Sender == nil || m.Sender.Name == "" {
		return UnknownSender
	}
	return m.Sender.Name
}

// MessageInput is the payload for posting to a forum. SubjectID is empty
// for the alumni forum.
type MessageInput struct {
	Text      string `json:"text" validate:"required"`
	SubjectID string `json:"subjectId,omitempty"`
}
