package model

import "time"

// EmailRecord is a persisted email. Records are append-only: the service
// never updates or deletes them after insert.
type EmailRecord struct {
	ID          int64     `json:"id"`
	To          string    `json:"to"`
	CC          string    `json:"cc,omitempty"`
	BCC         string    `json:"bcc,omitempty"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Sender      string    `json:"sender"`
	SenderEmail string    `json:"senderEmail"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sender is the fixed identity the service composes and sends email as.
type Sender struct {
	Name               string
	Email              string
	Company            string
	Role               string
	CommunicationStyle string
}
