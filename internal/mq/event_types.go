package mq

import "time"

// 邮件发送事件的 payload
type EmailSentPayload struct {
	EmailID     int64     `json:"email_id"`
	To          string    `json:"to"`
	Subject     string    `json:"subject"`
	SenderEmail string    `json:"sender_email"`
	SentAt      time.Time `json:"sent_at"`
}
