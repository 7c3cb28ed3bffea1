package model

// Classification is the assistant category chosen for a drafting request.
type Classification string

const (
	ClassificationSales    Classification = "sales"
	ClassificationFollowup Classification = "followup"
)

// Envelope is one unit of the server-to-client event stream. A stream
// carries at most one classification envelope, any number of content
// envelopes, and exactly one terminal envelope (complete or error) unless
// the client disconnects first.
type Envelope struct {
	Type EnvelopeType `json:"type"`
	Data any          `json:"data"`
}

type EnvelopeType string

const (
	EnvelopeClassification EnvelopeType = "classification"
	EnvelopeContent        EnvelopeType = "content"
	EnvelopeComplete       EnvelopeType = "complete"
	EnvelopeError          EnvelopeType = "error"
)

// ClassificationData is the payload of a classification envelope.
type ClassificationData struct {
	AssistantType Classification `json:"assistantType"`
	Provider      string         `json:"provider"`
	RecipientName string         `json:"recipientName"`
	Recipient     string         `json:"recipient"`
}

// ContentData is the payload of content and complete envelopes. IsPartial
// is true while the draft is still growing.
type ContentData struct {
	AssistantType Classification `json:"assistantType"`
	Provider      string         `json:"provider"`
	Subject       string         `json:"subject"`
	Body          string         `json:"body"`
	IsPartial     bool           `json:"isPartial"`
	RecipientName string         `json:"recipientName"`
	Recipient     string         `json:"recipient"`
}

// ErrorData is the payload of a terminal error envelope.
type ErrorData struct {
	Error    string `json:"error"`
	Provider string `json:"provider"`
}

// Draft is a parsed subject/body pair. During streaming it is recomputed
// from the whole accumulated buffer on every increment, so successive
// drafts for a growing prefix are not guaranteed stable.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
