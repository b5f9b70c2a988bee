package models

// Transcript directions.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Message statuses.
const (
	MessageStatusQueued = "queued"
	MessageStatusSent   = "sent"
	MessageStatusFailed = "failed"
)

// Transcript records a call transcript produced by the voice assistant.
type Transcript struct {
	CallID    string `bson:"call_id" json:"call_id" binding:"required"`
	Direction string `bson:"direction" json:"direction" binding:"omitempty,oneof=inbound outbound"`
	Text      string `bson:"text" json:"text" binding:"required"`
	Intent    string `bson:"intent,omitempty" json:"intent,omitempty"`
	Summary   string `bson:"summary,omitempty" json:"summary,omitempty"`
}

// Message is a minimal SMS/email log entry. No sender is implemented here;
// delivery workers consume the collection out-of-band.
type Message struct {
	To      string                 `bson:"to" json:"to" binding:"required"`
	Channel string                 `bson:"channel" json:"channel" binding:"required,oneof=sms email"`
	Subject string                 `bson:"subject,omitempty" json:"subject,omitempty"`
	Body    string                 `bson:"body" json:"body" binding:"required"`
	Status  string                 `bson:"status" json:"status"`
	Meta    map[string]interface{} `bson:"meta,omitempty" json:"meta,omitempty"`
}

func (t *Transcript) ApplyDefaults() {
	if t.Direction == "" {
		t.Direction = DirectionInbound
	}
}

func (m *Message) ApplyDefaults() {
	if m.Status == "" {
		m.Status = MessageStatusQueued
	}
}
