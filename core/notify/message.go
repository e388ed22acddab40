// ABOUTME: Notification message value object relayed to an embedding parent
// ABOUTME: Serializes as a two-field tagged object with a configurable payload field

package notify

import "encoding/json"

// Message type tags, one per payload field variant.
const (
	TypeDataURL  = "MOODBOARD_DATA_URL"
	TypeImageSrc = "MOODBOARD_IMAGE_SRC"
)

// Payload field names accepted in Config.PayloadField.
const (
	FieldDataURL = "dataUrl"
	FieldSrc     = "src"
)

// Message is the immutable notification relayed to an embedding parent.
// It is sent, never stored.
type Message struct {
	// Type is the fixed discriminator tag
	Type string

	// Field is the name of the payload field ("dataUrl" or "src")
	Field string

	// URL is the image URL payload
	URL string
}

// NewMessage builds a message for the given payload field and URL.
// The type tag follows from the field name.
func NewMessage(field, url string) Message {
	msgType := TypeDataURL
	if field == FieldSrc {
		msgType = TypeImageSrc
	}
	return Message{Type: msgType, Field: field, URL: url}
}

// MarshalJSON serializes the message as {"type": ..., "<field>": ...}
func (m Message) MarshalJSON() ([]byte, error) {
	field := m.Field
	if field == "" {
		field = FieldDataURL
	}
	return json.Marshal(map[string]string{
		"type": m.Type,
		field:  m.URL,
	})
}
