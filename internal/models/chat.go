package models

// ChatRole identifies the author of a transcript message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in the append-only chat transcript. Content may be
// empty when the message carries listings instead. Listings hold at most
// three classified records from the assistant backend.
type ChatMessage struct {
	ID       string    `json:"id"`
	Role     ChatRole  `json:"role"`
	Content  string    `json:"content"`
	Listings []Listing `json:"listings,omitempty"`
}
