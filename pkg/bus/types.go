package bus

type InboundMessage struct {
	Adapter    string            `json:"adapter"`
	SenderID   string            `json:"sender_id"`
	SenderName string            `json:"sender_name"`
	ChatID     string            `json:"chat_id"`
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type OutboundMessage struct {
	Adapter string `json:"adapter"`
	ChatID  string `json:"chat_id"`
	Content string `json:"content"`
	Emote   bool   `json:"emote,omitempty"` // render as an action where the adapter supports it
}
