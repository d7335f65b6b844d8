package websocket

type MessageType string

const (
	MessageTypeContent   MessageType = "content"
	MessageTypeConnected MessageType = "connected"
	MessageTypePing      MessageType = "ping"
	MessageTypePong      MessageType = "pong"
)

type IncomingMessage struct {
	Type MessageType `json:"type"`
}

type OutgoingMessage struct {
	Type    MessageType `json:"type"`
	AdminID string      `json:"adminId,omitempty"`
}

// ContentMessage tells connected admin sessions that portfolio content
// changed and which record was affected.
type ContentMessage struct {
	Type     MessageType `json:"type"`
	Resource string      `json:"resource"`
	Action   string      `json:"action"`
	ID       string      `json:"id"`
}
