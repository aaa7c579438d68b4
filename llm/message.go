package llm

import "strings"

// Role indicates the role of a message in a conversation. Either "user",
// "assistant", or "system".
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
	System    Role = "system"
)

func (r Role) String() string {
	return string(r)
}

// ContentType indicates the type of a content block in a message
type ContentType string

const (
	ContentTypeText ContentType = "text"
)

// Content is a single block of content in a message.
type Content struct {
	Type ContentType `json:"type"`
	Text string      `json:"text,omitempty"`
}

// NewTextContent returns a text content block.
func NewTextContent(text string) *Content {
	return &Content{Type: ContentTypeText, Text: text}
}

// Message containing content passed to or from an LLM.
type Message struct {
	ID      string     `json:"id,omitempty"`
	Role    Role       `json:"role"`
	Content []*Content `json:"content"`
}

// Text returns the concatenated text of all text content blocks in the
// message. Blocks are joined without a separator, matching how providers
// split a single reply across parts.
func (m *Message) Text() string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	for _, content := range m.Content {
		if content != nil && content.Type == ContentTypeText {
			sb.WriteString(content.Text)
		}
	}
	return sb.String()
}

// WithText appends a text content block to the message.
func (m *Message) WithText(text string) *Message {
	m.Content = append(m.Content, NewTextContent(text))
	return m
}

// NewMessage creates a new message with the given role and content blocks.
func NewMessage(role Role, content []*Content) *Message {
	return &Message{Role: role, Content: content}
}

// NewUserTextMessage creates a new user message with a single text content block.
func NewUserTextMessage(text string) *Message {
	return NewMessage(User, []*Content{NewTextContent(text)})
}

// NewAssistantTextMessage creates a new assistant message with a single text
// content block.
func NewAssistantTextMessage(text string) *Message {
	return NewMessage(Assistant, []*Content{NewTextContent(text)})
}
