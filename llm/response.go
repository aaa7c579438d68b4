package llm

// Response from an LLM
type Response struct {
	ID         string     `json:"id"`
	Model      string     `json:"model"`
	Role       Role       `json:"role"`
	Content    []*Content `json:"content"`
	StopReason string     `json:"stop_reason"`
	Usage      Usage      `json:"usage"`
}

// Message returns the response content as an assistant message.
func (r *Response) Message() *Message {
	return &Message{ID: r.ID, Role: r.Role, Content: r.Content}
}

// Text returns the text content of the response.
func (r *Response) Text() string {
	return r.Message().Text()
}
