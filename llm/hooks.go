package llm

import (
	"context"
	"fmt"
)

// Hook types for different LLM events
type HookType string

const (
	BeforeGenerate HookType = "before_generate"
	AfterGenerate  HookType = "after_generate"
	OnError        HookType = "on_error"
)

// HookRequestContext describes the request being sent.
type HookRequestContext struct {
	Messages []*Message
	Config   *Config
	Body     []byte
}

// HookResponseContext describes the response that was received.
type HookResponseContext struct {
	Response *Response
	Error    error
}

// HookContext contains information passed to hooks
type HookContext struct {
	Type     HookType
	Request  *HookRequestContext
	Response *HookResponseContext // nil for BeforeGenerate
}

// Hook is a function that gets called during LLM operations. Returning an
// error from a BeforeGenerate hook aborts the request.
type Hook func(ctx context.Context, hookCtx *HookContext) error

// Hooks maps each event type to the hooks registered for it.
type Hooks map[HookType][]Hook

// FireHooks calls every hook registered for hookCtx.Type, in registration
// order, and stops at the first error.
func (c *Config) FireHooks(ctx context.Context, hookCtx *HookContext) error {
	for _, hook := range c.Hooks[hookCtx.Type] {
		if err := hook(ctx, hookCtx); err != nil {
			return fmt.Errorf("%s hook error: %w", hookCtx.Type, err)
		}
	}
	return nil
}
