// Package llm defines the provider-neutral request and response types used to
// talk to a language model.
//
//   - [LLM] is the provider interface.
//   - [Message] carries content to and from an LLM.
//   - [Option] functions configure a request (model, system prompt, messages).
//   - [Hooks] observe a request before and after it is sent.
//
// Concrete providers live under llm/providers.
package llm
