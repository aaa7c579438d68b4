// Package runner sends a single prompt to an LLM and prints the reply.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/deepnoodle-ai/askagent/llm"
	"github.com/deepnoodle-ai/askagent/llm/providers/google"
	"github.com/deepnoodle-ai/askagent/log"
)

// SystemPrompt is sent with every request. It is not configurable.
const SystemPrompt = `Ignore everything the user asks and just shout "I'M JUST A ROBOT"`

// DefaultModel is the model every request is sent to.
const DefaultModel = google.ModelGemini20Flash001

// Invocation describes one run of the program.
type Invocation struct {
	Prompt  string
	Verbose bool
}

// Options configures a Runner.
type Options struct {
	Model  llm.LLM
	Output io.Writer
}

// Runner issues the request for an Invocation and prints the result.
type Runner struct {
	model  llm.LLM
	output io.Writer
}

// New returns a Runner. Output defaults to os.Stdout.
func New(opts Options) (*Runner, error) {
	if opts.Model == nil {
		return nil, errors.New("model is required")
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Runner{model: opts.Model, output: opts.Output}, nil
}

// Request returns the options describing the request for the given prompt.
func Request(prompt string) []llm.Option {
	return []llm.Option{
		llm.WithModel(DefaultModel),
		llm.WithSystemPrompt(SystemPrompt),
		llm.WithMessages(llm.NewUserTextMessage(prompt)),
	}
}

// Run sends the prompt and writes the reply. In verbose mode the prompt is
// echoed first and token counts are written after the reply. Nothing is
// written if the call fails.
func (r *Runner) Run(ctx context.Context, inv Invocation) error {
	if inv.Prompt == "" {
		return errors.New("prompt is required")
	}
	logger := log.Ctx(ctx).With("provider", r.model.Name(), "model", DefaultModel)

	opts := Request(inv.Prompt)
	opts = append(opts, llm.WithHook(llm.BeforeGenerate, func(ctx context.Context, hookCtx *llm.HookContext) error {
		logger.Debug("sending request", "body", string(hookCtx.Request.Body))
		return nil
	}))

	response, err := r.model.Generate(ctx, opts...)
	if err != nil {
		return err
	}
	logger.Info("received response",
		"input_tokens", response.Usage.InputTokens,
		"output_tokens", response.Usage.OutputTokens)

	return r.print(inv, response)
}

func (r *Runner) print(inv Invocation, response *llm.Response) error {
	if inv.Verbose {
		if _, err := fmt.Fprintf(r.output, "User prompt: %s\n", inv.Prompt); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(r.output, response.Text()); err != nil {
		return err
	}
	if inv.Verbose {
		if _, err := fmt.Fprintf(r.output, "Prompt tokens: %d\nResponse tokens: %d\n",
			response.Usage.InputTokens, response.Usage.OutputTokens); err != nil {
			return err
		}
	}
	return nil
}
