package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/deepnoodle-ai/askagent/config"
	"github.com/deepnoodle-ai/askagent/llm"
	"github.com/deepnoodle-ai/askagent/log"
	"github.com/deepnoodle-ai/askagent/runner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errorStyle = color.New(color.FgRed)

// env holds everything the command reads from or writes to the process.
type env struct {
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)
	envFiles  []string
	newModel  func(cfg *config.Config, logger log.Logger) llm.LLM
}

func defaultEnv() *env {
	return &env{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
		envFiles:  []string{config.DefaultEnvFile},
		newModel:  config.GetModel,
	}
}

// usageError marks invalid command line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(e *env) *cobra.Command {
	var (
		verbose  bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "askagent [flags] <prompt>",
		Short:         "Ask your AI Agent.",
		Long:          "Send a prompt to Gemini and print the reply.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			if args[0] == "" {
				return &usageError{err: errors.New("prompt must not be empty")}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithWriter(e.stderr, log.LevelFromString(logLevel))

			cfg, err := config.Load(
				config.WithEnvFiles(e.envFiles...),
				config.WithLookupEnv(e.lookupEnv),
			)
			if err != nil {
				return err
			}

			r, err := runner.New(runner.Options{
				Model:  e.newModel(cfg, logger),
				Output: cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			ctx := log.WithLogger(cmd.Context(), logger)
			return r.Run(ctx, runner.Invocation{
				Prompt:  args[0],
				Verbose: verbose,
			})
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output.")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level to use (debug, info, warn, error)")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	return cmd
}

// run executes the command and returns the process exit status.
func run(ctx context.Context, args []string, e *env) int {
	cmd := newRootCmd(e)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		errorStyle.Fprintf(e.stderr, "Error: %v\n", usageErr)
		fmt.Fprint(e.stderr, cmd.UsageString())
		return exitUsage
	}

	errorStyle.Fprintln(e.stderr, errorMessage(err))
	return exitError
}

func errorMessage(err error) string {
	if errors.Is(err, config.ErrMissingAPIKey) {
		return fmt.Sprintf("Error: %v.", err)
	}
	var providerErr *llm.ProviderError
	if errors.As(err, &providerErr) {
		switch {
		case providerErr.IsAuthentication():
			return fmt.Sprintf("Error: authentication failed, check %s: %s",
				config.APIKeyEnvVar, providerErr.Message())
		case providerErr.IsQuota():
			return fmt.Sprintf("Error: quota exceeded: %s", providerErr.Message())
		}
	}
	return fmt.Sprintf("Error: %v", err)
}
