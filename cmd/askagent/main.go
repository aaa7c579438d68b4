// Command askagent sends a prompt to Gemini and prints the reply.
//
// Usage:
//
//	askagent "What is 2+2?"
//	askagent --verbose "What is 2+2?"
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], defaultEnv()))
}
