// The agentcore binary runs the orchestration engine server and a small
// operator command surface:
//
//	agentcore serve               start the HTTP API and worker pool
//	agentcore init <name> --kind agent|workflow
//	agentcore run <workflow> --inputs '<json>'
//	agentcore test                run the module's test suite
//	agentcore status              probe a running server's health endpoint
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		args = []string{"serve"}
	}

	switch args[0] {
	case "serve":
		return cmdServe(args[1:])
	case "init":
		return cmdInit(args[1:])
	case "run":
		return cmdRun(args[1:])
	case "test":
		return cmdTest(args[1:])
	case "status":
		return cmdStatus(args[1:])
	case "-h", "--help", "help":
		usage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage(os.Stderr)
		return 1
	}
}

func usage(w *os.File) {
	fmt.Fprint(w, `usage: agentcore <command> [flags]

commands:
  serve    start the HTTP API and worker pool (default)
  init     scaffold an agent or workflow definition file
  run      submit a workflow run via a running server
  test     run the module's test suite
  status   probe a running server's health endpoint
`)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
