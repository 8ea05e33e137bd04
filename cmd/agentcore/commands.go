package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"time"
)

// cmdInit scaffolds an agent or workflow definition file in the current
// directory. Input parsing errors return exit code 1 before any I/O.
func cmdInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	kind := fs.String("kind", "agent", "Definition kind: agent or workflow")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: agentcore init <name> --kind agent|workflow")
		return 1
	}
	name := fs.Arg(0)

	var filename, content string
	switch *kind {
	case "agent":
		filename = name + ".agent.yaml"
		content = fmt.Sprintf(`agents:
  %s:
    role: implementer
    description: ""
    capabilities: ["I-01"]
    tool_servers: ["workspace-server"]
    autonomy: supervised
    constraints:
      max_tokens: 16000
      timeout_seconds: 600
      max_retries: 2
`, name)
	case "workflow":
		filename = name + ".workflow.yaml"
		content = fmt.Sprintf(`workflows:
  %s:
    version: "1.0.0"
    description: ""
    steps:
      - id: first
        action: invoke-agent
        agent: implementer
    execution:
      mode: dependency-aware
      parallel_limit: 2
`, name)
	default:
		fmt.Fprintf(os.Stderr, "unknown kind %q: must be agent or workflow\n", *kind)
		return 1
	}

	if _, err := os.Stat(filename); err == nil {
		fmt.Fprintf(os.Stderr, "%s already exists\n", filename)
		return 1
	}
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", filename, err)
		return 1
	}

	fmt.Printf("created %s\n", filename)
	return 0
}

// cmdRun submits a workflow run through a running server's API.
func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	inputsJSON := fs.String("inputs", "{}", "Workflow inputs as a JSON object")
	serverURL := fs.String("server", getEnv("AGENTCORE_URL", "http://localhost:8080"), "Server base URL")
	tenant := fs.String("tenant", "", "Tenant ID header")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: agentcore run <workflow> --inputs '<json>'")
		return 1
	}
	workflowName := fs.Arg(0)

	var inputs map[string]any
	if err := json.Unmarshal([]byte(*inputsJSON), &inputs); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --inputs JSON: %v\n", err)
		return 1
	}

	body, err := json.Marshal(map[string]any{
		"workflow_name": workflowName,
		"inputs":        inputs,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode request: %v\n", err)
		return 1
	}

	req, err := http.NewRequest(http.MethodPost, *serverURL+"/api/v1/runs", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build request: %v\n", err)
		return 1
	}
	req.Header.Set("Content-Type", "application/json")
	if *tenant != "" {
		req.Header.Set("X-Tenant-ID", *tenant)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		return 1
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode >= 300 {
		fmt.Fprintf(os.Stderr, "server returned %d: %s\n", resp.StatusCode, respBody)
		return 1
	}
	fmt.Println(string(respBody))
	return 0
}

// cmdTest runs the module's test suite via the Go toolchain.
func cmdTest(args []string) int {
	testArgs := append([]string{"test", "./..."}, args...)
	cmd := exec.Command("go", testArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return 1
	}
	return 0
}

// cmdStatus probes a running server's health endpoint.
func cmdStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	serverURL := fs.String("server", getEnv("AGENTCORE_URL", "http://localhost:8080"), "Server base URL")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(*serverURL + "/health")
	if err != nil {
		fmt.Fprintf(os.Stderr, "health probe failed: %v\n", err)
		return 1
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	fmt.Println(string(body))
	if resp.StatusCode != http.StatusOK {
		return 1
	}
	return 0
}
