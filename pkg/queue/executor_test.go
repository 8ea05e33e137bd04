package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-labs/agentcore/pkg/toolloop"
)

func TestConditionEvaluatorEquality(t *testing.T) {
	eval := conditionEvaluator{}
	ctx := map[string]any{
		"verify": map[string]any{"result": "pass", "count": 3},
	}

	ok, err := eval.Evaluate(`steps.verify.result == pass`, ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = eval.Evaluate(`steps.verify.result == "fail"`, ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = eval.Evaluate(`steps.verify.count != 4`, ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConditionEvaluatorTruthiness(t *testing.T) {
	eval := conditionEvaluator{}
	ctx := map[string]any{
		"gate": map[string]any{"passed": true, "notes": ""},
	}

	ok, err := eval.Evaluate("steps.gate.passed", ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = eval.Evaluate("steps.gate.notes", ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty string is falsy")

	ok, err = eval.Evaluate("steps.gate.missing", ctx)
	require.NoError(t, err)
	assert.False(t, ok, "missing reference is falsy")

	_, err = eval.Evaluate("", ctx)
	assert.Error(t, err)
}

func TestEncodeArgs(t *testing.T) {
	assert.Equal(t, "{}", encodeArgs(nil))
	assert.JSONEq(t, `{"path":"main.go","count":2}`, encodeArgs(map[string]any{"path": "main.go", "count": 2}))
}

func TestIsNetworkTool(t *testing.T) {
	assert.True(t, isNetworkTool("web_fetch"))
	assert.True(t, isNetworkTool("web-server.fetch_page"))
	assert.True(t, isNetworkTool("proxy-server.web_fetch"))
	assert.False(t, isNetworkTool("workspace-server.read_file"))
	assert.False(t, isNetworkTool("shell"))
}

func TestFailureCategoryMapping(t *testing.T) {
	assert.Empty(t, failureCategory(toolloop.Result{Reason: toolloop.ReasonCompleted}))
	assert.Empty(t, failureCategory(toolloop.Result{Reason: toolloop.ReasonMaxIterations}))
	assert.Equal(t, "security", failureCategory(toolloop.Result{Reason: toolloop.ReasonToolGovernanceDeny}))
	assert.Equal(t, "resource", failureCategory(toolloop.Result{Reason: toolloop.ReasonBudgetExceeded}))
	assert.Equal(t, "execution", failureCategory(toolloop.Result{Reason: toolloop.ReasonError}))
}
