package sandbox

import (
	"context"
	"testing"
	"time"

	"pylearn/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr string
	}{
		{"plain print", `print("hi")`, ""},
		{"allowed import", "import math\nprint(math.pi)", ""},
		{"allowed multi import", "import math, json as j", ""},
		{"allowed from import", "from collections import Counter", ""},
		{"eval", `eval("1+1")`, "Forbidden operation: eval() is not allowed"},
		{"exec with space", `exec ("x")`, "Forbidden operation: exec() is not allowed"},
		{"dunder import", `__import__("os")`, "Forbidden operation: __import__() is not allowed"},
		{"open", `open("/etc/passwd")`, "Forbidden operation: open() is not allowed"},
		{"dunder attribute", `x.__class__`, "Code contains potentially dangerous operations"},
		{"getattr", `getattr(x, "y")`, "Code contains potentially dangerous operations"},
		{"globals", `print(globals())`, "Code contains potentially dangerous operations"},
		{"disallowed import", "import os", "Import not allowed: os"},
		{"disallowed from import", "from subprocess import run", "Import not allowed: subprocess"},
		{"disallowed dotted import", "import os.path", "Import not allowed: os"},
		{"identifier containing keyword", "evaluate = 3\nprint(evaluate)", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCode(tt.code)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestFabricateOutput(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"double quoted", `print("Hello, World!")`, "Hello, World!"},
		{"single quoted", `print('hi')`, "hi"},
		{"arithmetic", `print(5 + 3)`, "8"},
		{"float division", `print(7 / 2)`, "3.5"},
		{"variable", "name = 'x'\nprint(name)", "[Variable: name]"},
		{"expression kept", `print(f"{name}!")`, `f"{name}!"`},
		{"multiple prints", "print('a')\nprint(2*3)", "a\n6"},
		{"function", "def main():\n    pass", "Function defined successfully"},
		{"return", "def f():\n    return 1", "Return statement executed"},
		{"nothing", "x = 1", "Code executed successfully"},
		{"division by zero kept", `print(1/0)`, "1/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FabricateOutput(tt.code))
		})
	}
}

func TestEvalArithmetic(t *testing.T) {
	v, err := EvalArithmetic("(2 + 3) * 4 - 1")
	require.NoError(t, err)
	assert.Equal(t, 19.0, v)

	_, err = EvalArithmetic("2 % 3")
	assert.Error(t, err)
}

func TestSimulator_Execute(t *testing.T) {
	sim := NewSimulator(Options{})
	ctx := context.Background()

	t.Run("output mode", func(t *testing.T) {
		res, err := sim.Execute(ctx, `print("Hello, World!")`, nil)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "Hello, World!", res.Output)
		assert.Less(t, res.MemoryUsageKB, 10*1024)
	})

	t.Run("rejected code", func(t *testing.T) {
		_, err := sim.Execute(ctx, `eval("1")`, nil)
		assert.EqualError(t, err, "Forbidden operation: eval() is not allowed")
	})

	t.Run("test mode aggregates", func(t *testing.T) {
		cases := []domain.TestCase{{Input: "", Expected: "8"}, {Input: "", Expected: "9"}}
		res, err := sim.Execute(ctx, `print(5 + 3)`, cases)
		require.NoError(t, err)
		assert.False(t, res.Success)
		require.Len(t, res.TestResults, 2)
		assert.True(t, res.TestResults[0].Passed)
		assert.False(t, res.TestResults[1].Passed)
		assert.Equal(t, 1, res.PassedCount())
	})

	t.Run("timeout", func(t *testing.T) {
		slow := NewSimulator(Options{Timeout: time.Millisecond, MaxDelay: time.Hour})
		_, err := slow.Execute(ctx, `print("x")`, nil)
		if err != nil {
			assert.Contains(t, err.Error(), "Execution timed out")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewSimulator(Options{MaxDelay: time.Second}).Execute(cctx, `print("x")`, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
