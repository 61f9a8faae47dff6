package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantumtranslator/internal/validation"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCmd(t *testing.T) {
	out, err := run(t, "classify", "encrypt", "my", "data")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "cryptography", got["category"])
	assert.Contains(t, got["speedup"], "Exponential")
}

func TestClassifyCmd_Pretty(t *testing.T) {
	out, err := run(t, "classify", "--pretty", "find my keys")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"category\": \"search\"")
}

func TestClassifyCmd_Blank(t *testing.T) {
	_, err := run(t, "classify", "   ")
	assert.True(t, errors.Is(err, validation.ErrProblemRequired))
}

func TestClassifyCmd_NoArgs(t *testing.T) {
	_, err := run(t, "classify")
	assert.Error(t, err)
}

func TestCategoriesCmd(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "optimization\t"))
	assert.True(t, strings.HasPrefix(lines[3], "cryptography\t"))
	assert.Equal(t, "general\t(fallback)", lines[4])
}
