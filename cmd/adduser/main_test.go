package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoledger/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestRun_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "success.db")
	stdout, stderr, stdin := new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)

	args := []string{"-name", "Fleet Admin", "-email", "admin@test.com", "-password", "password123", "-db", dbPath}
	err := run(args, stdin, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "User admin@test.com created successfully")
	assert.FileExists(t, dbPath)
}

func TestRun_DuplicateEmail(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "duplicate.db")
	stdout, stderr, stdin := new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)

	args := []string{"-email", "dup@test.com", "-password", "password123", "-db", dbPath}
	require.NoError(t, run(args, stdin, stdout, stderr), "first run should succeed")

	err := run(args, stdin, stdout, stderr)
	require.Error(t, err, "expected error on duplicate email")
	assert.Contains(t, err.Error(), "already exists")
}

func TestRun_MissingEmail(t *testing.T) {
	stdout, stderr, stdin := new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)

	err := run([]string{"-password", "password123"}, stdin, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags: email")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRun_InteractivePassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "interactive.db")
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	stdin := bytes.NewBufferString("interactive-secret\n")

	err := run([]string{"-email", "typed@test.com", "-db", dbPath}, stdin, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Password: ")
	assert.Contains(t, stdout.String(), "User typed@test.com created successfully")
}

func TestRun_PasswordChecks(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{name: "empty", stdin: "\n", want: "password cannot be empty"},
		{name: "short", stdin: "short\n", want: "at least 8 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
			err := run([]string{"-email", "x@test.com"}, bytes.NewBufferString(tt.stdin), stdout, stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_InvalidDBPath(t *testing.T) {
	stdout, stderr, stdin := new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)

	args := []string{"-email", "fail@test.com", "-password", "password123", "-db", t.TempDir()}
	err := run(args, stdin, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
}

func TestRun_InvalidFlag(t *testing.T) {
	stdout, stderr, stdin := new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)

	err := run([]string{"-invalid"}, stdin, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}
