package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSerialize_JSON(t *testing.T) {
	out, err := run(t, "serialize", "--mission", "nested", "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Root", doc["name"])
	assert.Len(t, doc["children"], 2)
}

func TestSerialize_YAML(t *testing.T) {
	out, err := run(t, "serialize", "--mission", "demo", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Preflight")
	assert.Contains(t, out, "kind: SetMavlinkServo")
}

func TestSerialize_UnknownMission(t *testing.T) {
	_, err := run(t, "serialize", "--mission", "atlantis", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mission")
}

func TestSerialize_BadFormat(t *testing.T) {
	_, err := run(t, "serialize", "--mission", "demo", "--format", "toml")
	assert.Error(t, err)
}

func TestGraph(t *testing.T) {
	out, err := run(t, "graph", "--mission", "demo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `[["Drop"]]`)
}

func TestInspect_Raw(t *testing.T) {
	out, err := run(t, "inspect", "--mission", "demo", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# Instructions")
	assert.Contains(t, out, "**Recovery**")
}

func TestInspect_RedirectedOutputIsRaw(t *testing.T) {
	out, err := run(t, "inspect", "--mission", "nested", "--raw=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Instructions\n"), "styled output written to a buffer:\n%s", out)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestKinds(t *testing.T) {
	out, err := run(t, "kinds")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 11)
	assert.Contains(t, out, "SetRPIGPIO")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "copilot version "))
}

func TestPublish(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	sub := client.Subscribe(ctx, "test:instructions")
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	out, err := run(t, "publish", "--mission", "nested", "--redis", mr.Addr(), "--channel", "test:instructions", "--require-subscriber")
	require.NoError(t, err)
	assert.Contains(t, out, "test:instructions")

	select {
	case msg := <-sub.Channel():
		assert.Contains(t, msg.Payload, `"name":"Root"`)
	case <-ctx.Done():
		t.Fatal("no message received")
	}
}

func TestServe_StopsWhenContextEnds(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"serve", "--mission", "nested", "--addr", "127.0.0.1:0", "--log-level", "error"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rootCmd.ExecuteContext(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after its context was canceled")
	}
}
