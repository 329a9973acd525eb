package autocopilot_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	autocopilot "github.com/benfrussell/AutoCopilot"
	"github.com/benfrussell/AutoCopilot/internal/logging"
	"github.com/benfrussell/AutoCopilot/pkg/adapters/memory"
	"github.com/benfrussell/AutoCopilot/pkg/codec"
	"github.com/benfrussell/AutoCopilot/pkg/domain"
	"github.com/benfrussell/AutoCopilot/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nestedInstructions() *domain.Group {
	return domain.NewGroup("Root",
		domain.NewInstruction(domain.Log("One")),
		domain.NewGroup("",
			domain.NewInstruction(domain.Log("Two")),
			domain.NewInstruction(domain.Log("Three")),
		),
	)
}

func TestNew_StartsWithEmptyRoot(t *testing.T) {
	cp := autocopilot.New()

	root := cp.Instructions()
	require.NotNil(t, root)
	assert.Equal(t, "Root", root.Name())
	assert.Equal(t, 0, root.Len())

	out, err := cp.SerializeInstructions()
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(`{"id":%d,"name":"Root","type":"group","children":[]}`, root.ID()), out)
}

func TestSerializeInstructions_Nested(t *testing.T) {
	cp := autocopilot.New()
	root := nestedInstructions()
	cp.SetInstructions(root)

	out, err := cp.SerializeInstructions()
	require.NoError(t, err)

	var doc codecDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	ids := map[int64]bool{}
	var texts []string
	doc.walk(func(d codecDoc) {
		ids[d.ID] = true
		for _, a := range d.Actions {
			assert.Equal(t, "Log", a.Kind)
			texts = append(texts, a.Parameters[0].(string))
		}
	})

	assert.Len(t, ids, 5, "root plus four nodes, all distinct")
	assert.Equal(t, []string{"One", "Two", "Three"}, texts)
	assert.Equal(t, "Root", doc.Name)
}

func TestSerializeInstructions_Idempotent(t *testing.T) {
	cp := autocopilot.New()
	cp.SetInstructions(nestedInstructions())

	first, err := cp.SerializeInstructions()
	require.NoError(t, err)
	second, err := cp.SerializeInstructions()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSetInstructions_Replaces(t *testing.T) {
	cp := autocopilot.New()
	cp.SetInstructions(nestedInstructions())

	replacement := domain.NewGroup("Landing",
		domain.NewNamedInstruction("rtl", domain.InitiateReturnHome()),
	)
	cp.SetInstructions(replacement)

	assert.Same(t, replacement, cp.Instructions())

	out, err := cp.SerializeInstructions()
	require.NoError(t, err)
	assert.Contains(t, out, "Landing")
	assert.Contains(t, out, "InitiateReturnHome")
	for _, stale := range []string{"One", "Two", "Three", `"Root"`} {
		assert.NotContains(t, out, stale)
	}
}

func TestSetInstructions_NilResets(t *testing.T) {
	cp := autocopilot.New(autocopilot.WithRoot(nestedInstructions()))
	cp.SetInstructions(nil)

	root := cp.Instructions()
	assert.Equal(t, autocopilot.RootName, root.Name())
	assert.Equal(t, 0, root.Len())
}

func TestEncode_YAML(t *testing.T) {
	cp := autocopilot.New(autocopilot.WithRoot(nestedInstructions()))

	var buf bytes.Buffer
	require.NoError(t, cp.Encode(&buf, codec.FormatYAML))
	assert.True(t, strings.HasPrefix(buf.String(), "id: "))
	assert.Contains(t, buf.String(), "name: Root")
	assert.Contains(t, buf.String(), "- Three")
}

func TestEncode_UnknownFormat(t *testing.T) {
	cp := autocopilot.New()
	err := cp.Encode(&bytes.Buffer{}, codec.Format("xml"))
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}

func TestPublish(t *testing.T) {
	pub := memory.NewPublisher()
	metrics := observability.NewMetrics()
	cp := autocopilot.New(
		autocopilot.WithPublisher(pub),
		autocopilot.WithMetrics(metrics),
		autocopilot.WithRoot(nestedInstructions()),
	)

	require.NoError(t, cp.Publish(context.Background()))

	want, err := cp.SerializeInstructions()
	require.NoError(t, err)
	history := pub.History()
	require.Len(t, history, 1)
	assert.Equal(t, want, string(history[0]))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Publishes.WithLabelValues(observability.ResultOK)))
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, []byte) error { return errors.New("link down") }

func TestPublish_Failure(t *testing.T) {
	var logs bytes.Buffer
	metrics := observability.NewMetrics()
	cp := autocopilot.New(
		autocopilot.WithPublisher(failingPublisher{}),
		autocopilot.WithMetrics(metrics),
		autocopilot.WithLogger(logging.NewWithWriter(&logs, slog.LevelDebug, logging.FormatText)),
	)

	err := cp.Publish(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link down")
	assert.Contains(t, logs.String(), "publish failed")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Publishes.WithLabelValues(observability.ResultError)))
}

func TestPublish_NoPublisher(t *testing.T) {
	cp := autocopilot.New()
	assert.ErrorIs(t, cp.Publish(context.Background()), autocopilot.ErrNoPublisher)
}

func TestMetrics_TrackTree(t *testing.T) {
	metrics := observability.NewMetrics()
	cp := autocopilot.New(autocopilot.WithMetrics(metrics))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.TreeNodes))

	cp.SetInstructions(nestedInstructions())
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.TreeNodes))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Replacements))

	_, err := cp.SerializeInstructions()
	require.NoError(t, err)
	require.NoError(t, cp.Encode(&bytes.Buffer{}, codec.FormatYAML))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Serializations.WithLabelValues("json")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Serializations.WithLabelValues("yaml")))
}

func TestWithIndent(t *testing.T) {
	cp := autocopilot.New(autocopilot.WithIndent(true))
	out, err := cp.SerializeInstructions()
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"name\": \"Root\"")
}

// codecDoc mirrors the serialized node shape for assertions.
type codecDoc struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Children []codecDoc `json:"children"`
	Actions  []struct {
		Kind       string `json:"kind"`
		Parameters []any  `json:"parameters"`
	} `json:"actions"`
}

func (d codecDoc) walk(fn func(codecDoc)) {
	fn(d)
	for _, c := range d.Children {
		c.walk(fn)
	}
}
