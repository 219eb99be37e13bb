package batch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropparse/pkg/parser"
	"github.com/ib-77/ropparse/pkg/rop/core"
	"github.com/ib-77/ropparse/pkg/value"
)

func docs(t *testing.T, raw ...string) []value.Value {
	t.Helper()
	out := make([]value.Value, 0, len(raw))
	for _, r := range raw {
		v, err := value.DecodeJSON([]byte(r))
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestRunAll_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	ctx := core.WithWorkerOptions(context.Background(), 3)
	inputs := make([]value.Value, 50)
	for i := range inputs {
		inputs[i] = value.Object(value.KV("id", value.Number(float64(i))))
	}

	results := RunAll(ctx, parser.Field("id", parser.Int), inputs)

	require.Len(t, results, len(inputs))
	for i, r := range results {
		if !r.IsSuccess() || r.Result() != i {
			t.Fatalf("expected success with %d, got success=%v, val=%v, err=%v", i, r.IsSuccess(), r.Result(), r.Err())
		}
	}
}

func TestRunAll_MixedResults(t *testing.T) {
	t.Parallel()

	inputs := docs(t, `{"id": 1}`, `{"id": "x"}`, `{"name": "n"}`, `{"id": 4}`)

	results := RunAll(context.Background(), parser.Field("id", parser.Int), inputs)

	assert.True(t, results[0].IsSuccess())
	assert.ErrorIs(t, results[1].Err(), parser.ErrWrongKind)
	assert.ErrorIs(t, results[2].Err(), parser.ErrMissingField)
	assert.Equal(t, 4, results[3].Result())
}

func TestRunAll_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := RunAll(ctx, parser.Succeed(1), docs(t, `1`, `2`))

	require.Len(t, results, 2)
	for _, r := range results {
		assert.ErrorIs(t, r.Err(), ErrNotProcessed)
		assert.ErrorIs(t, r.Err(), context.Canceled)
	}
}

func TestRun_Streams(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	inputs := core.ToChanMany(ctx, docs(t, `[1, 2]`, `[3]`, `"x"`))
	results := core.FromChanMany(ctx, Run(ctx, parser.Array(parser.Int), inputs, 2))

	require.Len(t, results, 3)

	var ok, failed int
	for _, r := range results {
		if r.IsSuccess() {
			ok++
		} else {
			failed++
			assert.ErrorIs(t, r.Err(), parser.ErrNotArray)
		}
	}
	assert.Equal(t, 2, ok)
	assert.Equal(t, 1, failed)
}
