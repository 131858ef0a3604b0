package stream

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/quill/quill"
)

func drain(t *testing.T, r *Reader) []*quill.Value {
	t.Helper()
	var out []*quill.Value
	for {
		v, err := r.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, v)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []*quill.Value{
		quill.Int(123),
		quill.Str("hello"),
		quill.Map(quill.Member{Key: "a", Value: quill.List(quill.Int(1), quill.Null())}),
		quill.Bool(false),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, 0)
	for _, v := range values {
		require.NoError(t, w.Write(v))
	}

	got := drain(t, NewReader(&buf))
	require.Len(t, got, len(values))
	for i := range values {
		assert.True(t, got[i].Equal(values[i]), "value %d", i)
	}
}

func TestReader_ValuesAcrossChunkBoundaries(t *testing.T) {
	// A tiny refill chunk forces every value to straddle reads,
	// including numerals that end exactly at a buffer edge.
	input := "123 4567\n[1,2,3] {\"key\":\"value\"}\n89"

	r := NewReaderSize(strings.NewReader(input), nil, 2)
	got := drain(t, r)

	require.Len(t, got, 5)
	assert.True(t, got[0].Equal(quill.Int(123)))
	assert.True(t, got[1].Equal(quill.Int(4567)))
	assert.True(t, got[2].Equal(quill.List(quill.Int(1), quill.Int(2), quill.Int(3))))
	assert.True(t, got[3].Equal(quill.Map(quill.Member{Key: "key", Value: quill.Str("value")})))
	assert.True(t, got[4].Equal(quill.Int(89)))
}

func TestReader_EmptyAndBlankStreams(t *testing.T) {
	for _, input := range []string{"", "   \n\t  \n"} {
		r := NewReader(strings.NewReader(input))
		_, err := r.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestReader_TruncatedValue(t *testing.T) {
	r := NewReader(strings.NewReader(`{"a": [1, 2`))
	_, err := r.Next()

	var derr *quill.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, quill.ErrorUnterminatedValue, derr.Kind)
}

func TestReader_GarbageBetweenValues(t *testing.T) {
	r := NewReader(strings.NewReader("1 @ 2"))

	v, err := r.Next()
	require.NoError(t, err)
	assert.True(t, v.Equal(quill.Int(1)))

	_, err = r.Next()
	var derr *quill.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, quill.ErrorUnexpectedToken, derr.Kind)
}

func TestWriter_NonFinitePolicy(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf, 0)
	err := w.Write(quill.Float(math.Inf(1)))
	require.ErrorIs(t, err, quill.ErrNonFinite)

	w = NewWriter(&buf, quill.OptSanitizeNonFinite)
	require.NoError(t, w.Write(quill.Float(math.Inf(1))))
	assert.Equal(t, "null\n", buf.String())
}
