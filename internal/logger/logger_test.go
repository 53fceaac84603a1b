package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBuffer_Overwrites(t *testing.T) {
	rb := NewRingBuffer[int](3)
	for i := 1; i <= 5; i++ {
		rb.Push(i)
	}

	assert.Equal(t, []int{3, 4, 5}, rb.GetAll())
}

func TestRingBuffer_Partial(t *testing.T) {
	rb := NewRingBuffer[string](4)
	rb.Push("a")
	rb.Push("b")

	assert.Equal(t, []string{"a", "b"}, rb.GetAll())
}

func TestRingBuffer_Last(t *testing.T) {
	rb := NewRingBuffer[int](4)
	for i := 1; i <= 6; i++ {
		rb.Push(i)
	}

	assert.Equal(t, []int{5, 6}, rb.Last(2))
	assert.Equal(t, []int{3, 4, 5, 6}, rb.Last(10))
	assert.Empty(t, rb.Last(0))
	assert.Empty(t, NewRingBuffer[int](2).Last(1))
}

func TestCapture_ParsesZerologLines(t *testing.T) {
	c := NewCapture(10)
	log := zerolog.New(c).With().Timestamp().Str("component", "discovery").Logger()

	log.Info().Int("page", 2).Msg("page yielded no candidates")
	_, _ = c.Write([]byte("not json"))

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0].Level)
	assert.Equal(t, "discovery", entries[0].Component)
	assert.Equal(t, "page yielded no candidates", entries[0].Message)
	assert.NotEmpty(t, entries[0].Timestamp)
	assert.EqualValues(t, 2, entries[0].Fields["page"])
}

func TestNew_WithFileAndCapture(t *testing.T) {
	dir := t.TempDir()
	l := New(Config{Level: "debug", Format: "json", Path: dir, BufferSize: 5})
	defer l.Close()

	l.Debug().Msg("hello")

	assert.Contains(t, l.GetLogFilePath(), logFileName)
	require.Len(t, l.GetRecentLogs(), 1)
	assert.Equal(t, "debug", l.GetRecentLogs()[0].Level)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}
