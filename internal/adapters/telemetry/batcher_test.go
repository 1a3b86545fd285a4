package telemetry_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shinyelectron/internal/adapters/telemetry"
)

type collector struct {
	mu     sync.Mutex
	chunks []string
}

func (c *collector) add(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chunks = append(c.chunks, string(data))
}

func (c *collector) joined() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := ""
	for _, s := range c.chunks {
		out += s
	}
	return out
}

func TestBatchProcessor_FlushOnSize(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(5, time.Hour, c.add)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("123"))
	require.NoError(t, err)
	assert.Empty(t, c.joined())

	_, err = bp.Write([]byte("456"))
	require.NoError(t, err)
	assert.Equal(t, "123456", c.joined())
}

func TestBatchProcessor_FlushOnTime(t *testing.T) {
	flushed := make(chan []byte, 1)
	bp := telemetry.NewBatchProcessor(1024, 10*time.Millisecond, func(data []byte) {
		select {
		case flushed <- data:
		default:
		}
	})
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("tick"))
	require.NoError(t, err)

	select {
	case data := <-flushed:
		assert.Equal(t, "tick", string(data))
	case <-time.After(2 * time.Second):
		t.Fatal("expected a timed flush")
	}
}

func TestBatchProcessor_CloseFlushesAndRejectsWrites(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(1024, time.Hour, c.add)

	_, err := bp.Write([]byte("pending"))
	require.NoError(t, err)

	require.NoError(t, bp.Close())
	assert.Equal(t, "pending", c.joined())

	_, err = bp.Write([]byte("late"))
	require.ErrorIs(t, err, telemetry.ErrBatcherClosed)

	require.NoError(t, bp.Close())
}

func TestBatchProcessor_ManualFlush(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(0, time.Hour, c.add)
	defer func() { _ = bp.Close() }()

	bp.Flush()
	assert.Empty(t, c.joined())

	_, err := bp.Write([]byte("line\n"))
	require.NoError(t, err)
	bp.Flush()
	assert.Equal(t, "line\n", c.joined())
}
