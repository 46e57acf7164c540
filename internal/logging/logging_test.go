package logging

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/mitchellh/iochan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svgedit/svgedit/internal/pubsub"
)

func TestValidLevels(t *testing.T) {
	assert.Equal(t, []string{"info", "debug", "error", "warn"}, ValidLevels())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{
		Level:             "debug",
		AdditionalWriters: []io.Writer{&buf},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := logger.Subscribe(ctx)

	logger.Info("selected pane", "index", 2)
	logger.Debug("arranged icons", "orientation", "landscape")

	msgs := logger.Messages()
	require.Len(t, msgs, 2)

	assert.Equal(t, "INFO", msgs[0].Level)
	assert.Equal(t, "selected pane", msgs[0].Message)
	assert.Equal(t, []Attr{{Key: "index", Value: "2"}}, msgs[0].Attributes)
	assert.Equal(t, uint(0), msgs[0].Serial)
	assert.False(t, msgs[0].Time.IsZero())

	assert.Equal(t, "DEBUG", msgs[1].Level)
	assert.Equal(t, uint(1), msgs[1].Serial)

	ev := <-sub
	assert.Equal(t, pubsub.CreatedEvent, ev.Type)
	assert.Equal(t, "selected pane", ev.Payload.Message)

	assert.Contains(t, buf.String(), "msg=\"selected pane\"")
}

func TestLogger_Level(t *testing.T) {
	logger := NewLogger(Options{Level: "warn"})

	logger.Info("ignored")
	logger.Warn("kept")

	msgs := logger.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "kept", msgs[0].Message)
}

func TestLogger_UnknownLevel(t *testing.T) {
	logger := NewLogger(Options{Level: "bogus"})

	logger.Debug("ignored")
	logger.Info("kept")

	assert.Len(t, logger.Messages(), 1)
}

func TestLogger_AdditionalWriterLines(t *testing.T) {
	r, w := io.Pipe()
	logger := NewLogger(Options{AdditionalWriters: []io.Writer{w}})
	lines := iochan.DelimReader(r, '\n')

	go func() {
		logger.Info("first")
		logger.Info("second", "n", 2)
		w.Close()
	}()

	var got []string
	for line := range lines {
		got = append(got, line)
	}
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "msg=first")
	assert.Contains(t, got[1], "msg=second n=2")
}
