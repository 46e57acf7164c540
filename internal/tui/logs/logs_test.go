package logs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svgedit/svgedit/internal/logging"
	"github.com/svgedit/svgedit/internal/pubsub"
	"github.com/svgedit/svgedit/internal/tui"
)

func TestPane(t *testing.T) {
	logger := logging.NewLogger(logging.Options{Level: "debug"})
	logger.Info("started", "title", "SVG Editor")

	p := New(logger)
	p.SetSize(100, 10)
	assert.Equal(t, 1, p.Len())
	assert.Contains(t, p.View(), "started")
	assert.Contains(t, p.View(), "title=SVG Editor")

	p.Update(pubsub.NewEvent(pubsub.CreatedEvent, logging.Message{
		Level:   "WARN",
		Message: "icon missing",
	}))
	assert.Equal(t, 2, p.Len())
	assert.Contains(t, p.View(), "icon missing")

	// updates are ignored
	p.Update(pubsub.NewEvent(pubsub.UpdatedEvent, logging.Message{Message: "ignored"}))
	assert.Equal(t, 2, p.Len())
}

func TestPane_FollowsNewest(t *testing.T) {
	p := New(logging.NewLogger(logging.Options{}))
	p.SetSize(80, 2)

	for _, msg := range []string{"one", "two", "three", "four"} {
		p.Update(pubsub.NewEvent(pubsub.CreatedEvent, logging.Message{Level: "INFO", Message: msg}))
	}
	assert.Contains(t, p.View(), "four")
	assert.NotContains(t, p.View(), "one")
}

func TestPane_Wraps(t *testing.T) {
	p := New(logging.NewLogger(logging.Options{}))
	p.SetSize(40, 10)

	p.Update(pubsub.NewEvent(pubsub.CreatedEvent, logging.Message{
		Level:   "INFO",
		Message: strings.Repeat("word ", 20),
	}))
	assert.Greater(t, p.viewport.TotalLineCount(), 1)
	for _, line := range strings.Split(p.View(), "\n") {
		assert.LessOrEqual(t, tui.Width(line), 40)
	}
}
