package discordgo

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjamonnguyen/pomomo-tui"
)

type mockExecutor struct {
	calls []*discordgo.WebhookParams
	ids   []string
	err   error
}

func (m *mockExecutor) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.calls = append(m.calls, data)
	m.ids = append(m.ids, webhookID+"/"+token)
	return nil, m.err
}

func TestWebhookNotifier_NotifyComplete(t *testing.T) {
	cl := &mockExecutor{}
	n := newWebhookNotifier(cl, "123", "secret", log.New(io.Discard))

	err := n.NotifyComplete(context.Background(), pomomo.CompletedInterval{
		Mode:               pomomo.WorkMode,
		Duration:           25 * time.Minute,
		CompletedAt:        time.Now(),
		CompletedPomodoros: 3,
	})
	require.NoError(t, err)
	require.Len(t, cl.calls, 1)
	assert.Equal(t, "123/secret", cl.ids[0])
	assert.Equal(t, "pomomo", cl.calls[0].Username)
	assert.Contains(t, cl.calls[0].Content, "25 minute pomodoro")
	assert.Contains(t, cl.calls[0].Content, "3 completed")
}

func TestWebhookNotifier_Error(t *testing.T) {
	cl := &mockExecutor{err: errors.New("boom")}
	n := newWebhookNotifier(cl, "123", "secret", log.New(io.Discard))

	err := n.NotifyComplete(context.Background(), pomomo.CompletedInterval{Mode: pomomo.ShortBreakMode, Duration: 5 * time.Minute})
	assert.ErrorContains(t, err, "boom")
}

func TestCompletionMessage(t *testing.T) {
	msg := CompletionMessage(pomomo.CompletedInterval{Mode: pomomo.LongBreakMode, Duration: 15 * time.Minute})
	assert.Equal(t, "☕ Long Break over after 15 minutes. Back to work!", msg)
}
