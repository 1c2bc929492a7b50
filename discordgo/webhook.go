// Package discordgo provides Discord API adapters using package github.com/bwmarrin/discordgo
package discordgo

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/benjamonnguyen/pomomo-tui"
)

type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type webhookNotifier struct {
	cl        webhookExecutor
	webhookID string
	token     string
	l         *log.Logger
}

// NewWebhookNotifier posts completed intervals to a Discord channel webhook.
func NewWebhookNotifier(cl *discordgo.Session, webhookID, token string, logger *log.Logger) *webhookNotifier {
	return newWebhookNotifier(cl, webhookID, token, logger)
}

func newWebhookNotifier(cl webhookExecutor, webhookID, token string, logger *log.Logger) *webhookNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &webhookNotifier{
		cl:        cl,
		webhookID: webhookID,
		token:     token,
		l:         logger,
	}
}

func (w *webhookNotifier) NotifyComplete(ctx context.Context, c pomomo.CompletedInterval) error {
	params := &discordgo.WebhookParams{
		Username: "pomomo",
		Content:  CompletionMessage(c),
	}
	w.l.Debug("executing webhook", "mode", c.Mode, "content", params.Content)
	if _, err := w.cl.WebhookExecute(w.webhookID, w.token, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to execute webhook: %w", err)
	}
	return nil
}

func CompletionMessage(c pomomo.CompletedInterval) string {
	minutes := int(c.Duration.Minutes())
	switch c.Mode {
	case pomomo.WorkMode:
		return fmt.Sprintf("🍅 Finished a %d minute pomodoro. %d completed so far.", minutes, c.CompletedPomodoros)
	case pomomo.ShortBreakMode, pomomo.LongBreakMode:
		return fmt.Sprintf("☕ %s over after %d minutes. Back to work!", c.Mode, minutes)
	default:
		return fmt.Sprintf("%s finished.", c.Mode)
	}
}
