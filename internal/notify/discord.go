// Package notify pushes auto-resolution summaries to a Discord webhook.
// Delivery is fire-and-forget: a failed notification is logged and counted,
// never surfaced to the resolution path.
package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/event"
	"github.com/cageside/fightcred/internal/logger"
	"github.com/cageside/fightcred/internal/metrics"
)

const embedColor = 0xC8102E

// DiscordNotifier posts resolution summaries through a webhook
type DiscordNotifier struct {
	session      *discordgo.Session
	webhookID    string
	webhookToken string
}

// NewDiscordNotifier creates a webhook-backed notifier. Webhook execution
// needs no bot token, so the session is unauthenticated.
func NewDiscordNotifier(webhookID, webhookToken string) (*DiscordNotifier, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &DiscordNotifier{
		session:      session,
		webhookID:    webhookID,
		webhookToken: webhookToken,
	}, nil
}

// Register subscribes the notifier to poller-driven resolutions. Admin
// resolutions are silent; the admin already knows.
func (n *DiscordNotifier) Register(bus event.Bus) {
	bus.Subscribe(event.FightAutoResolved, n.handleFightResolved)
}

func (n *DiscordNotifier) handleFightResolved(ctx context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.FightResolvedPayloadV1)
	if !ok {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Fight resolved: %s", payload.EventName),
		Description: describeOutcome(payload),
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Predictions scored",
				Value:  fmt.Sprintf("%d", payload.PredictionsResolved),
				Inline: true,
			},
		},
	}

	_, err := n.session.WebhookExecute(n.webhookID, n.webhookToken, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		metrics.NotificationErrors.Inc()
		logger.FromContext(ctx).Warn("Failed to deliver resolution notification",
			"fight_id", payload.FightID, "error", err)
		return nil
	}

	metrics.NotificationsSent.Inc()
	return nil
}

func describeOutcome(payload event.FightResolvedPayloadV1) string {
	loser := payload.Fighter1
	if loser == payload.Winner {
		loser = payload.Fighter2
	}
	return fmt.Sprintf("**%s** def. %s by %s", payload.Winner, loser, methodLabel(payload.Method))
}

func methodLabel(method domain.Method) string {
	switch method {
	case domain.MethodTKOKO:
		return "KO/TKO"
	case domain.MethodSubmission:
		return "submission"
	case domain.MethodDecision:
		return "decision"
	}
	return string(method)
}
