package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"regportal/internal/ports/output"
)

var _ Sink = (*DiscordAnnouncer)(nil)

// DiscordAnnouncer posts each registration to an organizer channel through a
// Discord webhook. Webhook execution needs no bot token.
type DiscordAnnouncer struct {
	session    *discordgo.Session
	webhookID  string
	webhookTok string
	locale     string
	translator output.T
}

// NewDiscordAnnouncer parses a webhook URL of the form
// https://discord.com/api/webhooks/<id>/<token>.
func NewDiscordAnnouncer(webhookURL, locale string, translator output.T) (*DiscordAnnouncer, error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("webhook url: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 || parts[len(parts)-3] != "webhooks" {
		return nil, fmt.Errorf("webhook url: unexpected path %q", u.Path)
	}

	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}

	return &DiscordAnnouncer{
		session:    session,
		webhookID:  parts[len(parts)-2],
		webhookTok: parts[len(parts)-1],
		locale:     locale,
		translator: translator,
	}, nil
}

func (d *DiscordAnnouncer) Name() string { return "discord" }

func (d *DiscordAnnouncer) Deliver(ctx context.Context, ev RegistrationCreated) error {
	content := d.translator.T(d.locale, "announce.registration", map[string]any{
		"StudentName": ev.StudentName,
		"CollegeName": ev.CollegeName,
		"EventName":   ev.EventName,
	})
	_, err := d.session.WebhookExecute(d.webhookID, d.webhookTok, false, &discordgo.WebhookParams{
		Content: content,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("webhook execute: %w", err)
	}
	return nil
}
