// Package slack sends escalation notifications to Slack via incoming
// webhooks. Only the urgency level, wait time, and IDs go out; symptom text
// and the report stay inside the system.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/linnemanlabs/sahayak/internal/knowledge"
	"github.com/linnemanlabs/sahayak/internal/triage"
)

const httpTimeout = 10 * time.Second

// Notifier sends escalated triage results to a Slack webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// New creates a new Slack notifier. If webhookURL is empty, Send is a no-op.
func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: httpTimeout},
	}
}

// Send posts a triage result to the configured Slack webhook.
// If no webhook URL is configured, it returns nil immediately.
func (n *Notifier) Send(ctx context.Context, result *triage.Result) error {
	if n.webhookURL == "" {
		return nil
	}

	msg := buildMessage(result)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("slack: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("slack: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req) //nolint:gosec // G704: webhookURL is from trusted config, not user input
	if err != nil {
		return fmt.Errorf("slack: post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack: webhook returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func buildMessage(r *triage.Result) map[string]any {
	return map[string]any{
		"blocks": []map[string]any{
			headerBlock(r),
			{"type": "divider"},
			fieldsBlock(r),
			{"type": "divider"},
			contextBlock(r),
		},
	}
}

func headerBlock(r *triage.Result) map[string]any {
	emoji := levelEmoji(r.Status, r.Level)
	title := "Escalation"
	if r.Status == triage.StatusFailed {
		title = "Assessment Failed"
	}
	text := fmt.Sprintf("%s %s: %s urgency", emoji, title, r.Level)

	return map[string]any{
		"type": "header",
		"text": map[string]any{
			"type": "plain_text",
			"text": text,
		},
	}
}

func fieldsBlock(r *triage.Result) map[string]any {
	fields := []map[string]any{
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Status:* %s", r.Status),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Urgency:* %s", r.Level),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Wait time:* %s", r.Recommendations.WaitTime),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Deciding rule:* %s", r.Trail.DecidingRule),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Risk score:* %.1f", r.RiskScore),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Specialist:* %t", r.Recommendations.SpecialistNeeded),
		},
	}

	return map[string]any{
		"type":   "section",
		"fields": fields,
	}
}

func contextBlock(r *triage.Result) map[string]any {
	ts := r.CompletedAt
	if ts.IsZero() {
		ts = r.CreatedAt
	}

	elements := []map[string]any{
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("sahayak • assessment %s • %s", r.ID, ts.UTC().Format("2006-01-02 15:04 UTC")),
		},
	}

	return map[string]any{
		"type":     "context",
		"elements": elements,
	}
}

func levelEmoji(status triage.Status, level knowledge.Level) string {
	if status == triage.StatusFailed {
		return "\U0001f534" // red circle
	}
	switch level {
	case knowledge.LevelCritical:
		return "\U0001f534" // red circle
	case knowledge.LevelHigh:
		return "\U0001f7e0" // orange circle
	default:
		return "\U0001f7e1" // yellow circle
	}
}
