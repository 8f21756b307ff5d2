package broadcast

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
)

// SoftLimitChars is the single-SMS length. Longer custom messages are sent anyway.
const SoftLimitChars = 160

type Message struct {
	Text          string `json:"text"`
	Custom        bool   `json:"custom"`
	OverSoftLimit bool   `json:"over_soft_limit"`
}

// Warnings lists caller-facing notes about the message.
func (m Message) Warnings() []string {
	if !m.OverSoftLimit {
		return nil
	}
	return []string{fmt.Sprintf("message is %d characters, longer than one SMS (%d)", utf8.RuneCountInString(m.Text), SoftLimitChars)}
}

// ShortRef is the reference recipients quote back: first 8 characters of the id, uppercased.
func ShortRef(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}

// RenderMessage uses custom verbatim when it is non-blank, otherwise the standard alert template.
func RenderMessage(incident models.Incident, custom string) Message {
	if strings.TrimSpace(custom) != "" {
		return Message{
			Text:          custom,
			Custom:        true,
			OverSoftLimit: utf8.RuneCountInString(custom) > SoftLimitChars,
		}
	}

	text := fmt.Sprintf(
		"FOREST ALERT: %s %s reported near you. Ref #%s. Reply SAFE, NEED_HELP or EVACUATING.",
		strings.ToUpper(string(incident.Severity)),
		incident.ThreatType.Label(),
		ShortRef(incident.ID),
	)
	return Message{Text: text, OverSoftLimit: utf8.RuneCountInString(text) > SoftLimitChars}
}
