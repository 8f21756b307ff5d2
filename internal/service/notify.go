package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/events"
	"github.com/PreciousMuemi/forest-link/internal/messaging"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/sirupsen/logrus"
)

func assignmentText(inc models.Incident, eta int) string {
	return fmt.Sprintf("FOREST LINK DISPATCH: %s %s at %.5f,%.5f. Ref #%s. ETA %d min.",
		strings.ToUpper(string(inc.Severity)),
		inc.ThreatType.Label(),
		inc.Location.Lat,
		inc.Location.Lon,
		broadcast.ShortRef(inc.ID),
		eta,
	)
}

func releaseText(inc models.Incident) string {
	return fmt.Sprintf("FOREST LINK: Ref #%s was marked %s. You are released from this incident.",
		broadcast.ShortRef(inc.ID),
		strings.ReplaceAll(string(inc.Status), "_", " "),
	)
}

func urgentHelpText(inc models.Incident, phone string) string {
	return fmt.Sprintf("URGENT: %s needs help near Ref #%s (%s). Contact them now.",
		phone,
		broadcast.ShortRef(inc.ID),
		inc.ThreatType.Label(),
	)
}

// enqueue queues an SMS and only logs on failure; the caller's write already happened.
func enqueue(ctx context.Context, notifier messaging.Notifier, log *logrus.Entry, n messaging.Notification) {
	if err := notifier.Enqueue(ctx, n); err != nil {
		log.WithError(err).WithField("kind", n.Kind).Warn("Failed to queue notification")
	}
}

// publish emits an incident event and only logs on failure.
func publish(ctx context.Context, publisher events.Publisher, log *logrus.Entry, event events.IncidentEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event", event.Type).Warn("Failed to publish incident event")
	}
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
