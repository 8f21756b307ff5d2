// Package ussd runs the USSD menu: reporting a threat and answering an alert
// from a feature phone. Session state lives in a SessionStore between callbacks.
package ussd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/repository"
	"github.com/PreciousMuemi/forest-link/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrInvalidRequest = errors.New("ussd request needs a session id and phone number")

const (
	msgExpired      = "Your session has expired. Please dial again."
	msgInvalid      = "Invalid choice. Please dial again."
	msgNoLocation   = "We do not have your location on file. Please report by SMS or through the app."
	msgNoAlert      = "There is no active alert to respond to."
	mainMenuText    = "Forest Link\n1. Report a threat\n2. Respond to an alert"
	respondMenuText = "How are you?\n1. Safe\n2. Need help\n3. Evacuating"
)

// respondBodies are fed to the reply classifier as if typed by the sender.
var respondBodies = map[string]string{
	"1": "SAFE",
	"2": "NEED HELP",
	"3": "EVACUATING",
}

// Request is one gateway callback. Text carries every input of the session
// joined by "*", e.g. "1*3*2".
type Request struct {
	SessionID   string
	ServiceCode string
	PhoneNumber string
	Text        string
}

type Menu struct {
	sessions    SessionStore
	incidents   service.IncidentService
	responses   service.ResponseService
	subscribers service.BroadcastService
	logger      *logrus.Logger
	now         func() time.Time
}

func NewMenu(
	sessions SessionStore,
	incidents service.IncidentService,
	responses service.ResponseService,
	subscribers service.BroadcastService,
	logger *logrus.Logger,
) *Menu {
	return &Menu{
		sessions:    sessions,
		incidents:   incidents,
		responses:   responses,
		subscribers: subscribers,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Handle advances the session by one input and returns the gateway reply:
// "CON ..." keeps the session open, "END ..." closes it.
func (m *Menu) Handle(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.SessionID) == "" || strings.TrimSpace(req.PhoneNumber) == "" {
		return "", ErrInvalidRequest
	}
	log := m.logger.WithFields(logrus.Fields{
		"service":    "ussd",
		"method":     "Handle",
		"session_id": req.SessionID,
	})

	if req.Text == "" {
		sess := &Session{ID: req.SessionID, Phone: req.PhoneNumber, Step: StepMain}
		if err := m.save(ctx, sess); err != nil {
			return "", err
		}
		log.Debug("USSD session started")
		return con(mainMenuText), nil
	}

	sess, err := m.sessions.Get(ctx, req.SessionID)
	if err != nil {
		log.WithError(err).Error("Failed to load USSD session")
		return "", err
	}
	if sess == nil {
		return end(msgExpired), nil
	}
	// A session id only continues the dialogue of the phone that opened it.
	if sess.Phone != req.PhoneNumber {
		log.Warn("USSD session id reused from another phone")
		return end(msgExpired), nil
	}

	input := lastInput(req.Text)
	switch sess.Step {
	case StepMain:
		switch input {
		case "1":
			sess.Step = StepThreat
			return m.next(ctx, sess, threatMenu())
		case "2":
			sess.Step = StepRespond
			return m.next(ctx, sess, respondMenuText)
		}
	case StepThreat:
		if i, ok := choice(input, len(models.ThreatTypes)); ok {
			sess.ThreatType = models.ThreatTypes[i]
			sess.Step = StepSeverity
			return m.next(ctx, sess, severityMenu())
		}
	case StepSeverity:
		if i, ok := choice(input, len(models.Severities)); ok {
			m.finish(ctx, log, sess.ID)
			return m.report(ctx, log, sess, models.Severities[i])
		}
	case StepRespond:
		if body, ok := respondBodies[input]; ok {
			m.finish(ctx, log, sess.ID)
			return m.respond(ctx, log, sess, body)
		}
	}

	m.finish(ctx, log, sess.ID)
	return end(msgInvalid), nil
}

func (m *Menu) report(ctx context.Context, log *logrus.Entry, sess *Session, severity models.Severity) (string, error) {
	sub, err := m.subscribers.GetSubscriber(ctx, sess.Phone)
	if errors.Is(err, repository.ErrNotFound) {
		return end(msgNoLocation), nil
	}
	if err != nil {
		return "", err
	}

	phone := sess.Phone
	incident := &models.Incident{
		Location:    sub.Location,
		ThreatType:  sess.ThreatType,
		Severity:    severity,
		Source:      models.SourceUSSD,
		Description: "Reported via USSD",
		SenderPhone: &phone,
	}
	if err := m.incidents.CreateIncident(ctx, incident); err != nil {
		return "", err
	}
	log.WithField("incident_id", incident.ID).Info("Incident reported over USSD")
	return end(fmt.Sprintf("Thank you. Report received, Ref #%s. Rangers have been alerted.", broadcast.ShortRef(incident.ID))), nil
}

func (m *Menu) respond(ctx context.Context, log *logrus.Entry, sess *Session, body string) (string, error) {
	resp, err := m.responses.HandleInbound(ctx, models.InboundMessage{
		From:    sess.Phone,
		Body:    body,
		Channel: models.ChannelUSSD,
	})
	if errors.Is(err, service.ErrNoTargetIncident) {
		return end(msgNoAlert), nil
	}
	if err != nil {
		return "", err
	}
	log.WithField("incident_id", resp.IncidentID).Info("Community response received over USSD")
	return end(fmt.Sprintf("Thank you. Your response was recorded for Ref #%s.", broadcast.ShortRef(resp.IncidentID))), nil
}

func (m *Menu) next(ctx context.Context, sess *Session, text string) (string, error) {
	if err := m.save(ctx, sess); err != nil {
		return "", err
	}
	return con(text), nil
}

func (m *Menu) save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = m.now()
	if err := m.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("ussd: %w", err)
	}
	return nil
}

// finish drops the session; the dialogue ends either way, so a failure is only logged.
func (m *Menu) finish(ctx context.Context, log *logrus.Entry, id string) {
	if err := m.sessions.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete USSD session")
	}
}

func threatMenu() string {
	title := cases.Title(language.English)
	var b strings.Builder
	b.WriteString("Select threat:")
	for i, t := range models.ThreatTypes {
		fmt.Fprintf(&b, "\n%d. %s", i+1, title.String(strings.ToLower(t.Label())))
	}
	return b.String()
}

func severityMenu() string {
	title := cases.Title(language.English)
	var b strings.Builder
	b.WriteString("Select severity:")
	for i, s := range models.Severities {
		fmt.Fprintf(&b, "\n%d. %s", i+1, title.String(string(s)))
	}
	return b.String()
}

// lastInput returns the newest entry of a "*"-joined USSD input string.
func lastInput(text string) string {
	parts := strings.Split(text, "*")
	return strings.TrimSpace(parts[len(parts)-1])
}

// choice parses a 1-based menu selection into a 0-based index below n.
func choice(input string, n int) (int, bool) {
	i, err := strconv.Atoi(input)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

func con(text string) string { return "CON " + text }

func end(text string) string { return "END " + text }
