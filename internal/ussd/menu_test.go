package ussd

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/repository"
	"github.com/PreciousMuemi/forest-link/internal/service"
	"github.com/PreciousMuemi/forest-link/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryStore is a SessionStore for tests.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]Session)}
}

func (s *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *memoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

const (
	testSession = "ATUid_1"
	testPhone   = "+254733000123"
)

type menuMocks struct {
	store       *memoryStore
	incidents   *mocks.MockIncidentService
	responses   *mocks.MockResponseService
	subscribers *mocks.MockBroadcastService
}

func newTestMenu(t *testing.T) (*Menu, menuMocks) {
	ctrl := gomock.NewController(t)
	m := menuMocks{
		store:       newMemoryStore(),
		incidents:   mocks.NewMockIncidentService(ctrl),
		responses:   mocks.NewMockResponseService(ctrl),
		subscribers: mocks.NewMockBroadcastService(ctrl),
	}
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewMenu(m.store, m.incidents, m.responses, m.subscribers, logger), m
}

func dial(t *testing.T, menu *Menu, text string) string {
	t.Helper()
	reply, err := menu.Handle(context.Background(), Request{SessionID: testSession, PhoneNumber: testPhone, Text: text})
	require.NoError(t, err)
	return reply
}

func TestMenu_ReportThreat(t *testing.T) {
	menu, m := newTestMenu(t)
	loc := geo.Point{Lat: -0.41, Lon: 36.95}
	newID := uuid.New()

	m.subscribers.EXPECT().GetSubscriber(gomock.Any(), testPhone).Return(&models.CommunitySubscriber{PhoneNumber: testPhone, Location: loc}, nil)
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inc *models.Incident) error {
		assert.Equal(t, loc, inc.Location)
		assert.Equal(t, models.ThreatIllegalLogging, inc.ThreatType)
		assert.Equal(t, models.SeverityHigh, inc.Severity)
		assert.Equal(t, models.SourceUSSD, inc.Source)
		require.NotNil(t, inc.SenderPhone)
		assert.Equal(t, testPhone, *inc.SenderPhone)
		inc.ID = newID
		return nil
	})

	reply := dial(t, menu, "")
	assert.Equal(t, "CON "+mainMenuText, reply)

	reply = dial(t, menu, "1")
	assert.Contains(t, reply, "CON Select threat:")
	assert.Contains(t, reply, "3. Illegal Logging")

	reply = dial(t, menu, "1*3")
	assert.Contains(t, reply, "CON Select severity:")
	assert.Contains(t, reply, "4. Critical")

	reply = dial(t, menu, "1*3*3")
	assert.Contains(t, reply, "END Thank you. Report received")
	assert.Contains(t, reply, "#"+broadcast.ShortRef(newID))

	sess, _ := m.store.Get(context.Background(), testSession)
	assert.Nil(t, sess, "session is removed once the dialogue ends")
}

func TestMenu_ReportWithoutRegisteredLocation(t *testing.T) {
	menu, m := newTestMenu(t)

	m.subscribers.EXPECT().GetSubscriber(gomock.Any(), testPhone).Return(nil, repository.ErrNotFound)
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	dial(t, menu, "")
	dial(t, menu, "1")
	dial(t, menu, "1*1")
	reply := dial(t, menu, "1*1*2")

	assert.Equal(t, "END "+msgNoLocation, reply)
}

func TestMenu_RespondToAlert(t *testing.T) {
	menu, m := newTestMenu(t)
	incidentID := uuid.New()

	m.responses.EXPECT().HandleInbound(gomock.Any(), models.InboundMessage{
		From:    testPhone,
		Body:    "NEED HELP",
		Channel: models.ChannelUSSD,
	}).Return(&models.CommunityResponse{IncidentID: incidentID, Response: models.ResponseNeedHelp}, nil)

	dial(t, menu, "")
	reply := dial(t, menu, "2")
	assert.Equal(t, "CON "+respondMenuText, reply)

	reply = dial(t, menu, "2*2")
	assert.Contains(t, reply, "END Thank you. Your response was recorded")
}

func TestMenu_RespondWithoutAlert(t *testing.T) {
	menu, m := newTestMenu(t)

	m.responses.EXPECT().HandleInbound(gomock.Any(), gomock.Any()).Return(nil, service.ErrNoTargetIncident)

	dial(t, menu, "")
	dial(t, menu, "2")
	reply := dial(t, menu, "2*1")

	assert.Equal(t, "END "+msgNoAlert, reply)
}

func TestMenu_InvalidChoiceEndsSession(t *testing.T) {
	menu, m := newTestMenu(t)

	dial(t, menu, "")
	dial(t, menu, "1")
	reply := dial(t, menu, "1*9")

	assert.Equal(t, "END "+msgInvalid, reply)
	sess, _ := m.store.Get(context.Background(), testSession)
	assert.Nil(t, sess)
}

func TestMenu_ExpiredSession(t *testing.T) {
	menu, _ := newTestMenu(t)

	reply := dial(t, menu, "1*2")

	assert.Equal(t, "END "+msgExpired, reply)
}

func TestMenu_SessionBoundToOpeningPhone(t *testing.T) {
	menu, m := newTestMenu(t)
	m.subscribers.EXPECT().GetSubscriber(gomock.Any(), gomock.Any()).Times(0)

	dial(t, menu, "")
	reply, err := menu.Handle(context.Background(), Request{SessionID: testSession, PhoneNumber: "+254799999999", Text: "1"})

	require.NoError(t, err)
	assert.Equal(t, "END "+msgExpired, reply)
	sess, _ := m.store.Get(context.Background(), testSession)
	require.NotNil(t, sess, "the owner's session is left alone")
	assert.Equal(t, StepMain, sess.Step)

	reply = dial(t, menu, "1")
	assert.Contains(t, reply, "CON Select threat:")
}

func TestMenu_SessionSurvivesAcrossInstances(t *testing.T) {
	first, m := newTestMenu(t)
	second := NewMenu(m.store, m.incidents, m.responses, m.subscribers, first.logger)

	dial(t, first, "")
	reply := dial(t, second, "1")

	assert.Contains(t, reply, "CON Select threat:")
}

func TestMenu_InfrastructureErrorIsReturned(t *testing.T) {
	menu, m := newTestMenu(t)

	m.subscribers.EXPECT().GetSubscriber(gomock.Any(), testPhone).Return(nil, errors.New("connection refused"))

	dial(t, menu, "")
	dial(t, menu, "1")
	dial(t, menu, "1*1")
	_, err := menu.Handle(context.Background(), Request{SessionID: testSession, PhoneNumber: testPhone, Text: "1*1*1"})

	require.Error(t, err)
}

func TestMenu_RejectsIncompleteRequest(t *testing.T) {
	menu, _ := newTestMenu(t)

	_, err := menu.Handle(context.Background(), Request{SessionID: "", PhoneNumber: testPhone})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestLastInput(t *testing.T) {
	assert.Equal(t, "2", lastInput("1*3*2"))
	assert.Equal(t, "1", lastInput("1"))
	assert.Equal(t, "", lastInput("1*"))
}
