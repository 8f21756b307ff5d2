package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/events"
	events_mocks "github.com/PreciousMuemi/forest-link/internal/events/mocks"
	"github.com/PreciousMuemi/forest-link/internal/geo"
	messaging_mocks "github.com/PreciousMuemi/forest-link/internal/messaging/mocks"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/repository"
	"github.com/PreciousMuemi/forest-link/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type broadcastMocks struct {
	incidents *mocks.MockIncidentRepository
	community *mocks.MockCommunityRepository
	sender    *messaging_mocks.MockSender
	publisher *events_mocks.MockPublisher
}

func newTestBroadcastService(t *testing.T) (*broadcastService, broadcastMocks) {
	ctrl := gomock.NewController(t)
	m := broadcastMocks{
		incidents: mocks.NewMockIncidentRepository(ctrl),
		community: mocks.NewMockCommunityRepository(ctrl),
		sender:    messaging_mocks.NewMockSender(ctrl),
		publisher: events_mocks.NewMockPublisher(ctrl),
	}
	svc := NewBroadcastService(m.incidents, m.community, m.sender, m.publisher, newTestLogger(), testConfig()).(*broadcastService)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestBroadcastAlert_PartialFailure(t *testing.T) {
	svc, m := newTestBroadcastService(t)
	ctx := context.Background()
	incident := reportedIncident()
	subscribers := []models.CommunitySubscriber{
		{PhoneNumber: "+254700000001", Location: geo.Offset(incident.Location, 2, 10)},
		// inside the bounding box, outside the circle
		{PhoneNumber: "+254700000002", Location: geo.Offset(incident.Location, 6.5, 45)},
		{PhoneNumber: "+254700000003", Location: geo.Offset(incident.Location, 4, 200)},
		{PhoneNumber: "+254700000001", Location: geo.Offset(incident.Location, 1, 300)},
		{PhoneNumber: "+254700000004", Location: geo.Offset(incident.Location, 4.9, 90)},
	}
	wantText := broadcast.RenderMessage(*incident, "").Text

	m.incidents.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil)
	m.community.EXPECT().ListSubscribersInBox(ctx, geo.BoundingBoxAround(incident.Location, 5)).Return(subscribers, nil)
	m.sender.EXPECT().Send(gomock.Any(), "+254700000001", wantText).Return(nil)
	m.sender.EXPECT().Send(gomock.Any(), "+254700000003", wantText).Return(errors.New("gateway timeout"))
	m.sender.EXPECT().Send(gomock.Any(), "+254700000004", wantText).Return(nil)
	var saved models.AlertBroadcast
	m.community.EXPECT().SaveBroadcast(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *models.AlertBroadcast) error {
		b.ID = uuid.New()
		b.SentAt = fixedNow
		saved = *b
		return nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.IncidentEvent) error {
		assert.Equal(t, events.TypeIncidentBroadcast, e.Type)
		assert.Equal(t, 2, e.Detail["sent"])
		return nil
	})

	result, err := svc.BroadcastAlert(ctx, incident.ID, 5, "")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.ErrorIs(t, result.PartialFailure(), broadcast.ErrPartialSendFailure)
	assert.Equal(t, []string{"+254700000001", "+254700000004"}, saved.Recipients)
	assert.Equal(t, saved, result.Broadcast)
	assert.Equal(t, 5.0, saved.RadiusKm)
	assert.Empty(t, result.Warnings)
}

func TestBroadcastAlert_SurvivesCallerCancellation(t *testing.T) {
	svc, m := newTestBroadcastService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	incident := reportedIncident()
	subscribers := []models.CommunitySubscriber{
		{PhoneNumber: "+254700000001", Location: geo.Offset(incident.Location, 1, 0)},
		{PhoneNumber: "+254700000002", Location: geo.Offset(incident.Location, 2, 90)},
		{PhoneNumber: "+254700000003", Location: geo.Offset(incident.Location, 3, 180)},
	}

	m.incidents.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil)
	m.community.EXPECT().ListSubscribersInBox(ctx, gomock.Any()).Return(subscribers, nil)

	// The caller goes away right after the first message is delivered.
	var once sync.Once
	m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(sendCtx context.Context, _, _ string) error {
			if err := sendCtx.Err(); err != nil {
				return err
			}
			once.Do(cancel)
			return nil
		})
	var saved models.AlertBroadcast
	m.community.EXPECT().SaveBroadcast(gomock.Any(), gomock.Any()).DoAndReturn(func(saveCtx context.Context, b *models.AlertBroadcast) error {
		if err := saveCtx.Err(); err != nil {
			return err
		}
		saved = *b
		return nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.BroadcastAlert(ctx, incident.ID, 5, "")

	require.NoError(t, err)
	assert.Error(t, ctx.Err())
	assert.Equal(t, 3, result.Sent)
	assert.Zero(t, result.Failed)
	assert.ElementsMatch(t, []string{"+254700000001", "+254700000002", "+254700000003"}, saved.Recipients)
}

func TestBroadcastAlert_CustomMessageOverSoftLimit(t *testing.T) {
	svc, m := newTestBroadcastService(t)
	ctx := context.Background()
	incident := reportedIncident()
	custom := "Fire moving north along the Kereita ridge. Leave through the southern gate, do not use the forest road, and keep livestock away from the river crossing tonight. Rangers are on site."

	m.incidents.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil)
	m.community.EXPECT().ListSubscribersInBox(ctx, gomock.Any()).Return([]models.CommunitySubscriber{
		{PhoneNumber: "+254700000001", Location: incident.Location},
	}, nil)
	m.sender.EXPECT().Send(gomock.Any(), "+254700000001", custom).Return(nil)
	m.community.EXPECT().SaveBroadcast(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.BroadcastAlert(ctx, incident.ID, 3, custom)

	require.NoError(t, err)
	assert.Equal(t, custom, result.Broadcast.Message)
	assert.Len(t, result.Warnings, 1)
	assert.NoError(t, result.PartialFailure())
}

func TestBroadcastAlert_NoSubscribers(t *testing.T) {
	svc, m := newTestBroadcastService(t)
	ctx := context.Background()
	incident := reportedIncident()

	m.incidents.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil)
	m.community.EXPECT().ListSubscribersInBox(ctx, gomock.Any()).Return(nil, nil)
	m.community.EXPECT().SaveBroadcast(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *models.AlertBroadcast) error {
		assert.Empty(t, b.Recipients)
		return nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.BroadcastAlert(ctx, incident.ID, 10, "")

	require.NoError(t, err)
	assert.Zero(t, result.Attempted)
	assert.NoError(t, result.PartialFailure())
}

func TestBroadcastAlert_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, 50.5} {
		svc, _ := newTestBroadcastService(t)

		result, err := svc.BroadcastAlert(context.Background(), uuid.New(), radius, "")

		assert.ErrorIs(t, err, broadcast.ErrInvalidRadius)
		assert.Nil(t, result)
	}
}

func TestBroadcastAlert_IncidentNotFound(t *testing.T) {
	svc, m := newTestBroadcastService(t)
	ctx := context.Background()
	id := uuid.New()

	m.incidents.EXPECT().GetByID(ctx, id).Return(nil, repository.ErrNotFound)

	_, err := svc.BroadcastAlert(ctx, id, 5, "")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRegisterSubscriber(t *testing.T) {
	svc, m := newTestBroadcastService(t)
	ctx := context.Background()
	sub := &models.CommunitySubscriber{PhoneNumber: " +254700000009 ", Location: geo.Point{Lat: -0.4, Lon: 36.9}}

	m.community.EXPECT().UpsertSubscriber(ctx, sub).DoAndReturn(func(_ context.Context, s *models.CommunitySubscriber) error {
		assert.Equal(t, "+254700000009", s.PhoneNumber)
		return nil
	})

	require.NoError(t, svc.RegisterSubscriber(ctx, sub))

	err := svc.RegisterSubscriber(ctx, &models.CommunitySubscriber{PhoneNumber: "", Location: geo.Point{}})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.RegisterSubscriber(ctx, &models.CommunitySubscriber{PhoneNumber: "+1", Location: geo.Point{Lon: 181}})
	assert.ErrorIs(t, err, ErrValidation)
}
