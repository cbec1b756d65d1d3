package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Black-png/trackers-api/internal/entity"
	"github.com/Black-png/trackers-api/internal/mocks"
	"github.com/Black-png/trackers-api/internal/seeder"
	"github.com/Black-png/trackers-api/internal/service"
)

type deps struct {
	repo   *mocks.MockRepository
	gate   *mocks.MockMigrationGate
	seeder *mocks.MockSeeder
	events *mocks.MockEvents
	s      *service.Service
}

func newDeps(t *testing.T) deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:   mocks.NewMockRepository(ctrl),
		gate:   mocks.NewMockMigrationGate(ctrl),
		seeder: mocks.NewMockSeeder(ctrl),
		events: mocks.NewMockEvents(ctrl),
	}
	d.s = service.New(d.repo, d.gate, d.seeder, d.events)

	return d
}

func TestService_SeedAndReadiness(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	finished := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	report := seeder.Report{
		Steps:      []seeder.StepResult{{Step: seeder.StepRoles, Inserted: 4}, {Step: seeder.StepUserAreas, Inserted: 24}},
		StartedAt:  finished.Add(-time.Second),
		FinishedAt: finished,
	}

	d.gate.EXPECT().AllMigrationsApplied(gomock.Any()).Return(true, nil).Times(2)

	r, err := d.s.Readiness(ctx)
	require.NoError(t, err)
	require.False(t, r.Ready())
	require.Nil(t, r.LastSeedAt)

	d.seeder.EXPECT().EnsureSeeded(gomock.Any()).Return(report, nil)
	d.events.EXPECT().SendSeedCompleted(gomock.Any(), 28, finished)

	_, err = d.s.Seed(ctx)
	require.NoError(t, err)

	r, err = d.s.Readiness(ctx)
	require.NoError(t, err)
	require.True(t, r.Ready())
	require.Equal(t, 28, r.Inserted)
	require.Equal(t, finished, *r.LastSeedAt)
}

func TestService_SeedFailure(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	ctx := context.Background()
	stepErr := &seeder.StepError{Step: seeder.StepPackages, Err: errors.New("connection reset")}

	d.seeder.EXPECT().EnsureSeeded(gomock.Any()).Return(seeder.Report{}, stepErr)

	_, err := d.s.Seed(ctx)
	require.ErrorIs(t, err, stepErr)

	d.gate.EXPECT().AllMigrationsApplied(gomock.Any()).Return(true, nil)

	r, err := d.s.Readiness(ctx)
	require.NoError(t, err)
	require.False(t, r.Ready())
	require.Contains(t, r.LastError, "seed packages")
}

func TestService_SeedWithoutEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sd := mocks.NewMockSeeder(ctrl)
	sd.EXPECT().EnsureSeeded(gomock.Any()).Return(seeder.Report{FinishedAt: time.Now()}, nil)

	s := service.New(mocks.NewMockRepository(ctrl), mocks.NewMockMigrationGate(ctrl), sd, nil)

	_, err := s.Seed(context.Background())
	require.NoError(t, err)
}

func TestService_ReadinessPendingMigrations(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	d.gate.EXPECT().AllMigrationsApplied(gomock.Any()).Return(false, nil)

	r, err := d.s.Readiness(context.Background())
	require.NoError(t, err)
	require.False(t, r.MigrationsApplied)
	require.False(t, r.Ready())

	d.gate.EXPECT().AllMigrationsApplied(gomock.Any()).Return(false, errors.New("db down"))

	_, err = d.s.Readiness(context.Background())
	require.Error(t, err)
}

func TestService_NotificationTemplates(t *testing.T) {
	t.Parallel()

	started := entity.Notification{ID: uuid.Must(uuid.NewV4()), Name: "DowntimeStarted"}
	job := entity.Notification{ID: uuid.Must(uuid.NewV4()), Name: "JobCompleted"}

	templates := []entity.NotificationTemplate{
		{ID: uuid.Must(uuid.NewV4()), NotificationID: started.ID, Channel: entity.ChannelEmail, Template: "started email"},
		{ID: uuid.Must(uuid.NewV4()), NotificationID: job.ID, Channel: entity.ChannelInApp, Template: "job in app"},
		{ID: uuid.Must(uuid.NewV4()), NotificationID: started.ID, Channel: entity.ChannelInApp, Template: "started in app"},
	}

	tests := []struct {
		name    string
		kind    string
		channel string
		want    []entity.TemplateView
		err     error
	}{
		{
			name: "all",
			want: []entity.TemplateView{
				{Notification: "DowntimeStarted", Channel: entity.ChannelEmail, Template: "started email"},
				{Notification: "DowntimeStarted", Channel: entity.ChannelInApp, Template: "started in app"},
				{Notification: "JobCompleted", Channel: entity.ChannelInApp, Template: "job in app"},
			},
		},
		{
			name: "by kind",
			kind: "DowntimeStarted",
			want: []entity.TemplateView{
				{Notification: "DowntimeStarted", Channel: entity.ChannelEmail, Template: "started email"},
				{Notification: "DowntimeStarted", Channel: entity.ChannelInApp, Template: "started in app"},
			},
		},
		{
			name:    "by kind and channel",
			kind:    "JobCompleted",
			channel: "email",
			want:    []entity.TemplateView{},
		},
		{
			name: "unknown kind",
			kind: "Nope",
			err:  entity.ErrNotFound,
		},
		{
			name:    "unknown channel",
			channel: "sms",
			err:     entity.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)

			d.repo.EXPECT().Notifications(gomock.Any()).Return([]entity.Notification{started, job}, nil).MaxTimes(1)
			d.repo.EXPECT().NotificationTemplates(gomock.Any()).Return(templates, nil).MaxTimes(1)

			got, err := d.s.NotificationTemplates(context.Background(), tt.kind, tt.channel)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_Packages(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	want := []entity.PackageWithOperations{{Name: entity.PackageStarter, Level: 1, Operations: []string{entity.OperationOEE}}}

	d.repo.EXPECT().PackagesWithOperations(gomock.Any()).Return(want, nil)

	got, err := d.s.Packages(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	d.repo.EXPECT().PackagesWithOperations(gomock.Any()).Return(nil, errors.New("boom"))

	_, err = d.s.Packages(context.Background())
	require.Error(t, err)
}

func TestService_SkipSeed(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.s.SkipSeed()

	d.gate.EXPECT().AllMigrationsApplied(gomock.Any()).Return(true, nil)

	r, err := d.s.Readiness(context.Background())
	require.NoError(t, err)
	require.True(t, r.Ready())
	require.Nil(t, r.LastSeedAt)
}

func TestService_PreviewTemplate(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	got, err := d.s.PreviewTemplate("OEEBelowTarget", "in_app", map[string]string{
		"EquipmentName": "Press 4",
		"OEE":           "52%",
		"Target":        "75%",
	})
	require.NoError(t, err)
	require.Equal(t, "OEE of Press 4 is 52%, below target 75%", got)

	_, err = d.s.PreviewTemplate("OEEBelowTarget", "sms", nil)
	require.ErrorIs(t, err, entity.ErrBadRequest)

	_, err = d.s.PreviewTemplate("JobCompleted", "email", nil)
	require.ErrorIs(t, err, entity.ErrNotFound)
}
