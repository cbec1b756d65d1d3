package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Black-png/trackers-api/internal/catalog"
	"github.com/Black-png/trackers-api/internal/entity"
	"github.com/Black-png/trackers-api/internal/seeder"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	PackagesWithOperations(ctx context.Context) ([]entity.PackageWithOperations, error)
	Notifications(ctx context.Context) ([]entity.Notification, error)
	NotificationTemplates(ctx context.Context) ([]entity.NotificationTemplate, error)
}

type MigrationGate interface {
	AllMigrationsApplied(ctx context.Context) (bool, error)
}

type Seeder interface {
	EnsureSeeded(ctx context.Context) (seeder.Report, error)
}

type Events interface {
	SendSeedCompleted(ctx context.Context, inserted int, finishedAt time.Time)
}

// GateFunc adapts a plain function to MigrationGate.
type GateFunc func(ctx context.Context) (bool, error)

func (f GateFunc) AllMigrationsApplied(ctx context.Context) (bool, error) {
	return f(ctx)
}

type Service struct {
	repo   Repository
	gate   MigrationGate
	seeder Seeder
	events Events

	mu       sync.RWMutex
	last     seeder.Report
	lastErr  error
	seededOK bool
}

// New builds the service. events may be nil when no broker is configured.
func New(repo Repository, gate MigrationGate, s Seeder, events Events) *Service {
	return &Service{
		repo:   repo,
		gate:   gate,
		seeder: s,
		events: events,
	}
}

// Seed runs the seeder once and remembers the outcome for readiness checks.
func (s *Service) Seed(ctx context.Context) (seeder.Report, error) {
	report, err := s.seeder.EnsureSeeded(ctx)

	s.mu.Lock()
	s.last = report
	s.lastErr = err
	s.seededOK = err == nil
	s.mu.Unlock()

	if err != nil {
		return report, err
	}

	if s.events != nil {
		s.events.SendSeedCompleted(ctx, report.Inserted(), report.FinishedAt)
	}

	return report, nil
}

// SkipSeed marks the reference data as managed elsewhere, so readiness only
// depends on migrations.
func (s *Service) SkipSeed() {
	s.mu.Lock()
	s.seededOK = true
	s.mu.Unlock()
}

func (s *Service) Readiness(ctx context.Context) (entity.Readiness, error) {
	applied, err := s.gate.AllMigrationsApplied(ctx)
	if err != nil {
		return entity.Readiness{}, fmt.Errorf("check migrations: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r := entity.Readiness{
		MigrationsApplied: applied,
		Seeded:            s.seededOK,
		Inserted:          s.last.Inserted(),
	}

	if !s.last.FinishedAt.IsZero() {
		finished := s.last.FinishedAt
		r.LastSeedAt = &finished
	}

	if s.lastErr != nil {
		r.LastError = s.lastErr.Error()
	}

	return r, nil
}

func (s *Service) Packages(ctx context.Context) ([]entity.PackageWithOperations, error) {
	packages, err := s.repo.PackagesWithOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	return packages, nil
}

// NotificationTemplates lists stored templates, optionally filtered by
// notification kind and channel. An unknown kind is ErrNotFound.
func (s *Service) NotificationTemplates(ctx context.Context, kind, channel string) ([]entity.TemplateView, error) {
	var ch entity.Channel

	if channel != "" {
		parsed, err := entity.ParseChannel(channel)
		if err != nil {
			return nil, errors.Join(entity.ErrBadRequest, err)
		}

		ch = parsed
	}

	notifications, err := s.repo.Notifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	names := make(map[uuid.UUID]string, len(notifications))
	kindFound := kind == ""

	for _, n := range notifications {
		names[n.ID] = n.Name

		if n.Name == kind {
			kindFound = true
		}
	}

	if !kindFound {
		return nil, fmt.Errorf("%w: %w %q", entity.ErrNotFound, entity.ErrUnknownNotification, kind)
	}

	templates, err := s.repo.NotificationTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	views := make([]entity.TemplateView, 0, len(templates))

	for _, t := range templates {
		name := names[t.NotificationID]

		if kind != "" && name != kind {
			continue
		}

		if ch != "" && t.Channel != ch {
			continue
		}

		views = append(views, entity.TemplateView{Notification: name, Channel: t.Channel, Template: t.Template})
	}

	sort.Slice(views, func(i, j int) bool {
		if views[i].Notification != views[j].Notification {
			return views[i].Notification < views[j].Notification
		}

		return views[i].Channel < views[j].Channel
	})

	return views, nil
}

// PreviewTemplate renders the canonical template of kind on channel with
// values substituted for its placeholders.
func (s *Service) PreviewTemplate(kind, channel string, values map[string]string) (string, error) {
	ch, err := entity.ParseChannel(channel)
	if err != nil {
		return "", errors.Join(entity.ErrBadRequest, err)
	}

	return catalog.Render(catalog.Kind(kind), ch, values)
}
