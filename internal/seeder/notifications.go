package seeder

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Black-png/trackers-api/internal/catalog"
	"github.com/Black-png/trackers-api/internal/entity"
)

func (s *Seeder) seedNotificationTypes(ctx context.Context) (int, error) {
	desired := make([]entity.NotificationType, 0, len(s.catalog.NotificationTypes))

	for _, t := range s.catalog.NotificationTypes {
		desired = append(desired, entity.NotificationType{ID: s.newID(), Name: t.Name})
	}

	return reconcile(ctx, s.store.NotificationTypes, s.store.InsertNotificationTypes, desired,
		func(t entity.NotificationType) string { return t.Name })
}

func (s *Seeder) seedNotifications(ctx context.Context) (int, error) {
	types, err := s.store.NotificationTypes(ctx)
	if err != nil {
		return 0, err
	}

	typeIDs := make(map[string]uuid.UUID, len(types))
	for _, t := range types {
		typeIDs[t.Name] = t.ID
	}

	var desired []entity.Notification

	for _, t := range s.catalog.NotificationTypes {
		typeID, ok := typeIDs[t.Name]
		if !ok {
			return 0, missingRef("notification type " + t.Name)
		}

		for _, name := range t.Notifications {
			desired = append(desired, entity.Notification{ID: s.newID(), Name: name, NotificationTypeID: typeID})
		}
	}

	return reconcile(ctx, s.store.Notifications, s.store.InsertNotifications, desired,
		func(n entity.Notification) string { return n.Name })
}

type settingKey struct {
	notificationID uuid.UUID
	roleID         uuid.UUID
	channel        entity.Channel
}

func (s *Seeder) seedNotificationSettings(ctx context.Context) (int, error) {
	notifications, err := s.store.Notifications(ctx)
	if err != nil {
		return 0, err
	}

	roles, err := s.store.Roles(ctx)
	if err != nil {
		return 0, err
	}

	desired := make([]entity.NotificationSetting, 0, len(notifications)*len(roles)*len(entity.Channels))

	for _, n := range notifications {
		for _, r := range roles {
			for _, ch := range entity.Channels {
				desired = append(desired, entity.NotificationSetting{
					ID:             s.newID(),
					NotificationID: n.ID,
					RoleID:         r.ID,
					Channel:        ch,
					Enabled:        catalog.DefaultSettingEnabled(r.Name, ch),
				})
			}
		}
	}

	return reconcile(ctx, s.store.NotificationSettings, s.store.InsertNotificationSettings, desired,
		func(v entity.NotificationSetting) settingKey {
			return settingKey{notificationID: v.NotificationID, roleID: v.RoleID, channel: v.Channel}
		})
}

type templateKey struct {
	notificationID uuid.UUID
	channel        entity.Channel
}

// seedNotificationTemplates stores a template for every notification and
// channel that has one. Pairs without a template are skipped.
func (s *Seeder) seedNotificationTemplates(ctx context.Context) (int, error) {
	notifications, err := s.store.Notifications(ctx)
	if err != nil {
		return 0, err
	}

	var desired []entity.NotificationTemplate

	for _, n := range notifications {
		for _, ch := range entity.Channels {
			text := catalog.Template(catalog.Kind(n.Name), ch)
			if text == "" {
				continue
			}

			desired = append(desired, entity.NotificationTemplate{
				ID:             s.newID(),
				NotificationID: n.ID,
				Channel:        ch,
				Template:       text,
			})
		}
	}

	return reconcile(ctx, s.store.NotificationTemplates, s.store.InsertNotificationTemplates, desired,
		func(v entity.NotificationTemplate) templateKey {
			return templateKey{notificationID: v.NotificationID, channel: v.Channel}
		})
}
