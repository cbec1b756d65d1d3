package repository

import (
	"context"

	"github.com/Black-png/trackers-api/internal/entity"
)

var (
	notificationColumns         = []string{"id", "name", "notification_type_id"}
	notificationSettingColumns  = []string{"id", "notification_id", "role_id", "channel", "enabled"}
	notificationTemplateColumns = []string{"id", "notification_id", "channel", "template"}
)

func (r *Repository) NotificationTypes(ctx context.Context) ([]entity.NotificationType, error) {
	return list[entity.NotificationType](ctx, r.db, "notification_types", nameColumns...)
}

func (r *Repository) InsertNotificationTypes(ctx context.Context, items []entity.NotificationType) error {
	return insert(ctx, r.db, "notification_types", nameColumns, items, func(v entity.NotificationType) []any {
		return []any{v.ID, v.Name}
	})
}

func (r *Repository) Notifications(ctx context.Context) ([]entity.Notification, error) {
	return list[entity.Notification](ctx, r.db, "notifications", notificationColumns...)
}

func (r *Repository) InsertNotifications(ctx context.Context, items []entity.Notification) error {
	return insert(ctx, r.db, "notifications", notificationColumns, items, func(v entity.Notification) []any {
		return []any{v.ID, v.Name, v.NotificationTypeID}
	})
}

func (r *Repository) NotificationSettings(ctx context.Context) ([]entity.NotificationSetting, error) {
	return list[entity.NotificationSetting](ctx, r.db, "notification_settings", notificationSettingColumns...)
}

func (r *Repository) InsertNotificationSettings(ctx context.Context, items []entity.NotificationSetting) error {
	return insert(ctx, r.db, "notification_settings", notificationSettingColumns, items, func(v entity.NotificationSetting) []any {
		return []any{v.ID, v.NotificationID, v.RoleID, string(v.Channel), v.Enabled}
	})
}

func (r *Repository) NotificationTemplates(ctx context.Context) ([]entity.NotificationTemplate, error) {
	return list[entity.NotificationTemplate](ctx, r.db, "notification_templates", notificationTemplateColumns...)
}

func (r *Repository) InsertNotificationTemplates(ctx context.Context, items []entity.NotificationTemplate) error {
	return insert(ctx, r.db, "notification_templates", notificationTemplateColumns, items, func(v entity.NotificationTemplate) []any {
		return []any{v.ID, v.NotificationID, string(v.Channel), v.Template}
	})
}
