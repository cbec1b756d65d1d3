package entity

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelEmail Channel = "email"
)

var Channels = []Channel{ChannelInApp, ChannelEmail}

func ParseChannel(s string) (Channel, error) {
	for _, c := range Channels {
		if string(c) == s {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownChannel, s)
}

type NotificationType struct {
	ID   uuid.UUID `db:"id"   json:"id"`
	Name string    `db:"name" json:"name"`
}

// Notification is one notification kind, e.g. DowntimeStarted.
type Notification struct {
	ID                 uuid.UUID `db:"id"                   json:"id"`
	Name               string    `db:"name"                 json:"name"`
	NotificationTypeID uuid.UUID `db:"notification_type_id" json:"notification_type_id"`
}

type NotificationSetting struct {
	ID             uuid.UUID `db:"id"              json:"id"`
	NotificationID uuid.UUID `db:"notification_id" json:"notification_id"`
	RoleID         uuid.UUID `db:"role_id"         json:"role_id"`
	Channel        Channel   `db:"channel"         json:"channel"`
	Enabled        bool      `db:"enabled"         json:"enabled"`
}

type NotificationTemplate struct {
	ID             uuid.UUID `db:"id"              json:"id"`
	NotificationID uuid.UUID `db:"notification_id" json:"notification_id"`
	Channel        Channel   `db:"channel"         json:"channel"`
	Template       string    `db:"template"        json:"template"`
}
