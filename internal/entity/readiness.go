package entity

import "time"

type Readiness struct {
	MigrationsApplied bool       `json:"migrations_applied"`
	Seeded            bool       `json:"seeded"`
	LastSeedAt        *time.Time `json:"last_seed_at,omitempty"`
	Inserted          int        `json:"inserted"`
	LastError         string     `json:"last_error,omitempty"`
}

func (r Readiness) Ready() bool {
	return r.MigrationsApplied && r.Seeded
}

// TemplateView is a stored template joined with its notification name.
type TemplateView struct {
	Notification string  `json:"notification"`
	Channel      Channel `json:"channel"`
	Template     string  `json:"template"`
}
