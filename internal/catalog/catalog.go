package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Black-png/trackers-api/internal/entity"
)

//go:embed catalog.yaml
var raw []byte

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnknownType  = errors.New("unknown parent type")
	ErrEmptyKey     = errors.New("empty key")
)

type Catalog struct {
	DowntimeReasons   []entity.DowntimeReason `yaml:"downtime_reasons"`
	Maintenance       Maintenance             `yaml:"maintenance"`
	EquipmentTypes    []EquipmentType         `yaml:"equipment_types"`
	EquipmentSubTypes []EquipmentSubType      `yaml:"equipment_sub_types"`
	InspectionSteps   []string                `yaml:"inspection_steps"`
	NotificationTypes []NotificationType      `yaml:"notification_types"`
}

type Maintenance struct {
	Priorities []string `yaml:"priorities"`
	Statuses   []string `yaml:"statuses"`
	Types      []string `yaml:"types"`
	Reasons    []string `yaml:"reasons"`
}

type Capabilities struct {
	ComputeDowntime bool `yaml:"compute_downtime"`
	ComputeOEE      bool `yaml:"compute_oee"`
	ComputeEnergy   bool `yaml:"compute_energy"`
}

type EquipmentType struct {
	Name         string `yaml:"name"`
	Capabilities `yaml:",inline"`
}

type EquipmentSubType struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Capabilities `yaml:",inline"`
}

type NotificationType struct {
	Name          string   `yaml:"name"`
	Notifications []string `yaml:"notifications"`
}

// Load parses the embedded catalog.
func Load() (Catalog, error) {
	return Parse(raw)
}

func Parse(b []byte) (Catalog, error) {
	var c Catalog

	err := yaml.Unmarshal(b, &c)
	if err != nil {
		return Catalog{}, fmt.Errorf("unmarshal catalog: %w", err)
	}

	err = c.Validate()
	if err != nil {
		return Catalog{}, err
	}

	return c, nil
}

func (c Catalog) Validate() error {
	codes := make([]string, 0, len(c.DowntimeReasons))
	for _, r := range c.DowntimeReasons {
		codes = append(codes, r.Code)
	}

	lists := []struct {
		name string
		keys []string
	}{
		{"downtime_reasons", codes},
		{"maintenance.priorities", c.Maintenance.Priorities},
		{"maintenance.statuses", c.Maintenance.Statuses},
		{"maintenance.types", c.Maintenance.Types},
		{"maintenance.reasons", c.Maintenance.Reasons},
		{"equipment_types", c.equipmentTypeNames()},
		{"equipment_sub_types", c.equipmentSubTypeNames()},
		{"inspection_steps", lower(c.InspectionSteps)},
		{"notification_types", c.notificationTypeNames()},
		{"notifications", c.NotificationNames()},
	}

	for _, l := range lists {
		err := unique(l.keys)
		if err != nil {
			return fmt.Errorf("%s: %w", l.name, err)
		}
	}

	types := make(map[string]bool, len(c.EquipmentTypes))
	for _, t := range c.EquipmentTypes {
		types[t.Name] = true
	}

	for _, st := range c.EquipmentSubTypes {
		if !types[st.Type] {
			return fmt.Errorf("equipment_sub_types %s: %w: %q", st.Name, ErrUnknownType, st.Type)
		}
	}

	err := ValidateTemplates()
	if err != nil {
		return err
	}

	for _, n := range c.NotificationNames() {
		if Template(Kind(n), entity.ChannelInApp) == "" {
			return fmt.Errorf("notification %s: %w", n, errNoInAppTemplate)
		}
	}

	return nil
}

// NotificationNames lists every notification kind across all types.
func (c Catalog) NotificationNames() []string {
	var names []string
	for _, t := range c.NotificationTypes {
		names = append(names, t.Notifications...)
	}

	return names
}

func (c Catalog) equipmentTypeNames() []string {
	names := make([]string, 0, len(c.EquipmentTypes))
	for _, t := range c.EquipmentTypes {
		names = append(names, t.Name)
	}

	return names
}

func (c Catalog) equipmentSubTypeNames() []string {
	names := make([]string, 0, len(c.EquipmentSubTypes))
	for _, t := range c.EquipmentSubTypes {
		names = append(names, t.Name)
	}

	return names
}

func (c Catalog) notificationTypeNames() []string {
	names := make([]string, 0, len(c.NotificationTypes))
	for _, t := range c.NotificationTypes {
		names = append(names, t.Name)
	}

	return names
}

func unique(keys []string) error {
	seen := make(map[string]bool, len(keys))

	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			return ErrEmptyKey
		}

		if seen[k] {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}

		seen[k] = true
	}

	return nil
}

// lower normalises names the way the seeder keys them.
func lower(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}

	return out
}
