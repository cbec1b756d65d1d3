package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Black-png/trackers-api/internal/entity"
)

// Kind names a notification, matching Notification.Name in the store.
type Kind string

const (
	KindDowntimeStarted      Kind = "DowntimeStarted"
	KindDowntimeUnclassified Kind = "DowntimeUnclassified"
	KindMaintenanceCreated   Kind = "MaintenanceCreated"
	KindMaintenanceAssigned  Kind = "MaintenanceAssigned"
	KindMaintenanceOverdue   Kind = "MaintenanceOverdue"
	KindOEEBelowTarget       Kind = "OEEBelowTarget"
	KindJobCompleted         Kind = "JobCompleted"
	KindInspectionFailed     Kind = "InspectionFailed"
)

const (
	PhEquipment  = "{{EquipmentName}}"
	PhReason     = "{{Reason}}"
	PhStartedAt  = "{{StartedAt}}"
	PhDuration   = "{{Duration}}"
	PhTask       = "{{TaskTitle}}"
	PhPriority   = "{{Priority}}"
	PhAssignee   = "{{AssigneeName}}"
	PhDueDate    = "{{DueDate}}"
	PhOEE        = "{{OEE}}"
	PhTarget     = "{{Target}}"
	PhJob        = "{{JobName}}"
	PhQuantity   = "{{Quantity}}"
	PhStep       = "{{StepName}}"
	PhInspector  = "{{InspectorName}}"
	PhFactory    = "{{FactoryName}}"
	PhDetailsURL = "{{DetailsUrl}}"
)

var errNoInAppTemplate = errors.New("no in-app template")

type templateKey struct {
	kind    Kind
	channel entity.Channel
}

// placeholders every template of a kind must carry, on every channel.
var placeholders = map[Kind][]string{
	KindDowntimeStarted:      {PhEquipment, PhReason, PhStartedAt},
	KindDowntimeUnclassified: {PhEquipment, PhStartedAt, PhDuration},
	KindMaintenanceCreated:   {PhEquipment, PhTask, PhPriority},
	KindMaintenanceAssigned:  {PhTask, PhAssignee, PhDueDate},
	KindMaintenanceOverdue:   {PhEquipment, PhTask, PhDueDate},
	KindOEEBelowTarget:       {PhEquipment, PhOEE, PhTarget},
	KindJobCompleted:         {PhJob, PhEquipment, PhQuantity},
	KindInspectionFailed:     {PhEquipment, PhStep, PhInspector},
}

var templates = map[templateKey]string{
	{KindDowntimeStarted, entity.ChannelInApp}: "{{EquipmentName}} stopped at {{StartedAt}}: {{Reason}}",
	{KindDowntimeStarted, entity.ChannelEmail}: email(
		"Downtime started on {{EquipmentName}}",
		"<p><b>{{EquipmentName}}</b> stopped at {{StartedAt}}.</p><p>Reason: {{Reason}}</p>",
	),

	{KindDowntimeUnclassified, entity.ChannelInApp}: "{{EquipmentName}} has an unclassified stop since {{StartedAt}} ({{Duration}})",
	{KindDowntimeUnclassified, entity.ChannelEmail}: email(
		"Unclassified downtime on {{EquipmentName}}",
		"<p><b>{{EquipmentName}}</b> has been stopped since {{StartedAt}} ({{Duration}}) without a reason.</p>"+
			"<p>Please classify the stop.</p>",
	),

	{KindMaintenanceCreated, entity.ChannelInApp}: "New {{Priority}} maintenance task on {{EquipmentName}}: {{TaskTitle}}",
	{KindMaintenanceCreated, entity.ChannelEmail}: email(
		"New maintenance task: {{TaskTitle}}",
		"<p>A <b>{{Priority}}</b> priority task was created for <b>{{EquipmentName}}</b>.</p><p>{{TaskTitle}}</p>",
	),

	{KindMaintenanceAssigned, entity.ChannelInApp}: "{{TaskTitle}} was assigned to {{AssigneeName}}, due {{DueDate}}",
	{KindMaintenanceAssigned, entity.ChannelEmail}: email(
		"Maintenance task assigned: {{TaskTitle}}",
		"<p>Hello {{AssigneeName}},</p><p>the task <b>{{TaskTitle}}</b> was assigned to you and is due {{DueDate}}.</p>",
	),

	{KindMaintenanceOverdue, entity.ChannelInApp}: "{{TaskTitle}} on {{EquipmentName}} is overdue since {{DueDate}}",
	{KindMaintenanceOverdue, entity.ChannelEmail}: email(
		"Overdue maintenance on {{EquipmentName}}",
		"<p>The task <b>{{TaskTitle}}</b> on <b>{{EquipmentName}}</b> was due {{DueDate}} and is still open.</p>",
	),

	{KindOEEBelowTarget, entity.ChannelInApp}: "OEE of {{EquipmentName}} is {{OEE}}, below target {{Target}}",
	{KindOEEBelowTarget, entity.ChannelEmail}: email(
		"OEE below target on {{EquipmentName}}",
		"<p>The OEE of <b>{{EquipmentName}}</b> dropped to <b>{{OEE}}</b>.</p><p>Target: {{Target}}</p>",
	),

	{KindJobCompleted, entity.ChannelInApp}: "{{JobName}} completed on {{EquipmentName}}: {{Quantity}} parts",

	{KindInspectionFailed, entity.ChannelInApp}: "Inspection of {{EquipmentName}} failed at '{{StepName}}' ({{InspectorName}})",
	{KindInspectionFailed, entity.ChannelEmail}: email(
		"Inspection failed on {{EquipmentName}}",
		"<p>{{InspectorName}} reported a failed step on <b>{{EquipmentName}}</b>:</p><p>{{StepName}}</p>",
	),
}

func email(title, body string) string {
	return "<html><body style=\"font-family:Arial,sans-serif\">" +
		"<h2>" + title + "</h2>" +
		body +
		"<p><a href=\"" + PhDetailsURL + "\">Open in " + PhFactory + "</a></p>" +
		"</body></html>"
}

// Template returns the template text for a notification on a channel.
// An empty string means the pair is not seeded.
func Template(kind Kind, channel entity.Channel) string {
	return templates[templateKey{kind: kind, channel: channel}]
}

// Placeholders returns the tokens every template of kind contains.
func Placeholders(kind Kind) []string {
	return placeholders[kind]
}

// Kinds returns every kind with at least one template, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(placeholders))
	for k := range placeholders {
		kinds = append(kinds, k)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// ValidateTemplates checks the table: every template belongs to a known
// kind and carries all of that kind's placeholders.
func ValidateTemplates() error {
	for key, text := range templates {
		required, ok := placeholders[key.kind]
		if !ok {
			return fmt.Errorf("%w: %s", entity.ErrUnknownNotification, key.kind)
		}

		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("template %s/%s is blank", key.kind, key.channel)
		}

		for _, ph := range required {
			if !strings.Contains(text, ph) {
				return fmt.Errorf("template %s/%s: missing placeholder %s", key.kind, key.channel, ph)
			}
		}
	}

	for kind := range placeholders {
		if Template(kind, entity.ChannelInApp) == "" {
			return fmt.Errorf("%s: %w", kind, errNoInAppTemplate)
		}
	}

	return nil
}

// Render substitutes values into the template of kind on channel.
// Unknown tokens are left as they are.
func Render(kind Kind, channel entity.Channel, values map[string]string) (string, error) {
	text := Template(kind, channel)
	if text == "" {
		return "", fmt.Errorf("%w: %s/%s", entity.ErrNotFound, kind, channel)
	}

	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{{"+k+"}}", v)
	}

	return strings.NewReplacer(pairs...).Replace(text), nil
}
