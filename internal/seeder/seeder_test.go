package seeder_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/Black-png/trackers-api/internal/catalog"
	"github.com/Black-png/trackers-api/internal/entity"
	"github.com/Black-png/trackers-api/internal/seeder"
	"github.com/Black-png/trackers-api/pkg/logger"
)

var errBoom = errors.New("boom")

type recMetrics struct {
	steps []string
	runs  []error
}

func (m *recMetrics) ObserveStep(step string, _ int, _ time.Duration) {
	m.steps = append(m.steps, step)
}

func (m *recMetrics) ObserveRun(err error) {
	m.runs = append(m.runs, err)
}

func newSeeder(t *testing.T, st seeder.Store, m seeder.Metrics) *seeder.Seeder {
	t.Helper()

	c, err := catalog.Load()
	require.NoError(t, err)

	return seeder.New(st, c, m, logger.NewWithWriter(io.Discard, slog.LevelDebug))
}

func packageGrantCount() int {
	n := 0
	for _, tier := range catalog.Tiers() {
		n += len(tier.Operations)
	}

	return n
}

func TestEnsureSeeded_EmptyStore(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	m := &recMetrics{}

	report, err := newSeeder(t, st, m).EnsureSeeded(context.Background())
	require.NoError(t, err)

	require.Len(t, st.roles.rows, 4)
	require.Len(t, st.areas.rows, 24)
	require.Len(t, st.grants.rows, 4*24)
	require.Len(t, st.downtime.rows, 10)
	require.Len(t, st.priorities.rows, 4)
	require.Len(t, st.statuses.rows, 5)
	require.Len(t, st.mTypes.rows, 4)
	require.Len(t, st.mReasons.rows, 6)
	require.Len(t, st.eqTypes.rows, 3)
	require.Len(t, st.eqSubTypes.rows, 6)
	require.Len(t, st.steps.rows, 3*5)
	require.Len(t, st.packages.rows, 8)
	require.Len(t, st.operations.rows, 15)
	require.Len(t, st.packageOps.rows, packageGrantCount())
	require.Len(t, st.notifTypes.rows, 4)
	require.Len(t, st.notifications.rows, 8)
	require.Len(t, st.settings.rows, 8*4*2)
	require.Len(t, st.templates.rows, 15)

	require.Len(t, report.Steps, 19)
	require.Equal(t, seeder.StepRoles, report.Steps[0].Step)
	require.Equal(t, seeder.StepInspectionSteps, report.Steps[18].Step)
	require.Len(t, m.steps, 19)
	require.Equal(t, []error{nil}, m.runs)
	require.False(t, report.FinishedAt.Before(report.StartedAt))
}

func TestEnsureSeeded_Idempotent(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	s := newSeeder(t, st, nil)

	first, err := s.EnsureSeeded(context.Background())
	require.NoError(t, err)
	require.Positive(t, first.Inserted())

	calls := st.insertCalls()

	second, err := s.EnsureSeeded(context.Background())
	require.NoError(t, err)
	require.Zero(t, second.Inserted())
	require.Equal(t, calls, st.insertCalls())
}

func TestEnsureSeeded_ParentFactoryAddsGlobalViewer(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	st.hasParent = true

	_, err := newSeeder(t, st, nil).EnsureSeeded(context.Background())
	require.NoError(t, err)

	require.Len(t, st.roles.rows, 5)
	require.Len(t, st.grants.rows, 5*24)

	var globalViewer, globalDashboard uuid.UUID

	for _, r := range st.roles.rows {
		if r.Name == entity.RoleGlobalViewer {
			globalViewer = r.ID
		}
	}

	for _, a := range st.areas.rows {
		if a.Name == entity.AreaGlobalDashboard {
			globalDashboard = a.ID
		}
	}

	for _, g := range st.grants.rows {
		if g.AreaID == globalDashboard {
			require.Equal(t, g.RoleID == globalViewer, g.CanView)
		}
	}
}

func TestEnsureSeeded_KeepsExistingRows(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	uc := entity.DowntimeReason{ID: uuid.Must(uuid.NewV4()), Code: "UC", Description: "Waiting for classification"}
	st.downtime.rows = []entity.DowntimeReason{uc}

	_, err := newSeeder(t, st, nil).EnsureSeeded(context.Background())
	require.NoError(t, err)

	require.Len(t, st.downtime.rows, 10)
	require.Equal(t, uc, st.downtime.rows[0])

	codes := 0

	for _, r := range st.downtime.rows {
		if r.Code == "UC" {
			codes++
		}
	}

	require.Equal(t, 1, codes)
}

func TestEnsureSeeded_PackageOperationsOnlyWhenEmpty(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	custom := entity.PackageOperation{
		ID:          uuid.Must(uuid.NewV4()),
		PackageID:   uuid.Must(uuid.NewV4()),
		OperationID: uuid.Must(uuid.NewV4()),
	}
	st.packageOps.rows = []entity.PackageOperation{custom}

	report, err := newSeeder(t, st, nil).EnsureSeeded(context.Background())
	require.NoError(t, err)

	require.Equal(t, []entity.PackageOperation{custom}, st.packageOps.rows)
	require.Zero(t, st.packageOps.inserts)
	require.Len(t, st.packages.rows, 8)

	for _, r := range report.Steps {
		if r.Step == seeder.StepPackageOperations {
			require.Zero(t, r.Inserted)
		}
	}
}

func TestEnsureSeeded_PackageTiers(t *testing.T) {
	t.Parallel()

	st := newMemStore()

	_, err := newSeeder(t, st, nil).EnsureSeeded(context.Background())
	require.NoError(t, err)

	opNames := make(map[uuid.UUID]string)
	for _, o := range st.operations.rows {
		opNames[o.ID] = o.Name
	}

	granted := make(map[uuid.UUID][]string)
	for _, po := range st.packageOps.rows {
		granted[po.PackageID] = append(granted[po.PackageID], opNames[po.OperationID])
	}

	for _, p := range st.packages.rows {
		for _, tier := range catalog.Tiers() {
			if tier.Name == p.Name {
				require.Equal(t, tier.Level, p.Level)
				require.ElementsMatch(t, tier.Operations, granted[p.ID], p.Name)
			}
		}
	}
}

func TestEnsureSeeded_Templates(t *testing.T) {
	t.Parallel()

	st := newMemStore()

	_, err := newSeeder(t, st, nil).EnsureSeeded(context.Background())
	require.NoError(t, err)

	byID := make(map[uuid.UUID]string)
	for _, n := range st.notifications.rows {
		byID[n.ID] = n.Name
	}

	pairs := make(map[string]bool)

	for _, tpl := range st.templates.rows {
		name := byID[tpl.NotificationID]
		require.NotEmpty(t, name)
		require.Equal(t, catalog.Template(catalog.Kind(name), tpl.Channel), tpl.Template)

		pairs[name+"/"+string(tpl.Channel)] = true
	}

	require.True(t, pairs[string(catalog.KindJobCompleted)+"/"+string(entity.ChannelInApp)])
	require.False(t, pairs[string(catalog.KindJobCompleted)+"/"+string(entity.ChannelEmail)])
}

func TestEnsureSeeded_NotificationSettingDefaults(t *testing.T) {
	t.Parallel()

	st := newMemStore()

	_, err := newSeeder(t, st, nil).EnsureSeeded(context.Background())
	require.NoError(t, err)

	roleNames := make(map[uuid.UUID]string)
	for _, r := range st.roles.rows {
		roleNames[r.ID] = r.Name
	}

	for _, s := range st.settings.rows {
		require.Equal(t, catalog.DefaultSettingEnabled(roleNames[s.RoleID], s.Channel), s.Enabled)
	}
}

func TestEnsureSeeded_InspectionStepsPerType(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	robot := entity.EquipmentType{ID: uuid.Must(uuid.NewV4()), Name: "Robot"}
	st.eqTypes.rows = []entity.EquipmentType{robot}
	st.steps.rows = []entity.Step{
		{ID: uuid.Must(uuid.NewV4()), EquipmentTypeID: robot.ID, Name: "CHECK LUBRICATION LEVELS", Position: 1},
	}

	_, err := newSeeder(t, st, nil).EnsureSeeded(context.Background())
	require.NoError(t, err)

	perType := make(map[uuid.UUID]map[string]int)

	for _, s := range st.steps.rows {
		if perType[s.EquipmentTypeID] == nil {
			perType[s.EquipmentTypeID] = make(map[string]int)
		}

		perType[s.EquipmentTypeID][strings.ToLower(s.Name)]++
	}

	require.Len(t, st.eqTypes.rows, 4)
	require.Len(t, perType, 4)

	for typeID, names := range perType {
		require.Len(t, names, 5, typeID.String())

		for name, n := range names {
			require.Equal(t, 1, n, name)
		}
	}
}

func TestEnsureSeeded_StoreErrorAbortsRun(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	st.failOn["InsertOperations"] = errBoom
	m := &recMetrics{}
	s := newSeeder(t, st, m)

	report, err := s.EnsureSeeded(context.Background())
	require.ErrorIs(t, err, errBoom)

	var stepErr *seeder.StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, seeder.StepOperations, stepErr.Step)

	require.Len(t, report.Steps, 12)
	require.Empty(t, st.notifTypes.rows)
	require.Empty(t, st.packageOps.rows)
	require.Len(t, m.runs, 1)
	require.Error(t, m.runs[0])

	delete(st.failOn, "InsertOperations")

	report, err = s.EnsureSeeded(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Steps, 19)
	require.Len(t, st.operations.rows, 15)
	require.Len(t, st.packages.rows, 8)
	require.Len(t, st.packageOps.rows, packageGrantCount())
}

func TestEnsureSeeded_LoadErrorNamesStep(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	st.failOn["HasParentFactory"] = errBoom

	_, err := newSeeder(t, st, nil).EnsureSeeded(context.Background())
	require.ErrorIs(t, err, errBoom)
	require.Contains(t, err.Error(), "seed roles")
	require.Empty(t, st.roles.rows)
}

func TestEnsureSeeded_MissingReference(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	st.drop["InsertOperations"] = true

	_, err := newSeeder(t, st, nil).EnsureSeeded(context.Background())
	require.ErrorIs(t, err, entity.ErrMissingReference)

	var stepErr *seeder.StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, seeder.StepPackageOperations, stepErr.Step)
	require.Equal(t, "operation "+entity.OperationOEE, stepErr.Key)
	require.Empty(t, st.packageOps.rows)
}
