package report

import (
	"testing"
	"time"

	"fieldops/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 9, 30, 0, 0, time.UTC)
}

func area(v float64) *float64 { return &v }

func ids(records []entity.ServiceRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}

	return out
}

func sampleRecords() []entity.ServiceRecord {
	return []entity.ServiceRecord{
		{ID: "jan01", StartTime: day(time.January, 1), ServiceType: entity.ServiceMowing, LocationCity: "Campinas", LocationArea: area(100)},
		{ID: "jan15", StartTime: day(time.January, 15), ServiceType: entity.ServiceWeeding, LocationCity: "Campinas", LocationArea: area(200)},
		{ID: "feb01", StartTime: day(time.February, 1), ServiceType: entity.ServiceMowing, LocationCity: "Santos"},
		{ID: "feb15", StartTime: day(time.February, 15), ServiceType: entity.ServiceSweeping, LocationCity: "Campinas", LocationArea: area(50)},
		{ID: "mar01", StartTime: day(time.March, 1), ServiceType: entity.ServiceMowing, LocationCity: "Santos", LocationArea: area(75)},
	}
}

func TestFilter_DateRange(t *testing.T) {
	start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)

	got := Filter(sampleRecords(), Criteria{Start: &start, End: &end})

	assert.Equal(t, []string{"feb15", "feb01", "jan15"}, ids(got))
}

func TestFilter_EndDateCoversWholeDay(t *testing.T) {
	end := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	records := []entity.ServiceRecord{
		{ID: "late", StartTime: time.Date(2024, time.February, 15, 23, 59, 0, 0, time.UTC)},
		{ID: "next", StartTime: time.Date(2024, time.February, 16, 0, 0, 0, 0, time.UTC)},
	}

	got := Filter(records, Criteria{End: &end})

	assert.Equal(t, []string{"late"}, ids(got))
}

func TestFilter_StartIsInclusive(t *testing.T) {
	start := day(time.January, 15)

	got := Filter(sampleRecords(), Criteria{Start: &start})

	assert.Equal(t, []string{"mar01", "feb15", "feb01", "jan15"}, ids(got))
}

func TestFilter_ServiceTypesAndCity(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "no restriction returns everything newest first",
			criteria: Criteria{},
			want:     []string{"mar01", "feb15", "feb01", "jan15", "jan01"},
		},
		{
			name:     "service type set",
			criteria: NewCriteria(nil, nil, []entity.ServiceType{entity.ServiceMowing, entity.ServiceSweeping}, ""),
			want:     []string{"mar01", "feb15", "feb01", "jan01"},
		},
		{
			name:     "city exact match",
			criteria: NewCriteria(nil, nil, nil, "Santos"),
			want:     []string{"mar01", "feb01"},
		},
		{
			name:     "city and type",
			criteria: NewCriteria(nil, nil, []entity.ServiceType{entity.ServiceMowing}, "Campinas"),
			want:     []string{"jan01"},
		},
		{
			name:     "city is case sensitive",
			criteria: NewCriteria(nil, nil, nil, "santos"),
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(sampleRecords(), tt.criteria)))
		})
	}
}

func TestCriteria_ForUser(t *testing.T) {
	santos := "Santos"

	fiscal := entity.User{Role: entity.RoleFiscal, AssignedCity: &santos}
	c := NewCriteria(nil, nil, nil, "Campinas").ForUser(fiscal)
	require.NotNil(t, c.City)
	assert.Equal(t, "Santos", *c.City)

	admin := entity.User{Role: entity.RoleAdmin}
	c = NewCriteria(nil, nil, nil, "Campinas").ForUser(admin)
	require.NotNil(t, c.City)
	assert.Equal(t, "Campinas", *c.City)

	c = Criteria{}.ForUser(admin)
	assert.Nil(t, c.City)
}

func TestSelection(t *testing.T) {
	records := Filter(sampleRecords(), Criteria{})
	sel := NewSelection(records)

	assert.Equal(t, 0.0, sel.TotalArea())
	assert.False(t, sel.AllSelected())

	assert.True(t, sel.Toggle("jan15"))
	assert.True(t, sel.Toggle("feb01"))
	assert.False(t, sel.Toggle("unknown"))
	assert.Equal(t, 200.0, sel.TotalArea(), "missing area counts as zero")

	assert.False(t, sel.Toggle("jan15"))
	assert.Equal(t, 0.0, sel.TotalArea())

	sel.ToggleAll()
	assert.True(t, sel.AllSelected())
	assert.Equal(t, 425.0, sel.TotalArea())
	assert.Equal(t, ids(records), ids(sel.Records()))

	sel.ToggleAll()
	assert.Empty(t, sel.Records())
}

func TestGoalProgress(t *testing.T) {
	month := entity.YearMonth{Year: 2024, Month: time.January}

	tests := []struct {
		name        string
		goal        entity.Goal
		records     []entity.ServiceRecord
		wantReal    float64
		wantPercent float64
	}{
		{
			name:        "clamped at 100",
			goal:        entity.Goal{City: "Campinas", Month: month, TargetArea: 100},
			records:     []entity.ServiceRecord{{LocationCity: "Campinas", StartTime: day(time.January, 3), LocationArea: area(150)}},
			wantReal:    150,
			wantPercent: 100,
		},
		{
			name: "partial progress ignores other cities and months",
			goal: entity.Goal{City: "Campinas", Month: month, TargetArea: 400},
			records: []entity.ServiceRecord{
				{LocationCity: "Campinas", StartTime: day(time.January, 3), LocationArea: area(100)},
				{LocationCity: "Campinas", StartTime: day(time.February, 1), LocationArea: area(100)},
				{LocationCity: "Santos", StartTime: day(time.January, 3), LocationArea: area(100)},
				{LocationCity: "Campinas", StartTime: day(time.January, 31)},
			},
			wantReal:    100,
			wantPercent: 25,
		},
		{
			name:        "zero target yields zero",
			goal:        entity.Goal{City: "Campinas", Month: month, TargetArea: 0},
			records:     []entity.ServiceRecord{{LocationCity: "Campinas", StartTime: day(time.January, 3), LocationArea: area(10)}},
			wantReal:    10,
			wantPercent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GoalProgress(tt.goal, tt.records)
			assert.Equal(t, tt.wantReal, p.Realized)
			assert.Equal(t, tt.wantPercent, p.Percent)
			assert.Equal(t, tt.goal.TargetArea, p.Target)
		})
	}
}

func TestPercent_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, Percent(-50, 100))
	assert.Equal(t, 50.0, Percent(50, 100))
	assert.Equal(t, 0.0, Percent(50, -1))
	assert.True(t, Progress{Target: 10, Percent: 100}.Reached())
	assert.False(t, Progress{Target: 0, Percent: 0}.Reached())
}
