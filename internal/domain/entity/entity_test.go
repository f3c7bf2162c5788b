package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.February}, ym)
	assert.Equal(t, "2024-02", ym.String())

	start, end := ym.Interval(time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), end)

	assert.True(t, ym.Contains(time.Date(2024, time.February, 29, 23, 0, 0, 0, time.UTC)))
	assert.False(t, ym.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))

	_, err = ParseYearMonth("2024/02")
	assert.Error(t, err)
}

func TestGoal_JSON(t *testing.T) {
	raw := []byte(`{"id":"6f1c1c9e-8a43-4c51-9f0e-2b1b8b1d9a10","city":"Santos","month":"2024-05","targetArea":1200}`)

	var g Goal
	require.NoError(t, json.Unmarshal(raw, &g))
	assert.Equal(t, YearMonth{Year: 2024, Month: time.May}, g.Month)

	out, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}

func TestRole_Views(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleOperator, RoleFiscal} {
		views := role.Views()
		assert.NotEmpty(t, views, role)
		for _, v := range views {
			assert.Contains(t, AllViews(), v)
		}
	}

	assert.True(t, RoleOperator.CanAccess(ViewCapture))
	assert.False(t, RoleFiscal.CanAccess(ViewCapture))
	assert.False(t, RoleAdmin.CanAccess(ViewCapture))
	assert.True(t, RoleAdmin.CanAccess(ViewBackup))
	assert.Nil(t, Role("GUEST").Views())
}

func TestServiceRecord_Area(t *testing.T) {
	assert.Equal(t, 0.0, ServiceRecord{}.Area())

	a := 42.5
	assert.Equal(t, 42.5, ServiceRecord{LocationArea: &a}.Area())
}

func TestCities(t *testing.T) {
	locs := []Location{{City: "Santos"}, {City: "Campinas"}, {City: "Santos"}, {City: ""}}
	assert.Equal(t, []string{"Santos", "Campinas"}, Cities(locs))
}

func TestParsePhase(t *testing.T) {
	p, ok := ParsePhase("after")
	assert.True(t, ok)
	assert.Equal(t, PhaseAfter, p)

	_, ok = ParsePhase("during")
	assert.False(t, ok)
}
