package response

import (
	"testing"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Keywords(t *testing.T) {
	cases := map[string]models.ResponseKind{
		"safe":          models.ResponseSafe,
		"  SAFE \n":     models.ResponseSafe,
		"NEED_HELP":     models.ResponseNeedHelp,
		"need help":     models.ResponseNeedHelp,
		"Need   Help":   models.ResponseNeedHelp,
		"help":          models.ResponseNeedHelp,
		"Evacuating":    models.ResponseEvacuating,
		"EVACUATION":    models.ResponseEvacuating,
		"ＳＡＦＥ":          models.ResponseSafe,
		"évacuating":    models.ResponseEvacuating,
		"I'm trapped":   models.ResponseOther,
		"safe now":      models.ResponseOther,
		"":              models.ResponseOther,
		"#":             models.ResponseOther,
		"#AB12CD34":     models.ResponseOther,
		"#AB12CD34 ok?": models.ResponseOther,
	}
	for in, want := range cases {
		assert.Equal(t, want, Classify(in).Kind, "input %q", in)
	}
}

func TestClassify_NoteHandling(t *testing.T) {
	assert.Equal(t, Classification{Kind: models.ResponseSafe}, Classify("safe"))

	got := Classify("#AB12CD34 evacuating")
	assert.Equal(t, models.ResponseEvacuating, got.Kind)
	assert.Equal(t, "AB12CD34", got.Note)

	got = Classify("#ab12cd34 need help")
	assert.Equal(t, models.ResponseNeedHelp, got.Kind)
	assert.Equal(t, "AB12CD34", got.Note)

	got = Classify("I'm trapped")
	assert.Equal(t, models.ResponseOther, got.Kind)
	assert.Equal(t, "I'm trapped", got.Note)

	got = Classify("#AB12CD34 smoke is thick")
	assert.Equal(t, models.ResponseOther, got.Kind)
	assert.Equal(t, "#AB12CD34 smoke is thick", got.Note)
}

func TestExtractRef(t *testing.T) {
	assert.Equal(t, "AB12CD34", ExtractRef("#ab12cd34 safe"))
	assert.Equal(t, "AB12CD34", ExtractRef("we are fine #AB12CD34"))
	assert.Empty(t, ExtractRef("#1 safe"))
	assert.Empty(t, ExtractRef("no reference"))
}

func TestMatchesRef(t *testing.T) {
	id := uuid.MustParse("ab12cd34-0000-0000-0000-000000000001")

	assert.True(t, MatchesRef(id, "AB12CD34"))
	assert.True(t, MatchesRef(id, "ab12"))
	assert.False(t, MatchesRef(id, "CD34"))
	assert.False(t, MatchesRef(id, ""))
}

func TestResolveTargetIncident(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	older := models.Incident{ID: uuid.MustParse("ab12cd34-0000-0000-0000-000000000001"), CreatedAt: now.Add(-3 * time.Hour)}
	middle := models.Incident{ID: uuid.MustParse("cd34ef56-0000-0000-0000-000000000002"), CreatedAt: now.Add(-2 * time.Hour)}
	newer := models.Incident{ID: uuid.MustParse("ef560000-0000-0000-0000-000000000003"), CreatedAt: now.Add(-1 * time.Hour)}
	incidents := []models.Incident{older, newer, middle}

	broadcasts := []models.AlertBroadcast{
		{IncidentID: older.ID, Recipients: []string{"+254700000001", "+254700000002"}, SentAt: now.Add(-170 * time.Minute)},
		{IncidentID: middle.ID, Recipients: []string{"+254700000001"}, SentAt: now.Add(-100 * time.Minute)},
	}

	t.Run("latest broadcast to sender wins", func(t *testing.T) {
		id, ok := ResolveTargetIncident("+254700000001", "SAFE", broadcasts, incidents)
		assert.True(t, ok)
		assert.Equal(t, middle.ID, id)

		id, ok = ResolveTargetIncident("+254700000002", "#EF56 SAFE", broadcasts, incidents)
		assert.True(t, ok)
		assert.Equal(t, older.ID, id)
	})

	t.Run("reference prefix", func(t *testing.T) {
		id, ok := ResolveTargetIncident("+254799999999", "#ab12cd34 safe", broadcasts, incidents)
		assert.True(t, ok)
		assert.Equal(t, older.ID, id)
	})

	t.Run("reference shorter than four characters is ignored", func(t *testing.T) {
		id, ok := ResolveTargetIncident("+254799999999", "#ab1 safe", broadcasts, incidents)
		assert.True(t, ok)
		assert.Equal(t, newer.ID, id)
	})

	t.Run("falls back to newest incident", func(t *testing.T) {
		id, ok := ResolveTargetIncident("+254799999999", "SAFE", broadcasts, incidents)
		assert.True(t, ok)
		assert.Equal(t, newer.ID, id)

		id, ok = ResolveTargetIncident("+254799999999", "#FFFF0000 safe", nil, incidents)
		assert.True(t, ok)
		assert.Equal(t, newer.ID, id)
	})

	t.Run("nothing known", func(t *testing.T) {
		id, ok := ResolveTargetIncident("+254799999999", "SAFE", nil, nil)
		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, id)
	})
}
