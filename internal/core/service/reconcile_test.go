package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

func firstStageEvent() domain.EventSuggestion {
	return domain.EventSuggestion{
		Emails:      []string{"a@x.com", "b@x.com"},
		Title:       "Weekly sync",
		Description: "Status update",
		Date:        "2025-06-02",
		StartTime:   "10:00",
		Duration:    30,
	}
}

func TestReconcileEvent_ValidVerdict(t *testing.T) {
	first := firstStageEvent()

	assert.Equal(t, first, reconcileEvent("```valid```", first))
}

func TestReconcileEvent_SingleFieldPatch(t *testing.T) {
	first := firstStageEvent()

	merged := reconcileEvent("```json\n{\"title\": \"Quarterly review\"}\n```", first)

	assert.Equal(t, "Quarterly review", merged.Title)
	// Untouched fields survive the merge.
	assert.Equal(t, first.Description, merged.Description)
	assert.Equal(t, first.Emails, merged.Emails)
	assert.Equal(t, first.Duration, merged.Duration)
}

func TestReconcileEvent_TruncatedPatchKeepsFirstStage(t *testing.T) {
	first := firstStageEvent()

	merged := reconcileEvent("```json\n{\"title\": \"Quart", first)

	assert.Equal(t, first, merged)
}

func TestReconcileEvent_ProseVerdictKeepsFirstStage(t *testing.T) {
	first := firstStageEvent()

	merged := reconcileEvent("The proposed event looks mostly fine to me.", first)

	assert.Equal(t, first, merged)
}

func TestReconcileEvent_WrongFieldTypeKeepsFirstStageValue(t *testing.T) {
	first := firstStageEvent()

	merged := reconcileEvent("```json\n{\"title\": 42, \"date\": \"2025-06-03\"}\n```", first)

	assert.Equal(t, first.Title, merged.Title)
	assert.Equal(t, "2025-06-03", merged.Date)
}

func TestNormalizeDuration(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		prior int
		want  int
	}{
		{"plain number", `45`, 30, 45},
		{"quoted with unit", `"45 minutes"`, 30, 45},
		{"no digits falls back to prior", `"about an hour"`, 30, 30},
		{"out of range falls back to prior", `9999`, 30, 30},
		{"zero falls back to prior", `0`, 30, 30},
		{"prior itself invalid falls back to default", `"none"`, 0, domain.DefaultEventDurationMinutes},
		{"upper bound accepted", `1440`, 30, 1440},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeDuration(json.RawMessage(tc.raw), tc.prior))
		})
	}
}

func TestNormalizeDuration_AbsentKeepsPrior(t *testing.T) {
	assert.Equal(t, 30, normalizeDuration(nil, 30))
	assert.Equal(t, domain.DefaultEventDurationMinutes, normalizeDuration(nil, -5))
}

func TestReconcileEvent_DurationPatch(t *testing.T) {
	first := firstStageEvent()

	merged := reconcileEvent("```json\n{\"duration\": \"90 min\"}\n```", first)
	assert.Equal(t, 90, merged.Duration)

	merged = reconcileEvent("```json\n{\"duration\": \"unknown\"}\n```", first)
	assert.Equal(t, first.Duration, merged.Duration)
}

func TestReconcileDigest(t *testing.T) {
	first := domain.DailyDigest{
		Title:       "Contract day",
		Summary:     "Negotiations continued.",
		Date:        "2025-06-02",
		Emails:      []string{"a@x.com"},
		ActionItems: []string{"send draft"},
		Topics:      []string{"contract"},
	}

	merged := reconcileDigest("```json\n{\"summary\": \"Negotiations concluded.\", \"topics\": [\"contract\", \"pricing\"]}\n```", first)

	assert.Equal(t, "Negotiations concluded.", merged.Summary)
	assert.Equal(t, []string{"contract", "pricing"}, merged.Topics)
	assert.Equal(t, first.Title, merged.Title)
	assert.Equal(t, first.ActionItems, merged.ActionItems)

	assert.Equal(t, first, reconcileDigest("```valid```", first))
}

func TestReconcileTone_Patch(t *testing.T) {
	first := domain.ToneAlert{Flagged: false, Emails: []string{"a@x.com"}}

	merged := reconcileTone("```json\n{\"flagged\": true, \"alert_type\": \"harassment\"}\n```", first)

	assert.True(t, merged.Flagged)
	assert.Equal(t, "harassment", merged.AlertType)
	assert.Equal(t, first.Emails, merged.Emails)
}

func TestReconcileTone_AlertFence(t *testing.T) {
	first := domain.ToneAlert{Flagged: false}

	merged := reconcileTone("```alert\nAggressive wording toward the customer\n```", first)

	assert.True(t, merged.Flagged)
	assert.Equal(t, "Aggressive wording toward the customer", merged.Detail)
}

func TestReconcileTone_ValidVerdict(t *testing.T) {
	first := domain.ToneAlert{Flagged: true, AlertType: "harassment"}

	assert.Equal(t, first, reconcileTone("```valid```", first))
}
