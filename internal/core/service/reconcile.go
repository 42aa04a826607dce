package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

// reconcileEvent merges the reviewer's verdict over the first-stage event.
// It never fails: any malformed patch degrades to the first-stage result.
func reconcileEvent(verdict string, first domain.EventSuggestion) domain.EventSuggestion {
	if isValidVerdict(verdict) {
		return first
	}

	fields, ok := parsePatch(verdict)
	if !ok {
		return first
	}

	merged := first
	overrideStrings(fields, "emails", &merged.Emails)
	overrideString(fields, "title", &merged.Title)
	overrideString(fields, "description", &merged.Description)
	overrideString(fields, "date", &merged.Date)
	overrideString(fields, "start_time", &merged.StartTime)
	overrideBool(fields, "whole_day", &merged.WholeDay)
	merged.Duration = normalizeDuration(fields["duration"], first.Duration)
	return merged
}

// reconcileDigest applies the same per-field policy to a daily digest.
func reconcileDigest(verdict string, first domain.DailyDigest) domain.DailyDigest {
	if isValidVerdict(verdict) {
		return first
	}

	fields, ok := parsePatch(verdict)
	if !ok {
		return first
	}

	merged := first
	overrideString(fields, "title", &merged.Title)
	overrideString(fields, "summary", &merged.Summary)
	overrideString(fields, "date", &merged.Date)
	overrideStrings(fields, "emails", &merged.Emails)
	overrideStrings(fields, "action_items", &merged.ActionItems)
	overrideStrings(fields, "topics", &merged.Topics)
	return merged
}

// reconcileTone accepts either a JSON patch or a corrected analysis between
// alert fences, the two shapes the reviewer is instructed to produce.
func reconcileTone(verdict string, first domain.ToneAlert) domain.ToneAlert {
	if isValidVerdict(verdict) {
		return first
	}

	if fields, ok := parsePatch(verdict); ok {
		merged := first
		overrideBool(fields, "flagged", &merged.Flagged)
		overrideString(fields, "alert_type", &merged.AlertType)
		overrideString(fields, "detail", &merged.Detail)
		overrideStrings(fields, "emails", &merged.Emails)
		return merged
	}

	if detail, ok := findAlertPayload(verdict); ok {
		merged := first
		merged.Flagged = true
		merged.Detail = detail
		return merged
	}

	return first
}

// parsePatch locates and decodes the embedded JSON payload of a verdict.
// A missing or unparseable payload logs a warning and reports no patch.
func parsePatch(verdict string) (map[string]json.RawMessage, bool) {
	payload, ok := locatePayload(verdict)
	if !ok {
		log.Warn("Reviewer verdict carries no recognizable patch, keeping first-stage result")
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		log.WithError(err).Warn("Failed to parse reviewer patch, keeping first-stage result")
		return nil, false
	}
	return fields, true
}

// normalizeDuration turns whatever the patch supplied into minutes. Only the
// digit characters count; anything empty or outside 1-1440 falls back to the
// prior duration, itself defaulted to one hour.
func normalizeDuration(raw json.RawMessage, prior int) int {
	if prior < 1 || prior > 1440 {
		prior = domain.DefaultEventDurationMinutes
	}
	if raw == nil {
		return prior
	}

	var digits strings.Builder
	for _, r := range string(raw) {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return prior
	}

	minutes, err := strconv.Atoi(digits.String())
	if err != nil || minutes < 1 || minutes > 1440 {
		return prior
	}
	return minutes
}

func overrideString(fields map[string]json.RawMessage, key string, dst *string) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		log.WithField("field", key).Warn("Patch field has an unexpected type, keeping first-stage value")
		return
	}
	*dst = value
}

func overrideStrings(fields map[string]json.RawMessage, key string, dst *[]string) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var value []string
	if err := json.Unmarshal(raw, &value); err != nil {
		log.WithField("field", key).Warn("Patch field has an unexpected type, keeping first-stage value")
		return
	}
	*dst = value
}

func overrideBool(fields map[string]json.RawMessage, key string, dst *bool) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		log.WithField("field", key).Warn("Patch field has an unexpected type, keeping first-stage value")
		return
	}
	*dst = value
}
