package service

import (
	"regexp"
	"strings"
)

// validSentinel is what the reviewer returns when the first-stage result
// needs no correction.
const validSentinel = "```valid```"

var (
	fencedBlockPattern = regexp.MustCompile("```(?:json|alert)?\\s*([\\s\\S]*?)```")
	alertBlockPattern  = regexp.MustCompile("```alert\\s*([\\s\\S]*?)```")
)

func isValidVerdict(verdict string) bool {
	return strings.Contains(strings.ToLower(verdict), validSentinel)
}

// payloadFinder attempts to locate a patch payload in the raw verdict text.
type payloadFinder func(verdict string) (payload string, ok bool)

// The fallback chain is ordered: a fenced block wins, then the label-stripping
// heuristic. Each attempt is independent so the chain stays auditable.
var payloadFinders = []payloadFinder{findFencedPayload, findLabeledPayload}

func locatePayload(verdict string) (string, bool) {
	for _, find := range payloadFinders {
		if payload, ok := find(verdict); ok {
			return payload, true
		}
	}
	return "", false
}

// findFencedPayload extracts the content between a fenced-code delimiter
// pair, optionally labeled json.
func findFencedPayload(verdict string) (string, bool) {
	match := fencedBlockPattern.FindStringSubmatch(verdict)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// findLabeledPayload strips a literal json label line from the raw text and
// treats the remainder as the payload.
func findLabeledPayload(verdict string) (string, bool) {
	payload := strings.ReplaceAll(strings.TrimSpace(verdict), "json\n", "")
	if payload == "" {
		return "", false
	}
	return payload, true
}

// findAlertPayload extracts a corrected tone analysis wrapped in alert
// fencing, the reviewer's alternative to a JSON patch.
func findAlertPayload(verdict string) (string, bool) {
	match := alertBlockPattern.FindStringSubmatch(verdict)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}
