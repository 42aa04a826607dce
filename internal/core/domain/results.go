package domain

import "errors"

// ErrEmptyCorpus is returned when no message of a request could be fetched,
// leaving nothing to feed the extraction stage.
var ErrEmptyCorpus = errors.New("empty corpus: no message could be fetched")

// DefaultEventDurationMinutes is the hard fallback for the event duration
// when neither the patch nor the first-stage result carries a usable value.
const DefaultEventDurationMinutes = 60

// DefaultEventStartTime mirrors the extraction schema default.
const DefaultEventStartTime = "10:00"

// EventSuggestion is the calendar event extracted from a mail thread.
type EventSuggestion struct {
	Emails      []string `json:"emails" jsonschema:"description=Participant e-mail addresses found in the From and To fields before every e-mail content"`
	Title       string   `json:"title" jsonschema:"description=Title of the event based on the objectives described in the conversation"`
	Description string   `json:"description" jsonschema:"description=Short description of the event objective"`
	Date        string   `json:"date" jsonschema:"description=Date of the event formatted as YYYY-MM-DD"`
	StartTime   string   `json:"start_time,omitempty" jsonschema:"description=Start time of the event formatted as HH:MM"`
	Duration    int      `json:"duration,omitempty" jsonschema:"description=Duration of the event in minutes"`
	WholeDay    bool     `json:"whole_day,omitempty" jsonschema:"description=Whether the event lasts the entire day"`
}

// ToneAlert is the tone/safety analysis of a mail conversation.
type ToneAlert struct {
	Flagged   bool     `json:"flagged" jsonschema:"description=True when the conversation contains problematic content"`
	AlertType string   `json:"alert_type,omitempty" jsonschema:"description=Category of the alert when flagged"`
	Detail    string   `json:"detail,omitempty" jsonschema:"description=Brief factual description of the problem"`
	Emails    []string `json:"emails" jsonschema:"description=Addresses of the participants involved in the flagged content"`
}

// DailyDigest is the structured summary of the last day of mail.
type DailyDigest struct {
	Title       string   `json:"title" jsonschema:"description=Main theme of the day in 5 to 10 words"`
	Summary     string   `json:"summary" jsonschema:"description=3 to 5 sentences covering decisions and urgencies"`
	Date        string   `json:"date" jsonschema:"description=Date of the digest formatted as YYYY-MM-DD"`
	Emails      []string `json:"emails" jsonschema:"description=Valid participant addresses taken from From To and Cc"`
	ActionItems []string `json:"action_items" jsonschema:"description=Concrete tasks to do"`
	Topics      []string `json:"topics" jsonschema:"description=Keywords of the discussed subjects"`
}

// Prompt is a single call to a generation capability. A nil Schema asks for
// free-form text, otherwise the response must bind to the schema.
type Prompt struct {
	System string
	User   string
	Schema *ResponseSchema
}

// ResponseSchema is a named JSON schema handed to the generation capability.
type ResponseSchema struct {
	Name       string
	Definition map[string]any
}
