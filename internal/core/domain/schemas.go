package domain

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Response schemas handed to the extractor, reflected once at init.
var (
	EventSuggestionSchema = mustSchema[EventSuggestion]("event_suggestion")
	ToneAlertSchema       = mustSchema[ToneAlert]("tone_alert")
	DailyDigestSchema     = mustSchema[DailyDigest]("daily_digest")
)

func mustSchema[T any](name string) *ResponseSchema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(&v)

	raw, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	var definition map[string]any
	if err := json.Unmarshal(raw, &definition); err != nil {
		panic(err)
	}

	return &ResponseSchema{Name: name, Definition: definition}
}
