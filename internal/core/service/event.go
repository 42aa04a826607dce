package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/port"
)

// EventSuggestionService runs the event pipeline: assemble the corpus,
// extract a structured event, guard the addresses, have the reviewer check
// the result and reconcile its verdict.
type EventSuggestionService struct {
	mail      port.MailClient
	extractor port.Generator
	reviewer  port.Generator
}

func NewEventSuggestionService(
	mail port.MailClient,
	extractor port.Generator,
	reviewer port.Generator,
) *EventSuggestionService {
	return &EventSuggestionService{
		mail:      mail,
		extractor: extractor,
		reviewer:  reviewer,
	}
}

func (s *EventSuggestionService) Suggest(ctx context.Context, mailboxID, folderID string, messageUIDs []string) (*domain.EventSuggestion, error) {
	runLog := log.WithFields(log.Fields{
		"runID":     uuid.New(),
		"mailboxID": mailboxID,
		"folderID":  folderID,
	})
	runLog.WithField("messages", len(messageUIDs)).Info("Event suggestion requested")

	refs := parseMessageRefs(messageUIDs)
	messages := fetchMessages(ctx, s.mail, mailboxID, refs)
	corpus := assembleCorpus(messages)
	if corpus.Empty() {
		return nil, domain.ErrEmptyCorpus
	}

	var first domain.EventSuggestion
	raw, err := s.extractor.Complete(ctx, domain.Prompt{
		System: eventSystemPrompt,
		User:   extractionUserPrompt(corpus.Text, strings.Join(corpus.Participants(), ", ")),
		Schema: domain.EventSuggestionSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("event extraction failed: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &first); err != nil {
		return nil, fmt.Errorf("event extraction returned malformed JSON: %w", err)
	}
	applyEventDefaults(&first)

	first.Emails = applyGuard(first.Emails, corpus)

	answer, err := json.Marshal(first)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize first-stage event: %w", err)
	}
	verdict, err := s.reviewer.Complete(ctx, domain.Prompt{
		System: eventValidationSystemPrompt,
		User:   validationUserPrompt(corpus.Text, string(answer)),
	})
	if err != nil {
		return nil, fmt.Errorf("event validation failed: %w", err)
	}

	final := reconcileEvent(verdict, first)
	// A patch may introduce addresses of its own; the subset invariant still
	// has to hold.
	final.Emails = applyGuard(final.Emails, corpus)

	runLog.WithField("title", final.Title).Info("Event suggestion completed")
	return &final, nil
}

func applyEventDefaults(event *domain.EventSuggestion) {
	if event.StartTime == "" {
		event.StartTime = domain.DefaultEventStartTime
	}
	if event.Duration < 1 || event.Duration > 1440 {
		event.Duration = domain.DefaultEventDurationMinutes
	}
}
