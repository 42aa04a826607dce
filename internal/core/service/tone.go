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

// ToneCheckService analyzes the tone of a conversation with a second-opinion
// review, sharing the corpus/guard/reconcile pipeline of the event service.
type ToneCheckService struct {
	mail      port.MailClient
	extractor port.Generator
	reviewer  port.Generator
}

func NewToneCheckService(
	mail port.MailClient,
	extractor port.Generator,
	reviewer port.Generator,
) *ToneCheckService {
	return &ToneCheckService{
		mail:      mail,
		extractor: extractor,
		reviewer:  reviewer,
	}
}

func (s *ToneCheckService) Check(ctx context.Context, mailboxID, folderID string, messageUIDs []string) (*domain.ToneAlert, error) {
	runLog := log.WithFields(log.Fields{
		"runID":     uuid.New(),
		"mailboxID": mailboxID,
		"folderID":  folderID,
	})
	runLog.WithField("messages", len(messageUIDs)).Info("Tone check requested")

	refs := parseMessageRefs(messageUIDs)
	messages := fetchMessages(ctx, s.mail, mailboxID, refs)
	corpus := assembleCorpus(messages)
	if corpus.Empty() {
		return nil, domain.ErrEmptyCorpus
	}

	var first domain.ToneAlert
	raw, err := s.extractor.Complete(ctx, domain.Prompt{
		System: toneSystemPrompt,
		User:   extractionUserPrompt(corpus.Text, strings.Join(corpus.Participants(), ", ")),
		Schema: domain.ToneAlertSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("tone extraction failed: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &first); err != nil {
		return nil, fmt.Errorf("tone extraction returned malformed JSON: %w", err)
	}

	first.Emails = applyGuard(first.Emails, corpus)

	answer, err := json.Marshal(first)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize first-stage analysis: %w", err)
	}
	verdict, err := s.reviewer.Complete(ctx, domain.Prompt{
		System: toneValidationSystemPrompt,
		User:   validationUserPrompt(corpus.Text, string(answer)),
	})
	if err != nil {
		return nil, fmt.Errorf("tone validation failed: %w", err)
	}

	final := reconcileTone(verdict, first)
	final.Emails = applyGuard(final.Emails, corpus)

	runLog.WithField("flagged", final.Flagged).Info("Tone check completed")
	return &final, nil
}
