package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/port"
)

// DailyDigestService summarizes a folder's recent mail into a structured
// digest, with the same guard and reviewer pass as the other pipelines.
type DailyDigestService struct {
	mail      port.MailClient
	extractor port.Generator
	reviewer  port.Generator
}

func NewDailyDigestService(
	mail port.MailClient,
	extractor port.Generator,
	reviewer port.Generator,
) *DailyDigestService {
	return &DailyDigestService{
		mail:      mail,
		extractor: extractor,
		reviewer:  reviewer,
	}
}

func (s *DailyDigestService) Digest(ctx context.Context, mailboxID, folderID string, from, to time.Time, page, limit int) (*domain.DailyDigest, error) {
	runLog := log.WithFields(log.Fields{
		"runID":     uuid.New(),
		"mailboxID": mailboxID,
		"folderID":  folderID,
	})
	runLog.Info("Daily digest requested")

	threads, err := s.mail.ListMessages(ctx, mailboxID, folderID, domain.MessageQuery{
		FromDate: from,
		ToDate:   to,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	corpus := assembleCorpus(flattenThreads(threads))
	if corpus.Empty() {
		return nil, domain.ErrEmptyCorpus
	}

	var first domain.DailyDigest
	raw, err := s.extractor.Complete(ctx, domain.Prompt{
		System: dailySystemPrompt(corpus),
		User:   dailyUserPrompt(corpus.Text),
		Schema: domain.DailyDigestSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("digest extraction failed: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &first); err != nil {
		return nil, fmt.Errorf("digest extraction returned malformed JSON: %w", err)
	}
	if first.Date == "" {
		first.Date = to.Format("2006-01-02")
	}

	first.Emails = applyGuard(first.Emails, corpus)

	answer, err := json.Marshal(first)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize first-stage digest: %w", err)
	}
	verdict, err := s.reviewer.Complete(ctx, domain.Prompt{
		System: dailyValidationSystemPrompt,
		User:   validationUserPrompt(corpus.Text, string(answer)),
	})
	if err != nil {
		return nil, fmt.Errorf("digest validation failed: %w", err)
	}

	final := reconcileDigest(verdict, first)
	final.Emails = applyGuard(final.Emails, corpus)

	runLog.WithField("title", final.Title).Info("Daily digest completed")
	return &final, nil
}
