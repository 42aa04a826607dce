package port

import (
	"context"
	"time"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

type EventSuggestionService interface {
	Suggest(ctx context.Context, mailboxID, folderID string, messageUIDs []string) (*domain.EventSuggestion, error)
}

type ToneCheckService interface {
	Check(ctx context.Context, mailboxID, folderID string, messageUIDs []string) (*domain.ToneAlert, error)
}

type DailyDigestService interface {
	Digest(ctx context.Context, mailboxID, folderID string, from, to time.Time, page, limit int) (*domain.DailyDigest, error)
}
