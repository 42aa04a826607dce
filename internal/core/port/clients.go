package port

import (
	"context"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

// MailClient talks to the remote mailbox provider.
type MailClient interface {
	ListMailboxes(ctx context.Context) ([]domain.Mailbox, error)
	ListFolders(ctx context.Context, mailboxID string) ([]domain.Folder, error)
	ListMessages(ctx context.Context, mailboxID, folderID string, query domain.MessageQuery) ([]domain.Thread, error)
	GetMessage(ctx context.Context, mailboxID, folderID, messageID string) (*domain.Message, error)
}

// Generator is a single text-completion capability. The extractor and the
// reviewer are two instances of it, each with its own model and decoding
// parameters.
type Generator interface {
	Complete(ctx context.Context, prompt domain.Prompt) (string, error)
}
