package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/port"
)

const (
	messageSeparator  = "\n---------------------------------------\n"
	messageDateLayout = "Monday 02. January 2006"

	// Concurrent message fetches per request, to stay under provider rate limits.
	fetchConcurrency = 8
)

var quotePrefixes = []string{">"}

// addressPattern deliberately has no end anchor so addresses followed by
// punctuation ("write to bob@x.com.") are still harvested.
var addressPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

var blankRunPattern = regexp.MustCompile(`(\r\n){2,}`)

// messageRef is one entry of a context_message_uid list, "<msg id>@<folder id>".
type messageRef struct {
	MessageID string
	FolderID  string
}

func parseMessageRefs(uids []string) []messageRef {
	refs := make([]messageRef, 0, len(uids))
	for _, uid := range uids {
		msgID, folderID, ok := strings.Cut(uid, "@")
		if !ok {
			continue
		}
		refs = append(refs, messageRef{MessageID: msgID, FolderID: folderID})
	}
	return refs
}

// fetchMessages fans out one fetch per reference and joins the results in
// order. A failed fetch leaves a nil slot; it never aborts the others.
func fetchMessages(ctx context.Context, mail port.MailClient, mailboxID string, refs []messageRef) []*domain.Message {
	messages := make([]*domain.Message, len(refs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(fetchConcurrency)
	for i, ref := range refs {
		i, ref := i, ref
		group.Go(func() error {
			msg, err := mail.GetMessage(ctx, mailboxID, ref.FolderID, ref.MessageID)
			if err != nil {
				log.WithError(err).WithFields(log.Fields{
					"mailboxID": mailboxID,
					"messageID": ref.MessageID,
				}).Error("Failed to fetch message, skipping it")
				return nil
			}
			messages[i] = msg
			return nil
		})
	}
	_ = group.Wait() // workers absorb their own errors

	return messages
}

// assembleCorpus renders the fetched messages into the prompt text and
// harvests every participant address, both from the structured fields and
// from a scan of the bodies. Nil slots are skipped.
func assembleCorpus(messages []*domain.Message) *domain.Corpus {
	var builder strings.Builder
	participants := make([]string, 0, len(messages)*2)
	seen := make(map[string]struct{})
	subject := ""
	rendered := 0

	collect := func(email string) {
		if email == "" {
			return
		}
		if _, ok := seen[email]; ok {
			return
		}
		seen[email] = struct{}{}
		participants = append(participants, email)
	}

	for _, msg := range messages {
		if msg == nil {
			continue
		}

		fromDisplay := ""
		if len(msg.From) > 0 {
			fromDisplay = fmt.Sprintf("%s (%s)", msg.From[0].Name, msg.From[0].Email)
		}
		recipients := append(append([]domain.Address{}, msg.To...), msg.Cc...)
		toParts := make([]string, 0, len(recipients))
		for _, r := range recipients {
			toParts = append(toParts, fmt.Sprintf("%s (%s)", r.Name, r.Email))
		}

		body := msg.Text()
		builder.WriteString(fmt.Sprintf("From: %s\nTo: %s\nDate: %s\nE-mail: %s%s",
			fromDisplay,
			strings.Join(toParts, ", "),
			msg.Date.Format(messageDateLayout),
			body,
			messageSeparator,
		))
		rendered++

		if subject == "" {
			subject = msg.Subject
		}

		for _, addr := range msg.From {
			collect(addr.Email)
		}
		for _, addr := range recipients {
			collect(addr.Email)
		}
		for _, addr := range msg.Bcc {
			collect(addr.Email)
		}
		for _, addr := range addressPattern.FindAllString(body, -1) {
			collect(addr)
		}
	}

	if rendered == 0 {
		return domain.NewCorpus("", nil)
	}

	text := fmt.Sprintf("Subject: %s\n\n%s", subject, builder.String())
	text = removeQuotedLines(text, quotePrefixes)
	text = collapseBlankRuns(text)

	return domain.NewCorpus(text, participants)
}

// flattenThreads turns a folder listing into the flat message list the
// assembler consumes, preserving thread and message order.
func flattenThreads(threads []domain.Thread) []*domain.Message {
	var messages []*domain.Message
	for _, thread := range threads {
		for i := range thread.Messages {
			messages = append(messages, &thread.Messages[i])
		}
	}
	return messages
}

// removeQuotedLines drops every line starting with one of the prefixes,
// typically quoted-reply history.
func removeQuotedLines(text string, prefixes []string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		quoted := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(line, prefix) {
				quoted = true
				break
			}
		}
		if !quoted {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func collapseBlankRuns(text string) string {
	return blankRunPattern.ReplaceAllString(text, "\r\n")
}
