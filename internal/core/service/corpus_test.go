package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

func testMessage(from, to, body string) *domain.Message {
	return &domain.Message{
		UID:     "1",
		Date:    time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC),
		Subject: "Planning",
		From:    []domain.Address{{Name: "Alice", Email: from}},
		To:      []domain.Address{{Name: "Bob", Email: to}},
		Body:    body,
	}
}

func TestParseMessageRefs(t *testing.T) {
	refs := parseMessageRefs([]string{"123@7", "456@7", "malformed", "789@12"})

	assert.Equal(t, []messageRef{
		{MessageID: "123", FolderID: "7"},
		{MessageID: "456", FolderID: "7"},
		{MessageID: "789", FolderID: "12"},
	}, refs)
}

func TestAssembleCorpus_BlockPerMessage(t *testing.T) {
	messages := []*domain.Message{
		testMessage("a@x.com", "b@x.com", "First body"),
		nil, // a failed fetch
		testMessage("b@x.com", "a@x.com", "Second body"),
	}

	corpus := assembleCorpus(messages)

	assert.False(t, corpus.Empty())
	assert.Equal(t, 2, strings.Count(corpus.Text, strings.TrimSpace(messageSeparator)))
	assert.True(t, strings.HasPrefix(corpus.Text, "Subject: Planning\n\n"))
	assert.Contains(t, corpus.Text, "From: Alice (a@x.com)")
	assert.Contains(t, corpus.Text, "Date: Monday 02. June 2025")
}

func TestAssembleCorpus_AllFetchesFailed(t *testing.T) {
	corpus := assembleCorpus([]*domain.Message{nil, nil})

	assert.True(t, corpus.Empty())
	assert.Empty(t, corpus.Participants())
}

func TestAssembleCorpus_ParticipantsFromHeadersAndBody(t *testing.T) {
	msg := testMessage("a@x.com", "b@x.com", "Please also loop in carol@y.org.")
	msg.Cc = []domain.Address{{Name: "Dave", Email: "d@x.com"}}

	corpus := assembleCorpus([]*domain.Message{msg})

	assert.True(t, corpus.Knows("a@x.com"))
	assert.True(t, corpus.Knows("b@x.com"))
	assert.True(t, corpus.Knows("d@x.com"))
	// Trailing punctuation must not block the harvest.
	assert.True(t, corpus.Knows("carol@y.org"))
	assert.False(t, corpus.Knows("carol@y.org."))
	assert.False(t, corpus.Knows("nobody@nowhere.net"))
}

func TestAssembleCorpus_ParticipantsSortedAndDeduplicated(t *testing.T) {
	messages := []*domain.Message{
		testMessage("b@x.com", "a@x.com", "mentioning a@x.com again"),
		testMessage("a@x.com", "b@x.com", ""),
	}

	corpus := assembleCorpus(messages)

	assert.Equal(t, []string{"a@x.com", "b@x.com"}, corpus.Participants())
}

func TestAssembleCorpus_StripsQuotedLines(t *testing.T) {
	body := "Works for me.\n> On Monday Alice wrote:\n> can we meet tomorrow?"
	corpus := assembleCorpus([]*domain.Message{testMessage("a@x.com", "b@x.com", body)})

	assert.Contains(t, corpus.Text, "Works for me.")
	assert.NotContains(t, corpus.Text, "Alice wrote")
	assert.NotContains(t, corpus.Text, "can we meet tomorrow?")
}

func TestAssembleCorpus_UsesPreviewWhenBodyMissing(t *testing.T) {
	msg := testMessage("a@x.com", "b@x.com", "")
	msg.Preview = "Short preview text"

	corpus := assembleCorpus([]*domain.Message{msg})

	assert.Contains(t, corpus.Text, "E-mail: Short preview text")
}

func TestCollapseBlankRuns(t *testing.T) {
	assert.Equal(t, "a\r\nb", collapseBlankRuns("a\r\n\r\n\r\nb"))
	assert.Equal(t, "a\r\nb", collapseBlankRuns("a\r\nb"))
	assert.Equal(t, "no pairs here", collapseBlankRuns("no pairs here"))
}

func TestRemoveQuotedLines(t *testing.T) {
	text := "keep\n> drop\nkeep too\n>also drop"

	assert.Equal(t, "keep\nkeep too", removeQuotedLines(text, []string{">"}))
}

func TestFlattenThreads(t *testing.T) {
	threads := []domain.Thread{
		{UID: "t1", Messages: []domain.Message{{UID: "1"}, {UID: "2"}}},
		{UID: "t2", Messages: []domain.Message{{UID: "3"}}},
	}

	messages := flattenThreads(threads)

	assert.Len(t, messages, 3)
	assert.Equal(t, "1", messages[0].UID)
	assert.Equal(t, "2", messages[1].UID)
	assert.Equal(t, "3", messages[2].UID)
}
