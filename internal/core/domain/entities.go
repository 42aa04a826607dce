package domain

import (
	"sort"
	"time"
)

type Mailbox struct {
	UUID  string `json:"uuid"`
	Email string `json:"email"`
	Name  string `json:"mailbox"`
}

type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Address struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Message is an atomic email as returned by the mailbox provider.
// Immutable once fetched.
type Message struct {
	UID            string
	MessageID      string
	Date           time.Time
	Subject        string
	From           []Address
	To             []Address
	Cc             []Address
	Bcc            []Address
	Preview        string
	Body           string
	HasAttachments bool
}

// Text returns the content used when rendering the message into a corpus:
// the full body when it was fetched, otherwise the listing preview.
func (m *Message) Text() string {
	if m.Body != "" {
		return m.Body
	}
	return m.Preview
}

// Thread is an ordered sequence of messages sharing a conversation identity.
type Thread struct {
	UID      string
	Date     time.Time
	Subject  string
	From     []Address
	To       []Address
	Cc       []Address
	Bcc      []Address
	Messages []Message
}

// MessageQuery filters a folder listing.
type MessageQuery struct {
	FromDate   time.Time
	ToDate     time.Time
	Keyword    string
	FromSearch string
	ToSearch   string
	Page       int
	Limit      int
}

// Corpus is the assembled prompt text for one request together with the set
// of participant addresses it was built from. The participant set is computed
// once per request and never mutated afterwards.
type Corpus struct {
	Text         string
	participants map[string]struct{}
}

func NewCorpus(text string, participants []string) *Corpus {
	set := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		set[p] = struct{}{}
	}
	return &Corpus{Text: text, participants: set}
}

func (c *Corpus) Knows(email string) bool {
	_, ok := c.participants[email]
	return ok
}

// Participants returns the address set in sorted order so prompts stay
// deterministic.
func (c *Corpus) Participants() []string {
	out := make([]string, 0, len(c.participants))
	for p := range c.participants {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (c *Corpus) Empty() bool {
	return c.Text == ""
}
