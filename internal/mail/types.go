package mail

import (
	"time"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

// Provider-shaped payloads. Every endpoint wraps its data in a
// {"data": ..., "result": "success"} envelope.

type mailboxListResponse struct {
	Data   []mailboxDTO `json:"data"`
	Result string       `json:"result"`
}

type mailboxDTO struct {
	UUID    string `json:"uuid"`
	Email   string `json:"email"`
	Mailbox string `json:"mailbox"`
}

type folderListResponse struct {
	Data   []folderDTO `json:"data"`
	Result string      `json:"result"`
}

type folderDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type messageListResponse struct {
	Data   messageListData `json:"data"`
	Result string          `json:"result"`
}

type messageListData struct {
	MessagesCount int         `json:"messages_count"`
	Threads       []threadDTO `json:"threads"`
}

type threadDTO struct {
	UID      string       `json:"uid"`
	Date     time.Time    `json:"date"`
	Subject  string       `json:"subject"`
	From     []addressDTO `json:"from"`
	To       []addressDTO `json:"to"`
	Cc       []addressDTO `json:"cc"`
	Bcc      []addressDTO `json:"bcc"`
	Messages []messageDTO `json:"messages"`
}

type messageResponse struct {
	Data   messageDTO `json:"data"`
	Result string     `json:"result"`
}

type messageDTO struct {
	UID            string       `json:"uid"`
	MsgID          *string      `json:"msg_id"`
	Date           time.Time    `json:"date"`
	Subject        string       `json:"subject"`
	From           []addressDTO `json:"from"`
	To             []addressDTO `json:"to"`
	Cc             []addressDTO `json:"cc"`
	Bcc            []addressDTO `json:"bcc"`
	Preview        string       `json:"preview"`
	HasAttachments bool         `json:"has_attachments"`
	Body           *bodyDTO     `json:"body"`
}

type bodyDTO struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type addressDTO struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func mapAddresses(in []addressDTO) []domain.Address {
	out := make([]domain.Address, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Address{Name: a.Name, Email: a.Email})
	}
	return out
}

func mapMessage(in messageDTO) domain.Message {
	msg := domain.Message{
		UID:            in.UID,
		Date:           in.Date,
		Subject:        in.Subject,
		From:           mapAddresses(in.From),
		To:             mapAddresses(in.To),
		Cc:             mapAddresses(in.Cc),
		Bcc:            mapAddresses(in.Bcc),
		Preview:        in.Preview,
		HasAttachments: in.HasAttachments,
	}
	if in.MsgID != nil {
		msg.MessageID = *in.MsgID
	}
	if in.Body != nil {
		msg.Body = in.Body.Value
	}
	return msg
}

func mapThread(in threadDTO) domain.Thread {
	thread := domain.Thread{
		UID:     in.UID,
		Date:    in.Date,
		Subject: in.Subject,
		From:    mapAddresses(in.From),
		To:      mapAddresses(in.To),
		Cc:      mapAddresses(in.Cc),
		Bcc:     mapAddresses(in.Bcc),
	}
	for _, m := range in.Messages {
		thread.Messages = append(thread.Messages, mapMessage(m))
	}
	return thread
}
