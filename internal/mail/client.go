package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

const (
	encryptedBeginMarker = "BEGIN ENCRYPTED DATA"
	encryptedEndMarker   = "END ENCRYPTED DATA"

	defaultListLimit = 10
)

// FetchError is an unrecoverable provider failure with the upstream HTTP
// status attached. A zero StatusCode means the request never got a response.
type FetchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: provider returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client is the REST client for the remote mailbox provider.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ListMailboxes(ctx context.Context) ([]domain.Mailbox, error) {
	var payload mailboxListResponse
	if err := c.get(ctx, "list mailboxes", "/api/mailbox", nil, &payload); err != nil {
		return nil, err
	}

	mailboxes := make([]domain.Mailbox, 0, len(payload.Data))
	for _, m := range payload.Data {
		mailboxes = append(mailboxes, domain.Mailbox{UUID: m.UUID, Email: m.Email, Name: m.Mailbox})
	}
	return mailboxes, nil
}

func (c *Client) ListFolders(ctx context.Context, mailboxID string) ([]domain.Folder, error) {
	var payload folderListResponse
	path := fmt.Sprintf("/api/mail/%s/folder", mailboxID)
	if err := c.get(ctx, "list folders", path, nil, &payload); err != nil {
		return nil, err
	}

	folders := make([]domain.Folder, 0, len(payload.Data))
	for _, f := range payload.Data {
		folders = append(folders, domain.Folder{ID: f.ID, Name: f.Name})
	}
	return folders, nil
}

func (c *Client) ListMessages(ctx context.Context, mailboxID, folderID string, query domain.MessageQuery) ([]domain.Thread, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultListLimit
	}

	params := url.Values{}
	params.Set("offset", strconv.Itoa((page-1)*limit))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("thread", "on")
	if query.Keyword != "" {
		params.Set("scontains", query.Keyword)
	}
	if query.FromSearch != "" {
		params.Set("sfrom", query.FromSearch)
	}
	if query.ToSearch != "" {
		params.Set("sto", query.ToSearch)
	}
	if !query.FromDate.IsZero() {
		params.Set("sfromdate", query.FromDate.Format("2006-01-02 15:04:05"))
	}
	if !query.ToDate.IsZero() {
		params.Set("stodate", query.ToDate.Format("2006-01-02 15:04:05"))
	}

	var payload messageListResponse
	path := fmt.Sprintf("/api/mail/%s/folder/%s/message", mailboxID, folderID)
	if err := c.get(ctx, "list messages", path, params, &payload); err != nil {
		return nil, err
	}

	threads := make([]domain.Thread, 0, len(payload.Data.Threads))
	for _, t := range payload.Data.Threads {
		threads = append(threads, mapThread(t))
	}
	return threads, nil
}

func (c *Client) GetMessage(ctx context.Context, mailboxID, folderID, messageID string) (*domain.Message, error) {
	params := url.Values{}
	params.Set("prefered_format", "plain")

	var payload messageResponse
	path := fmt.Sprintf("/api/mail/%s/folder/%s/message/%s", mailboxID, folderID, messageID)
	if err := c.get(ctx, "get message", path, params, &payload); err != nil {
		return nil, err
	}

	// The provider occasionally omits msg_id on single-message reads.
	if payload.Data.MsgID == nil {
		payload.Data.MsgID = &messageID
	}

	msg := mapMessage(payload.Data)
	msg.Body = removeEncryptedData(msg.Body)
	return &msg, nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.WithFields(log.Fields{
			"op":     op,
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Mail provider request failed")
		return &FetchError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Op: op, Err: fmt.Errorf("malformed provider payload: %w", err)}
	}
	return nil
}

// removeEncryptedData strips every section between the encrypted-data
// markers, markers included. A dangling begin marker discards the rest of
// that chunk.
func removeEncryptedData(content string) string {
	first, rest, found := strings.Cut(content, encryptedBeginMarker)
	if !found {
		return content
	}

	parts := []string{first}
	for found {
		_, after, ok := strings.Cut(rest, encryptedEndMarker)
		if !ok {
			log.Warn("Found encrypted-data begin marker without matching end marker")
			after = ""
		}
		first, rest, found = strings.Cut(after, encryptedBeginMarker)
		parts = append(parts, first)
	}
	return strings.Join(parts, "")
}
