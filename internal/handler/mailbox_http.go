package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/port"
)

// MailboxHTTPHandler exposes thin listings over the mailbox provider.
type MailboxHTTPHandler struct {
	mail port.MailClient
}

func NewMailboxHTTPHandler(mail port.MailClient) *MailboxHTTPHandler {
	return &MailboxHTTPHandler{mail: mail}
}

func (h *MailboxHTTPHandler) HandleListMailboxes() echo.HandlerFunc {
	return func(c echo.Context) error {
		mailboxes, err := h.mail.ListMailboxes(c.Request().Context())
		if err != nil {
			log.WithError(err).Error("Failed to list mailboxes")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Request failed",
			})
		}
		return c.JSON(http.StatusOK, mailboxes)
	}
}

func (h *MailboxHTTPHandler) HandleListFolders() echo.HandlerFunc {
	return func(c echo.Context) error {
		mailboxID := c.Param("mailbox_id")
		folders, err := h.mail.ListFolders(c.Request().Context(), mailboxID)
		if err != nil {
			log.WithError(err).WithField("mailboxID", mailboxID).Error("Failed to list folders")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Request failed",
			})
		}
		return c.JSON(http.StatusOK, folders)
	}
}
