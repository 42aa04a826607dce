package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/port"
)

// digestWindow is how far back the daily digest looks.
const digestWindow = 24 * time.Hour

type DailyDigestHTTPHandler struct {
	digestService port.DailyDigestService
}

func NewDailyDigestHTTPHandler(digestService port.DailyDigestService) *DailyDigestHTTPHandler {
	return &DailyDigestHTTPHandler{
		digestService: digestService,
	}
}

func (h *DailyDigestHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		mailboxID := c.Param("mailbox_id")
		folderID := c.Param("folder_id")

		page, err := queryInt(c, "page", 1)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid page parameter",
			})
		}
		limit, err := queryInt(c, "limit", 10)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid limit parameter",
			})
		}

		now := time.Now()
		result, err := h.digestService.Digest(c.Request().Context(), mailboxID, folderID, now.Add(-digestWindow), now, page, limit)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"mailboxID": mailboxID,
				"folderID":  folderID,
			}).Error("Daily digest failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Request failed",
			})
		}

		return c.JSON(http.StatusOK, result)
	}
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, echo.ErrBadRequest
	}
	return value, nil
}
