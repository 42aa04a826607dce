package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/port"
)

type EventSuggestionHTTPHandler struct {
	eventService port.EventSuggestionService
	validate     *validator.Validate
}

// EventSuggestionRequest carries the thread context as a list of
// "<msg id>@<folder id>" message uids.
type EventSuggestionRequest struct {
	ContextMessageUID []string `json:"context_message_uid" validate:"required,min=1,dive,required"`
}

func NewEventSuggestionHTTPHandler(eventService port.EventSuggestionService, validate *validator.Validate) *EventSuggestionHTTPHandler {
	return &EventSuggestionHTTPHandler{
		eventService: eventService,
		validate:     validate,
	}
}

func (h *EventSuggestionHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req EventSuggestionRequest

		if err := c.Bind(&req); err != nil {
			log.WithError(err).Error("Failed to bind event suggestion request")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}
		if err := h.validate.Struct(req); err != nil {
			log.WithError(err).Error("Event suggestion request validation failed")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}

		mailboxID := c.Param("mailbox_uuid")
		folderID := c.Param("folder_id")
		threadID := c.Param("thread_id")

		result, err := h.eventService.Suggest(c.Request().Context(), mailboxID, folderID, req.ContextMessageUID)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"mailboxID": mailboxID,
				"threadID":  threadID,
			}).Error("Event suggestion failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Request failed",
			})
		}

		return c.JSON(http.StatusOK, result)
	}
}
