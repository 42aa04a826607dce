package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/port"
)

type ToneCheckHTTPHandler struct {
	toneService port.ToneCheckService
	validate    *validator.Validate
}

type ToneCheckRequest struct {
	ContextMessageUID []string `json:"context_message_uid" validate:"required,min=1,dive,required"`
}

func NewToneCheckHTTPHandler(toneService port.ToneCheckService, validate *validator.Validate) *ToneCheckHTTPHandler {
	return &ToneCheckHTTPHandler{
		toneService: toneService,
		validate:    validate,
	}
}

func (h *ToneCheckHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ToneCheckRequest

		if err := c.Bind(&req); err != nil {
			log.WithError(err).Error("Failed to bind tone check request")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}
		if err := h.validate.Struct(req); err != nil {
			log.WithError(err).Error("Tone check request validation failed")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}

		mailboxID := c.Param("mailbox_uuid")
		folderID := c.Param("folder_id")

		result, err := h.toneService.Check(c.Request().Context(), mailboxID, folderID, req.ContextMessageUID)
		if err != nil {
			log.WithError(err).WithField("mailboxID", mailboxID).Error("Tone check failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Request failed",
			})
		}

		return c.JSON(http.StatusOK, result)
	}
}
