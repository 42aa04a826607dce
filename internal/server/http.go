package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/port"
	"github.com/mug4z/GoInfomaniakHackaton2025/internal/handler"
)

type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(
	mail port.MailClient,
	eventService port.EventSuggestionService,
	toneService port.ToneCheckService,
	digestService port.DailyDigestService,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"requestID": v.RequestID,
			}).Info("Request handled")
			return nil
		},
	}))

	server := &HTTPServer{echo: e}

	validate := validator.New()

	// Initialize handlers
	eventHandler := handler.NewEventSuggestionHTTPHandler(eventService, validate)
	toneHandler := handler.NewToneCheckHTTPHandler(toneService, validate)
	dailyHandler := handler.NewDailyDigestHTTPHandler(digestService)
	mailboxHandler := handler.NewMailboxHTTPHandler(mail)

	// Routes
	e.GET("/ping", server.ping)
	e.GET("/health", server.healthCheck)
	e.GET("/mailboxes", mailboxHandler.HandleListMailboxes())
	e.GET("/mail/:mailbox_id/folders", mailboxHandler.HandleListFolders())
	e.POST("/mail/:mailbox_uuid/folder/:folder_id/thread/:thread_id/event_suggestion", eventHandler.Handle())
	e.POST("/mail/:mailbox_uuid/folder/:folder_id/thread/:thread_id/tone_check", toneHandler.Handle())
	e.POST("/daily/:mailbox_id/folder/:folder_id/message", dailyHandler.Handle())

	return server
}

func (s *HTTPServer) ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "mail-assistant",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
