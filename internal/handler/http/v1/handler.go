package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/rescue_dashboard/internal/auth"
	"github.com/shenikar/rescue_dashboard/internal/config"
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/shenikar/rescue_dashboard/internal/presenter"
	"github.com/shenikar/rescue_dashboard/internal/remote"
	"github.com/shenikar/rescue_dashboard/internal/service"
	"github.com/shenikar/rescue_dashboard/internal/storage"
	"github.com/sirupsen/logrus"
)

const maxUploadSize = 10 << 20

// NotificationStream обслуживает websocket подключение с уведомлениями
type NotificationStream interface {
	Serve(ctx context.Context, conn *websocket.Conn, key, subject string)
}

type Handler struct {
	incidentService  service.IncidentService
	dashboardService service.DashboardService
	tokens           auth.TokenStore
	stream           NotificationStream
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

// NewHandler создает обработчики API; tokens и stream могут быть nil
func NewHandler(
	incidentService service.IncidentService,
	dashboardService service.DashboardService,
	tokens auth.TokenStore,
	stream NotificationStream,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:  incidentService,
		dashboardService: dashboardService,
		tokens:           tokens,
		stream:           stream,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError сопоставляет ошибку сервиса с HTTP статусом
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status, message := http.StatusInternalServerError, "internal server error"
	var statusErr *remote.StatusError

	switch {
	case errors.Is(err, auth.ErrMissingToken):
		status, message = http.StatusUnauthorized, "authorization token required"
	case errors.Is(err, remote.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "remote API rejected the token"
	case errors.Is(err, remote.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, service.ErrInvalidStatus):
		status, message = http.StatusBadRequest, "invalid status"
	case errors.Is(err, storage.ErrInvalidURL):
		status, message = http.StatusBadRequest, "invalid media url"
	case errors.Is(err, service.ErrStorageDisabled):
		status, message = http.StatusServiceUnavailable, "media storage is not configured"
	case errors.Is(err, context.DeadlineExceeded):
		status, message = http.StatusGatewayTimeout, "remote API timeout"
	case errors.As(err, &statusErr):
		status, message = http.StatusBadGateway, "remote API error"
	}

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, gin.H{"error": message})
}

// @Summary Load the incident board
// @Description Fetch incidents from the remote API, resolve assigned volunteers and return the rendered board.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} presenter.BoardView
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Remote API error"
// @Router /incidents [get]
func (h *Handler) loadBoard(c *gin.Context) {
	log := h.logger.WithField("method", "loadBoard")

	snapshot, err := h.incidentService.LoadBoard(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Board(snapshot))
}

// @Summary Get the current board state
// @Description Return the board as last loaded without calling the remote API.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} presenter.BoardView
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/board [get]
func (h *Handler) currentBoard(c *gin.Context) {
	token := tokenFrom(c)
	if token == "" {
		h.respondError(c, h.logger.WithField("method", "currentBoard"), auth.ErrMissingToken)
		return
	}
	c.JSON(http.StatusOK, presenter.Board(h.incidentService.CurrentBoard(token)))
}

// @Summary Get incident by ID
// @Description Fetch a single incident with its assigned volunteer.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} presenter.IncidentRow
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), tokenFrom(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentRow(incident))
}

// @Summary Update incident status
// @Description Write the new status to the remote API and patch the matching incident on the board.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} presenter.IncidentRow
// @Failure 400 {object} map[string]string "Invalid request body or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Remote API error"
// @Router /incidents/{id}/status [put]
func (h *Handler) updateStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.UpdateStatus(c.Request.Context(), tokenFrom(c), id, models.IncidentStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentRow(incident))
}

// @Summary Get incident status history
// @Description List confirmed status changes of an incident, newest first.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} StatusChangeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/history [get]
func (h *Handler) history(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "history").WithField("id", id)

	changes, err := h.incidentService.History(c.Request.Context(), tokenFrom(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToStatusChangeResponses(changes))
}

// @Summary Get NGO statistics
// @Description Get incident counters of the NGO overview.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Remote API error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.dashboardService.Stats(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Start Fitbit connection
// @Tags Fitbit
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FitbitConnect
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /fitbit/connect [get]
func (h *Handler) fitbitConnect(c *gin.Context) {
	connect, err := h.dashboardService.FitbitConnect(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "fitbitConnect"), err)
		return
	}
	c.JSON(http.StatusOK, connect)
}

// @Summary Get Fitbit connection status
// @Tags Fitbit
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FitbitStatus
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /fitbit/status [get]
func (h *Handler) fitbitStatus(c *gin.Context) {
	status, err := h.dashboardService.FitbitStatus(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "fitbitStatus"), err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Get Fitbit activity data
// @Tags Fitbit
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FitbitData
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /fitbit/data [get]
func (h *Handler) fitbitData(c *gin.Context) {
	data, err := h.dashboardService.FitbitData(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "fitbitData"), err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary Upload an animal photo
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Photo"
// @Success 201 {object} MediaResponse
// @Failure 400 {object} map[string]string "Missing or oversized file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Media storage is not configured"
// @Router /media [post]
func (h *Handler) uploadMedia(c *gin.Context) {
	log := h.logger.WithField("method", "uploadMedia")

	file, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Missing file in form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if file.Size == 0 || file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file size must be between 1 byte and 10 MB"})
		return
	}

	content, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer content.Close()

	url, err := h.dashboardService.UploadPhoto(c.Request.Context(), tokenFrom(c), content)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, MediaResponse{URL: url})
}

// @Summary Delete an animal photo
// @Tags Media
// @Produce json
// @Security BearerAuth
// @Param url query string true "Public URL of the photo"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid media url"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /media [delete]
func (h *Handler) deleteMedia(c *gin.Context) {
	url := c.Query("url")
	log := h.logger.WithField("method", "deleteMedia").WithField("url", url)
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	if err := h.dashboardService.DeletePhoto(c.Request.Context(), tokenFrom(c), url); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the current subject
// @Description Decode the subject claim of the bearer token without verifying its signature.
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /me [get]
func (h *Handler) me(c *gin.Context) {
	token := tokenFrom(c)
	if token == "" {
		h.respondError(c, h.logger.WithField("method", "me"), auth.ErrMissingToken)
		return
	}
	subject := auth.Subject(token)
	c.JSON(http.StatusOK, MeResponse{Subject: subject, Authenticated: subject != ""})
}

// @Summary Store the session token
// @Tags Session
// @Accept json
// @Security AdminKeyAuth
// @Param token body SetTokenRequest true "Bearer token"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Missing or invalid admin key"
// @Failure 503 {object} map[string]string "Session storage is not configured"
// @Router /session/token [put]
func (h *Handler) setSessionToken(c *gin.Context) {
	log := h.logger.WithField("method", "setSessionToken")
	if h.tokens == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session storage is not configured"})
		return
	}

	var input SetTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tokens.Set(c.Request.Context(), input.Token); err != nil {
		h.respondError(c, log, err)
		return
	}
	log.WithField("subject", auth.Subject(input.Token)).Info("Session token stored")
	c.Status(http.StatusNoContent)
}

// @Summary Clear the session token
// @Tags Session
// @Security AdminKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Missing or invalid admin key"
// @Failure 503 {object} map[string]string "Session storage is not configured"
// @Router /session/token [delete]
func (h *Handler) clearSessionToken(c *gin.Context) {
	log := h.logger.WithField("method", "clearSessionToken")
	if h.tokens == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session storage is not configured"})
		return
	}

	// доска прежнего токена больше никому не нужна
	stored, err := h.tokens.Get(c.Request.Context())
	if err != nil && !errors.Is(err, auth.ErrMissingToken) {
		log.WithError(err).Warn("Failed to read session token before clearing")
	}

	if err := h.tokens.Clear(c.Request.Context()); err != nil {
		h.respondError(c, log, err)
		return
	}
	h.incidentService.ForgetBoard(stored)
	log.Info("Session token cleared")
	c.Status(http.StatusNoContent)
}

// @Summary Stream notifications
// @Description Upgrade to a websocket that receives success and error notifications addressed to this token.
// @Tags Notifications
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Notifications are not configured"
// @Router /notifications/ws [get]
func (h *Handler) notifications(c *gin.Context) {
	log := h.logger.WithField("method", "notifications")
	token := tokenFrom(c)
	if token == "" {
		h.respondError(c, log, auth.ErrMissingToken)
		return
	}
	if h.stream == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "notifications are not configured"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to accept websocket")
		return
	}
	h.stream.Serve(c.Request.Context(), conn, auth.Key(token), auth.Subject(token))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
