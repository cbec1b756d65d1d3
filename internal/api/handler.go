package api

import (
	"context"
	"net/http"

	"github.com/Black-png/trackers-api/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	Readiness(ctx context.Context) (entity.Readiness, error)
	Packages(ctx context.Context) ([]entity.PackageWithOperations, error)
	NotificationTemplates(ctx context.Context, kind, channel string) ([]entity.TemplateView, error)
	PreviewTemplate(kind, channel string, values map[string]string) (string, error)
}

// @title Trackers reference data API
// @version 1.0
// @description Read-only view of the reference data seeded at startup.
// @BasePath /api

type Handler struct {
	s             Service
	exposeDetails bool
}

func NewHandler(s Service, exposeDetails bool) *Handler {
	return &Handler{
		s:             s,
		exposeDetails: exposeDetails,
	}
}

// Health godoc
// @Summary      Liveness check
// @Tags         health
// @Success      200 {string} string "ok"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	_, err := w.Write([]byte("ok\n"))
	if err != nil {
		SendErr(r.Context(), w, err, h.exposeDetails)
	}
}

// Ready godoc
// @Summary      Readiness check
// @Description  Ready once every migration is applied and the last seeding run succeeded
// @Tags         health
// @Produce      json
// @Success      200 {object} entity.Readiness
// @Failure      503 {object} entity.Readiness
// @Failure      500 {object} ResponseError
// @Router       /ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	readiness, err := h.s.Readiness(ctx)
	if err != nil {
		SendErr(ctx, w, err, h.exposeDetails)
		return
	}

	code := http.StatusOK
	if !readiness.Ready() {
		code = http.StatusServiceUnavailable
	}

	SendJSON(ctx, w, code, readiness)
}

// Packages godoc
// @Summary      Commercial packages
// @Description  Packages ordered by level with the operations they unlock
// @Tags         reference
// @Produce      json
// @Success      200 {array} entity.PackageWithOperations
// @Failure      500 {object} ResponseError
// @Router       /packages [get]
func (h *Handler) Packages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	packages, err := h.s.Packages(ctx)
	if err != nil {
		SendErr(ctx, w, err, h.exposeDetails)
		return
	}

	if packages == nil {
		packages = []entity.PackageWithOperations{}
	}

	SendJSON(ctx, w, http.StatusOK, packages)
}

// NotificationTemplates godoc
// @Summary      Notification templates
// @Tags         reference
// @Produce      json
// @Param        kind     query string false "Notification kind, e.g. DowntimeStarted"
// @Param        channel  query string false "in_app or email"
// @Success      200 {array} entity.TemplateView
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /notification-templates [get]
func (h *Handler) NotificationTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	templates, err := h.s.NotificationTemplates(ctx, q.Get("kind"), q.Get("channel"))
	if err != nil {
		SendErr(ctx, w, err, h.exposeDetails)
		return
	}

	SendJSON(ctx, w, http.StatusOK, templates)
}

type PreviewResponse struct {
	Text string `json:"text"`
}

// PreviewTemplate godoc
// @Summary      Render a notification template
// @Description  Every query parameter other than kind and channel is used as a placeholder value
// @Tags         reference
// @Produce      json
// @Param        kind     query string true "Notification kind"
// @Param        channel  query string true "in_app or email"
// @Success      200 {object} PreviewResponse
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /notification-templates/preview [get]
func (h *Handler) PreviewTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	values := make(map[string]string, len(q))

	for k := range q {
		if k == "kind" || k == "channel" {
			continue
		}

		values[k] = q.Get(k)
	}

	text, err := h.s.PreviewTemplate(q.Get("kind"), q.Get("channel"), values)
	if err != nil {
		SendErr(ctx, w, err, h.exposeDetails)
		return
	}

	SendJSON(ctx, w, http.StatusOK, PreviewResponse{Text: text})
}
