package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"casework/internal/featureswitch"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/platform/httputil"
	"casework/pkg/platform/middleware/admin"
	"casework/pkg/platform/middleware/request"
)

// Service defines the feature switch operations exposed over HTTP.
type Service interface {
	List(ctx context.Context) ([]featureswitch.Switch, error)
	Get(ctx context.Context, name featureswitch.Name) (featureswitch.Switch, error)
	Set(ctx context.Context, name featureswitch.Name, enabled bool) (featureswitch.Switch, error)
	Reset(ctx context.Context, name featureswitch.Name) (featureswitch.Switch, error)
}

// Handler serves the operator endpoints for runtime switches.
type Handler struct {
	logger   *slog.Logger
	switches Service
	admin    admin.Verifier
}

func New(switches Service, adminToken admin.Verifier, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		switches: switches,
		admin:    adminToken,
	}
}

type setSwitchRequest struct {
	Enabled *bool `json:"enabled"`
}

func (r *setSwitchRequest) Validate() error {
	if r.Enabled == nil {
		return dErrors.New(dErrors.CodeValidation, "enabled is required")
	}
	return nil
}

type listResponse struct {
	Switches []featureswitch.Switch `json:"switches"`
}

// Register mounts the admin routes behind the admin token.
func (h *Handler) Register(r chi.Router) {
	r.Route("/admin/feature-switches", func(r chi.Router) {
		r.Use(admin.RequireAdminToken(h.admin, h.logger))
		r.Get("/", h.handleList)
		r.Get("/{name}", h.handleGet)
		r.Put("/{name}", h.handleSet)
		r.Delete("/{name}", h.handleReset)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switches, err := h.switches.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list feature switches",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listResponse{Switches: switches})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sw, err := h.switches.Get(ctx, featureswitch.Name(chi.URLParam(r, "name")))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sw)
}

func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[setSwitchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	sw, err := h.switches.Set(ctx, featureswitch.Name(chi.URLParam(r, "name")), *req.Enabled)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to set feature switch",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sw)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sw, err := h.switches.Reset(ctx, featureswitch.Name(chi.URLParam(r, "name")))
	if err != nil {
		h.logger.WarnContext(ctx, "failed to reset feature switch",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sw)
}
