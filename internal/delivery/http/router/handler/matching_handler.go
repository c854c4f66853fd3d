package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"voluntree/internal/delivery/http/response"
	domainerrors "voluntree/internal/domain/errors"
	"voluntree/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Matching actions accepted by the dispatch endpoint.
const (
	ActionFindMatches           = "find_matches"
	ActionFindNearbyVolunteers  = "find_nearby_volunteers"
	ActionCreateMatches         = "create_matches"
	ActionCreateSelectedMatches = "create_selected_matches"
	ActionRunBatchMatching      = "run_batch_matching"
)

// validActions lists every accepted action, in the order reported to callers.
var validActions = []string{
	ActionFindMatches,
	ActionFindNearbyVolunteers,
	ActionCreateMatches,
	ActionCreateSelectedMatches,
	ActionRunBatchMatching,
}

// MatchingHandler holds dependencies for matching-related handlers
type MatchingHandler struct {
	uc     usecase.MatchingUsecase
	logger *slog.Logger
}

// NewMatchingHandler is the constructor for MatchingHandler
func NewMatchingHandler(uc usecase.MatchingUsecase, logger *slog.Logger) *MatchingHandler {
	return &MatchingHandler{
		uc:     uc,
		logger: logger,
	}
}

// MatchingActionRequest represents the request body for the matching action endpoint.
// RadiusKm is a pointer so an explicit 0 is distinguishable from an absent field.
type MatchingActionRequest struct {
	Action       string      `json:"action" validate:"required"`
	RequestID    *uuid.UUID  `json:"request_id,omitempty"`
	Limit        int         `json:"limit,omitempty" validate:"gte=0"`
	RadiusKm     *float64    `json:"radius_km,omitempty" validate:"omitempty,gte=0"`
	VolunteerIDs []uuid.UUID `json:"volunteer_ids,omitempty"`
}

// HandleAction dispatches a matching action to the corresponding use case
func (h *MatchingHandler) HandleAction(c echo.Context) error {
	var req MatchingActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid matching action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	switch req.Action {
	case ActionFindMatches:
		return h.findMatches(c, &req)
	case ActionFindNearbyVolunteers:
		return h.findNearbyVolunteers(c, &req)
	case ActionCreateMatches:
		return h.createMatches(c, &req)
	case ActionCreateSelectedMatches:
		return h.createSelectedMatches(c, &req)
	case ActionRunBatchMatching:
		return h.runBatchMatching(c)
	default:
		return response.BadRequest(c, "UNKNOWN_ACTION",
			"Unknown action, expected one of: "+strings.Join(validActions, ", "))
	}
}

func (h *MatchingHandler) findMatches(c echo.Context, req *MatchingActionRequest) error {
	requestID, err := h.requireRequestID(c, req)
	if err != nil {
		return err
	}

	results, err := h.uc.FindMatches(c.Request().Context(), requestID, req.Limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Candidates retrieved successfully")
}

func (h *MatchingHandler) findNearbyVolunteers(c echo.Context, req *MatchingActionRequest) error {
	requestID, err := h.requireRequestID(c, req)
	if err != nil {
		return err
	}

	volunteers, err := h.uc.FindNearbyVolunteers(c.Request().Context(), requestID, req.RadiusKm, req.Limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, volunteers, "Nearby volunteers retrieved successfully")
}

func (h *MatchingHandler) createMatches(c echo.Context, req *MatchingActionRequest) error {
	requestID, err := h.requireRequestID(c, req)
	if err != nil {
		return err
	}

	matches, err := h.uc.CreateMatches(c.Request().Context(), requestID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, matches, "Match proposals created successfully")
}

func (h *MatchingHandler) createSelectedMatches(c echo.Context, req *MatchingActionRequest) error {
	requestID, err := h.requireRequestID(c, req)
	if err != nil {
		return err
	}

	if len(req.VolunteerIDs) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "volunteer_ids must not be empty")
	}

	matches, err := h.uc.CreateSelectedMatches(c.Request().Context(), requestID, req.VolunteerIDs)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, matches, "Selected match proposals created successfully")
}

func (h *MatchingHandler) runBatchMatching(c echo.Context) error {
	report, err := h.uc.RunBatchMatching(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Batch matching completed")
}

// requireRequestID validates that the action carries a help request ID
func (h *MatchingHandler) requireRequestID(c echo.Context, req *MatchingActionRequest) (uuid.UUID, error) {
	if req.RequestID == nil || *req.RequestID == uuid.Nil {
		return uuid.Nil, response.BadRequest(c, "VALIDATION_ERROR", "request_id is required")
	}

	return *req.RequestID, nil
}

// handleAppError handles application errors
func (h *MatchingHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
