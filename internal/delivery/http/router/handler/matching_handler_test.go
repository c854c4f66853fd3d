package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voluntree/internal/delivery/http/validator"
	"voluntree/internal/domain/entity"
	domainerrors "voluntree/internal/domain/errors"
	mockUsecase "voluntree/internal/mocks/usecase"
	"voluntree/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMatchingHandler(t *testing.T) (*MatchingHandler, *mockUsecase.MockMatchingUsecase) {
	uc := mockUsecase.NewMockMatchingUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewMatchingHandler(uc, logger), uc
}

func floatPtr(v float64) *float64 {
	return &v
}

func postAction(t *testing.T, handler *MatchingHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/matching/actions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandleAction(c)
	require.NoError(t, err)

	return rec
}

func TestMatchingHandler_UnknownAction(t *testing.T) {
	handler, _ := newTestMatchingHandler(t)

	rec := postAction(t, handler, `{"action":"teleport_volunteers"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "UNKNOWN_ACTION")
	for _, action := range validActions {
		assert.Contains(t, body, action)
	}
}

func TestMatchingHandler_FindMatches_Success(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	requestID := uuid.New()
	volunteerID := uuid.New()
	uc.EXPECT().
		FindMatches(mock.Anything, requestID, 5).
		Return([]*entity.MatchResult{
			{VolunteerID: volunteerID, RequestID: requestID, Score: 87},
		}, nil)

	rec := postAction(t, handler, fmt.Sprintf(`{"action":"find_matches","request_id":"%s","limit":5}`, requestID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), volunteerID.String())
	assert.Contains(t, rec.Body.String(), `"score":87`)
}

func TestMatchingHandler_FindMatches_MissingRequestID(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	rec := postAction(t, handler, `{"action":"find_matches"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	uc.AssertNotCalled(t, "FindMatches")
}

func TestMatchingHandler_FindMatches_NotFound(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	requestID := uuid.New()
	uc.EXPECT().
		FindMatches(mock.Anything, requestID, 0).
		Return(nil, domainerrors.ErrHelpRequestNotFound)

	rec := postAction(t, handler, fmt.Sprintf(`{"action":"find_matches","request_id":"%s"}`, requestID))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQUEST_NOT_FOUND")
}

func TestMatchingHandler_FindNearbyVolunteers_Success(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	requestID := uuid.New()
	uc.EXPECT().
		FindNearbyVolunteers(mock.Anything, requestID, floatPtr(25), 0).
		Return([]*usecase.NearbyVolunteer{
			{
				MatchResult: &entity.MatchResult{VolunteerID: uuid.New(), RequestID: requestID, Score: 64},
				DisplayName: "Alex",
			},
		}, nil)

	rec := postAction(t, handler, fmt.Sprintf(`{"action":"find_nearby_volunteers","request_id":"%s","radius_km":25}`, requestID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alex")
}

func TestMatchingHandler_FindNearbyVolunteers_OmittedRadiusPassesNil(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	requestID := uuid.New()
	uc.EXPECT().
		FindNearbyVolunteers(mock.Anything, requestID, (*float64)(nil), 0).
		Return([]*usecase.NearbyVolunteer{}, nil)

	rec := postAction(t, handler, fmt.Sprintf(`{"action":"find_nearby_volunteers","request_id":"%s"}`, requestID))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMatchingHandler_FindNearbyVolunteers_ZeroRadiusPassedThrough(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	requestID := uuid.New()
	uc.EXPECT().
		FindNearbyVolunteers(mock.Anything, requestID, floatPtr(0), 0).
		Return([]*usecase.NearbyVolunteer{}, nil)

	rec := postAction(t, handler, fmt.Sprintf(`{"action":"find_nearby_volunteers","request_id":"%s","radius_km":0}`, requestID))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMatchingHandler_FindNearbyVolunteers_NegativeRadius(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	rec := postAction(t, handler, fmt.Sprintf(`{"action":"find_nearby_volunteers","request_id":"%s","radius_km":-1}`, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	uc.AssertNotCalled(t, "FindNearbyVolunteers")
}

func TestMatchingHandler_NegativeLimitRejected(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	rec := postAction(t, handler, fmt.Sprintf(`{"action":"find_matches","request_id":"%s","limit":-3}`, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	uc.AssertNotCalled(t, "FindMatches")
}

func TestMatchingHandler_CreateMatches_Success(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	requestID := uuid.New()
	uc.EXPECT().
		CreateMatches(mock.Anything, requestID).
		Return([]*entity.Match{
			{ID: uuid.New(), RequestID: requestID, VolunteerID: uuid.New(), Score: 72, Status: entity.MatchStatusPending},
		}, nil)

	rec := postAction(t, handler, fmt.Sprintf(`{"action":"create_matches","request_id":"%s"}`, requestID))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), string(entity.MatchStatusPending))
}

func TestMatchingHandler_CreateSelectedMatches_EmptyList(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	rec := postAction(t, handler, fmt.Sprintf(`{"action":"create_selected_matches","request_id":"%s","volunteer_ids":[]}`, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "volunteer_ids")
	uc.AssertNotCalled(t, "CreateSelectedMatches")
}

func TestMatchingHandler_CreateSelectedMatches_Success(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	requestID := uuid.New()
	volunteerID := uuid.New()
	uc.EXPECT().
		CreateSelectedMatches(mock.Anything, requestID, []uuid.UUID{volunteerID}).
		Return([]*entity.Match{
			{ID: uuid.New(), RequestID: requestID, VolunteerID: volunteerID, Status: entity.MatchStatusPending},
		}, nil)

	rec := postAction(t, handler, fmt.Sprintf(
		`{"action":"create_selected_matches","request_id":"%s","volunteer_ids":["%s"]}`, requestID, volunteerID))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), volunteerID.String())
}

func TestMatchingHandler_RunBatchMatching_Success(t *testing.T) {
	handler, uc := newTestMatchingHandler(t)

	uc.EXPECT().
		RunBatchMatching(mock.Anything).
		Return(&usecase.BatchMatchingReport{
			RequestsScanned: 7,
			RequestsMatched: 3,
			MatchesCreated:  9,
		}, nil)

	rec := postAction(t, handler, `{"action":"run_batch_matching"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requests_scanned":7`)
	assert.Contains(t, rec.Body.String(), `"matches_created":9`)
}

func TestMatchingHandler_InvalidBody(t *testing.T) {
	handler, _ := newTestMatchingHandler(t)

	rec := postAction(t, handler, `{"action":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestMatchingHandler_HealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
