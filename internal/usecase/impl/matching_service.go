// Package impl contains the implementations of the usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"voluntree/config"
	"voluntree/internal/domain/entity"
	domainerrors "voluntree/internal/domain/errors"
	"voluntree/internal/domain/matching"
	"voluntree/internal/domain/repository"
	"voluntree/internal/domain/service"
	"voluntree/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// fallback defaults to keep matching functional when config is missing/invalid
	defaultFindMinScore    = 30
	defaultNearbyMinScore  = 20
	defaultPersistMinScore = 40
	defaultMatchLimit      = 10
	defaultNearbyRadiusKm  = 50.0
)

// matchingService implements the MatchingUsecase interface.
type matchingService struct {
	volunteerRepo repository.VolunteerRepository
	requestRepo   repository.HelpRequestRepository
	matchRepo     repository.MatchRepository
	profileRepo   repository.ProfileRepository
	deviceRepo    repository.DeviceRepository
	txManager     repository.TransactionManager
	notifySvc     service.NotificationService
	publisher     service.EventPublisher
	logger        *slog.Logger

	findMinScore    int
	nearbyMinScore  int
	persistMinScore int
	defaultLimit    int
	nearbyRadiusKm  float64
}

// NewMatchingService is the constructor for matchingService. The notification
// service and event publisher are best-effort collaborators: pass nil to run
// without push delivery or event publishing.
func NewMatchingService(
	cfg *config.MatchingConfig,
	volunteerRepo repository.VolunteerRepository,
	requestRepo repository.HelpRequestRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	deviceRepo repository.DeviceRepository,
	txManager repository.TransactionManager,
	notifySvc service.NotificationService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MatchingUsecase {
	srv := &matchingService{
		volunteerRepo:   volunteerRepo,
		requestRepo:     requestRepo,
		matchRepo:       matchRepo,
		profileRepo:     profileRepo,
		deviceRepo:      deviceRepo,
		txManager:       txManager,
		notifySvc:       notifySvc,
		publisher:       publisher,
		logger:          logger,
		findMinScore:    defaultFindMinScore,
		nearbyMinScore:  defaultNearbyMinScore,
		persistMinScore: defaultPersistMinScore,
		defaultLimit:    defaultMatchLimit,
		nearbyRadiusKm:  defaultNearbyRadiusKm,
	}

	if cfg != nil {
		if cfg.FindMinScore > 0 {
			srv.findMinScore = cfg.FindMinScore
		}
		if cfg.NearbyMinScore > 0 {
			srv.nearbyMinScore = cfg.NearbyMinScore
		}
		if cfg.PersistMinScore > 0 {
			srv.persistMinScore = cfg.PersistMinScore
		}
		if cfg.DefaultLimit > 0 {
			srv.defaultLimit = cfg.DefaultLimit
		}
		if cfg.NearbyRadiusKm > 0 {
			srv.nearbyRadiusKm = cfg.NearbyRadiusKm
		}
	}

	return srv
}

// FindMatches scores all available volunteers against a help request and
// returns the ranked candidates. Nothing is persisted.
func (srv *matchingService) FindMatches(ctx context.Context, requestID uuid.UUID, limit int) ([]*entity.MatchResult, error) {
	if limit <= 0 {
		limit = srv.defaultLimit
	}

	request, pool, exclude, err := srv.loadCandidates(ctx, requestID)
	if err != nil {
		return nil, err
	}

	results := matching.SelectCandidates(request, pool, exclude, matching.SelectOptions{
		MinScore: srv.findMinScore,
		Limit:    limit,
	})

	srv.logger.Debug("Scored candidates for request",
		"requestID", requestID, "poolSize", len(pool), "candidates", len(results))

	return results, nil
}

// FindNearbyVolunteers returns volunteers within radiusKm of the request,
// enriched with display names and avatars. Enrichment is best-effort: when
// the profile lookup fails, the candidates are returned without display data.
// Only a nil radiusKm falls back to the configured default; an explicit zero
// restricts the result to volunteers at the request location.
func (srv *matchingService) FindNearbyVolunteers(ctx context.Context, requestID uuid.UUID, radiusKm *float64, limit int) ([]*usecase.NearbyVolunteer, error) {
	radius := srv.nearbyRadiusKm
	if radiusKm != nil {
		radius = *radiusKm
	}
	if limit <= 0 {
		limit = srv.defaultLimit
	}

	request, pool, exclude, err := srv.loadCandidates(ctx, requestID)
	if err != nil {
		return nil, err
	}

	results := matching.SelectCandidates(request, pool, exclude, matching.SelectOptions{
		MinScore:      srv.nearbyMinScore,
		Limit:         limit,
		MaxDistanceKm: &radius,
	})

	nearby := make([]*usecase.NearbyVolunteer, 0, len(results))
	for _, result := range results {
		nearby = append(nearby, &usecase.NearbyVolunteer{MatchResult: result})
	}

	if len(nearby) == 0 {
		return nearby, nil
	}

	userIDs := make([]uuid.UUID, 0, len(nearby))
	for _, candidate := range nearby {
		userIDs = append(userIDs, candidate.VolunteerID)
	}

	displays, err := srv.profileRepo.FindDisplayProfiles(ctx, userIDs)
	if err != nil {
		srv.logger.Warn("Display enrichment failed, returning bare candidates",
			"requestID", requestID, "error", err)

		return nearby, nil
	}

	displayByID := make(map[uuid.UUID]*entity.VolunteerDisplay, len(displays))
	for _, display := range displays {
		displayByID[display.UserID] = display
	}

	for _, candidate := range nearby {
		if display, ok := displayByID[candidate.VolunteerID]; ok {
			candidate.DisplayName = display.DisplayName
			candidate.AvatarURL = display.AvatarURL
		}
	}

	return nearby, nil
}

// CreateMatches scores candidates and persists the top ones as pending match
// proposals. The number of proposals is capped at twice the request's remaining
// headcount so a decline still leaves a fallback.
func (srv *matchingService) CreateMatches(ctx context.Context, requestID uuid.UUID) ([]*entity.Match, error) {
	return srv.createMatches(ctx, requestID, service.MatchSourceAuto)
}

// createMatches is the shared scoring-and-persistence path behind CreateMatches
// and RunBatchMatching. The source tags the published match event with what
// triggered the run.
func (srv *matchingService) createMatches(ctx context.Context, requestID uuid.UUID, source string) ([]*entity.Match, error) {
	request, pool, exclude, err := srv.loadCandidates(ctx, requestID)
	if err != nil {
		return nil, err
	}

	// Propose at most twice the remaining headcount so a decline still
	// leaves a fallback, without flooding the request with proposals.
	ceiling := request.RemainingNeeded() * 2
	if ceiling == 0 {
		srv.logger.Debug("Request already fully matched", "requestID", requestID)

		return []*entity.Match{}, nil
	}

	limit := srv.defaultLimit
	if ceiling < limit {
		limit = ceiling
	}

	results := matching.SelectCandidates(request, pool, exclude, matching.SelectOptions{
		MinScore: srv.persistMinScore,
		Limit:    limit,
	})

	if len(results) == 0 {
		srv.logger.Debug("No candidates above persistence threshold", "requestID", requestID)

		return []*entity.Match{}, nil
	}

	now := time.Now()
	proposals := make([]*entity.Match, 0, len(results))
	for _, result := range results {
		proposals = append(proposals, &entity.Match{
			ID:          uuid.New(),
			RequestID:   requestID,
			VolunteerID: result.VolunteerID,
			Score:       result.Score,
			Status:      entity.MatchStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := srv.persistProposals(ctx, request, proposals); err != nil {
		return nil, err
	}

	srv.notifyProposals(ctx, request, proposals, source)

	return proposals, nil
}

// CreateSelectedMatches persists proposals for an explicit volunteer list,
// bypassing scoring. Curated proposals carry a zero score.
func (srv *matchingService) CreateSelectedMatches(ctx context.Context, requestID uuid.UUID, volunteerIDs []uuid.UUID) ([]*entity.Match, error) {
	if len(volunteerIDs) == 0 {
		return nil, domainerrors.ErrNoVolunteersSelected
	}

	request, err := srv.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	seen := make(map[uuid.UUID]struct{}, len(volunteerIDs))
	proposals := make([]*entity.Match, 0, len(volunteerIDs))

	for _, volunteerID := range volunteerIDs {
		if _, dup := seen[volunteerID]; dup {
			continue
		}
		seen[volunteerID] = struct{}{}

		proposals = append(proposals, &entity.Match{
			ID:          uuid.New(),
			RequestID:   requestID,
			VolunteerID: volunteerID,
			Score:       0,
			Status:      entity.MatchStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := srv.persistProposals(ctx, request, proposals); err != nil {
		return nil, err
	}

	srv.notifyProposals(ctx, request, proposals, service.MatchSourceManual)

	return proposals, nil
}

// RunBatchMatching sweeps every request that still needs volunteers and
// creates match proposals for each. One broken request never aborts the
// sweep; its failure is recorded in the report instead.
func (srv *matchingService) RunBatchMatching(ctx context.Context) (*usecase.BatchMatchingReport, error) {
	started := time.Now()

	requests, err := srv.requestRepo.FindRequestsNeedingVolunteers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests needing volunteers")
	}

	report := &usecase.BatchMatchingReport{RequestsScanned: len(requests)}

	for _, request := range requests {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "batch matching interrupted")
		}

		proposals, err := srv.createMatches(ctx, request.ID, service.MatchSourceBatch)
		if err != nil {
			srv.logger.Error("Batch matching failed for request",
				"requestID", request.ID, "error", err)
			report.Failures = append(report.Failures, usecase.BatchRequestFailure{
				RequestID: request.ID,
				Reason:    err.Error(),
			})

			continue
		}

		if len(proposals) > 0 {
			report.RequestsMatched++
			report.MatchesCreated += len(proposals)
		}
	}

	report.Elapsed = time.Since(started)

	srv.logger.Info("Batch matching run finished",
		"scanned", report.RequestsScanned,
		"matched", report.RequestsMatched,
		"created", report.MatchesCreated,
		"failures", len(report.Failures),
		"elapsed", report.Elapsed)

	return report, nil
}

// findRequest loads a help request, translating the repository sentinel into
// the API-facing not-found error.
func (srv *matchingService) findRequest(ctx context.Context, requestID uuid.UUID) (*entity.HelpRequest, error) {
	request, err := srv.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrHelpRequestNotFound.WrapMessage(requestID.String())
		}

		return nil, errors.Wrap(err, "failed to find help request")
	}

	return request, nil
}

// loadCandidates gathers everything a selection run needs: the request, the
// available volunteer pool, and the exclusion set built from the request's
// active matches.
func (srv *matchingService) loadCandidates(ctx context.Context, requestID uuid.UUID) (*entity.HelpRequest, []*entity.VolunteerProfile, map[uuid.UUID]struct{}, error) {
	request, err := srv.findRequest(ctx, requestID)
	if err != nil {
		return nil, nil, nil, err
	}

	pool, err := srv.volunteerRepo.FindAvailableVolunteers(ctx, request.RequesterID)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to load volunteer pool")
	}

	active, err := srv.matchRepo.FindActiveMatchesByRequest(ctx, requestID)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to load active matches")
	}

	exclude := make(map[uuid.UUID]struct{}, len(active))
	for _, match := range active {
		exclude[match.VolunteerID] = struct{}{}
	}

	return request, pool, exclude, nil
}

// persistProposals upserts the proposals and flips the request into matching
// status inside one transaction. Re-running with the same pairs updates the
// existing rows instead of duplicating them.
func (srv *matchingService) persistProposals(ctx context.Context, request *entity.HelpRequest, proposals []*entity.Match) error {
	if len(proposals) == 0 {
		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.NewMatchRepository()
		requestRepo := repoFactory.NewHelpRequestRepository()

		if err := matchRepo.UpsertMatches(ctx, proposals); err != nil {
			return errors.Wrap(err, "failed to upsert match proposals")
		}

		if request.Status == entity.RequestStatusOpen {
			if err := requestRepo.UpdateRequestStatus(ctx, request.ID, entity.RequestStatusMatching); err != nil {
				return errors.Wrap(err, "failed to update request status")
			}
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to persist match proposals")
	}

	srv.logger.Info("Persisted match proposals",
		"requestID", request.ID, "proposals", len(proposals))

	return nil
}

// notifyProposals publishes a match event and pushes FCM notifications to the
// proposed volunteers. Both are best-effort: failures are logged and never
// surfaced to the caller, since the proposals are already committed.
func (srv *matchingService) notifyProposals(ctx context.Context, request *entity.HelpRequest, proposals []*entity.Match, source string) {
	if len(proposals) == 0 {
		return
	}

	volunteerIDs := make([]uuid.UUID, 0, len(proposals))
	volunteerIDStrings := make([]string, 0, len(proposals))
	for _, proposal := range proposals {
		volunteerIDs = append(volunteerIDs, proposal.VolunteerID)
		volunteerIDStrings = append(volunteerIDStrings, proposal.VolunteerID.String())
	}

	if srv.publisher != nil {
		event := &service.MatchEvent{
			HelpRequestID: request.ID.String(),
			RequesterID:   request.RequesterID.String(),
			VolunteerIDs:  volunteerIDStrings,
			Source:        source,
		}

		if err := srv.publisher.PublishMatchEvent(ctx, event); err != nil {
			srv.logger.Error("Failed to publish match event",
				"requestID", request.ID, "error", err)
		}
	}

	if srv.notifySvc == nil || srv.deviceRepo == nil {
		return
	}

	tokens, err := srv.deviceRepo.FindActiveTokensByUserIDs(ctx, volunteerIDs)
	if err != nil {
		srv.logger.Error("Failed to load device tokens for proposals",
			"requestID", request.ID, "error", err)

		return
	}

	if len(tokens) == 0 {
		return
	}

	title := "New volunteer opportunity"
	body := fmt.Sprintf("A %s request near you needs %d volunteer(s)", request.Category, request.RemainingNeeded())
	data := map[string]string{
		"type":       "match_proposal",
		"request_id": request.ID.String(),
		"category":   request.Category,
		"urgency":    string(request.Urgency),
	}

	successCount, failureCount, invalidTokens, err := srv.notifySvc.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		srv.logger.Error("Failed to send match notifications",
			"requestID", request.ID, "error", err)

		return
	}

	srv.logger.Debug("Sent match notifications",
		"requestID", request.ID,
		"sent", successCount,
		"failed", failureCount,
		"invalidTokens", len(invalidTokens))
}
