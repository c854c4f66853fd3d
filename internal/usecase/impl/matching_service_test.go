package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"voluntree/internal/domain/entity"
	domainrepository "voluntree/internal/domain/repository"
	"voluntree/internal/domain/service"
	mockRepo "voluntree/internal/mocks/repository"
	mockService "voluntree/internal/mocks/service"
	"voluntree/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchingServiceMocks struct {
	volunteerRepo *mockRepo.MockVolunteerRepository
	requestRepo   *mockRepo.MockHelpRequestRepository
	matchRepo     *mockRepo.MockMatchRepository
	profileRepo   *mockRepo.MockProfileRepository
	deviceRepo    *mockRepo.MockDeviceRepository
	txManager     *mockRepo.MockTransactionManager
	notifySvc     *mockService.MockNotificationService
	publisher     *mockService.MockEventPublisher
}

func newMatchingServiceMocks(t *testing.T) *matchingServiceMocks {
	return &matchingServiceMocks{
		volunteerRepo: mockRepo.NewMockVolunteerRepository(t),
		requestRepo:   mockRepo.NewMockHelpRequestRepository(t),
		matchRepo:     mockRepo.NewMockMatchRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		deviceRepo:    mockRepo.NewMockDeviceRepository(t),
		txManager:     mockRepo.NewMockTransactionManager(t),
		notifySvc:     mockService.NewMockNotificationService(t),
		publisher:     mockService.NewMockEventPublisher(t),
	}
}

// createTestMatchingService wires a service without push delivery or event
// publishing, which keeps tests of the core paths free of best-effort noise.
func createTestMatchingService(t *testing.T) (usecase.MatchingUsecase, *matchingServiceMocks) {
	mocks := newMatchingServiceMocks(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewMatchingService(
		nil,
		mocks.volunteerRepo,
		mocks.requestRepo,
		mocks.matchRepo,
		mocks.profileRepo,
		mocks.deviceRepo,
		mocks.txManager,
		nil,
		nil,
		logger,
	)

	return svc, mocks
}

// createNotifyingMatchingService wires the full service including the
// notification and event-publishing collaborators.
func createNotifyingMatchingService(t *testing.T) (usecase.MatchingUsecase, *matchingServiceMocks) {
	mocks := newMatchingServiceMocks(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewMatchingService(
		nil,
		mocks.volunteerRepo,
		mocks.requestRepo,
		mocks.matchRepo,
		mocks.profileRepo,
		mocks.deviceRepo,
		mocks.txManager,
		mocks.notifySvc,
		mocks.publisher,
		logger,
	)

	return svc, mocks
}

func floatPtr(v float64) *float64 {
	return &v
}

// testHelpRequest builds an open request at the origin needing two volunteers.
func testHelpRequest() *entity.HelpRequest {
	return &entity.HelpRequest{
		ID:               uuid.New(),
		RequesterID:      uuid.New(),
		Category:         "healthcare",
		Urgency:          entity.UrgencyMedium,
		Latitude:         floatPtr(0.0),
		Longitude:        floatPtr(0.0),
		VolunteersNeeded: 2,
		Status:           entity.RequestStatusOpen,
	}
}

// expertVolunteer builds an available expert at the origin, which scores 100
// against testHelpRequest.
func expertVolunteer() *entity.VolunteerProfile {
	return &entity.VolunteerProfile{
		UserID:          uuid.New(),
		Skills:          []string{"medical", "healthcare"},
		Latitude:        floatPtr(0.0),
		Longitude:       floatPtr(0.0),
		ServiceRadiusKm: 10,
		ExperienceTier:  entity.TierExpert,
		Rating:          5,
		IsAvailable:     true,
	}
}

// expectTransaction arranges the transaction manager to run the given function
// against a factory backed by the supplied per-transaction repositories.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	matchRepo domainrepository.MatchRepository,
	requestRepo domainrepository.HelpRequestRepository,
) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewMatchRepository().Return(matchRepo)
	factory.EXPECT().NewHelpRequestRepository().Return(requestRepo)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(domainrepository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestMatchingService_FindMatches_Success(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	strong := expertVolunteer()
	weaker := expertVolunteer()
	weaker.ExperienceTier = entity.TierBeginner
	weaker.Rating = 0

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).
		Return([]*entity.VolunteerProfile{weaker, strong}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)

	results, err := svc.FindMatches(ctx, request.ID, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, strong.UserID, results[0].VolunteerID)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
	for _, result := range results {
		assert.GreaterOrEqual(t, result.Score, 30)
	}
}

func TestMatchingService_FindMatches_ExcludesActiveMatches(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	alreadyMatched := expertVolunteer()
	fresh := expertVolunteer()

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).
		Return([]*entity.VolunteerProfile{alreadyMatched, fresh}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).
		Return([]*entity.Match{
			{RequestID: request.ID, VolunteerID: alreadyMatched.UserID, Status: entity.MatchStatusPending},
		}, nil)

	results, err := svc.FindMatches(ctx, request.ID, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, fresh.UserID, results[0].VolunteerID)
}

func TestMatchingService_FindMatches_RespectsLimit(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	pool := make([]*entity.VolunteerProfile, 0, 5)
	for range 5 {
		pool = append(pool, expertVolunteer())
	}

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).Return(pool, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)

	results, err := svc.FindMatches(ctx, request.ID, 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestMatchingService_FindNearbyVolunteers_EnrichesDisplayData(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	near := expertVolunteer()
	// Geographically hopeless even with a big personal radius.
	far := expertVolunteer()
	far.Latitude = floatPtr(5.0)
	far.ServiceRadiusKm = 1000

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).
		Return([]*entity.VolunteerProfile{near, far}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)
	mocks.profileRepo.EXPECT().FindDisplayProfiles(ctx, []uuid.UUID{near.UserID}).
		Return([]*entity.VolunteerDisplay{
			{UserID: near.UserID, DisplayName: "Alex", AvatarURL: "https://cdn.example.com/alex.png"},
		}, nil)

	nearby, err := svc.FindNearbyVolunteers(ctx, request.ID, floatPtr(50), 10)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, near.UserID, nearby[0].VolunteerID)
	assert.Equal(t, "Alex", nearby[0].DisplayName)
	assert.Equal(t, "https://cdn.example.com/alex.png", nearby[0].AvatarURL)
}

func TestMatchingService_FindNearbyVolunteers_EnrichmentFailureDegrades(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	near := expertVolunteer()

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).
		Return([]*entity.VolunteerProfile{near}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)
	mocks.profileRepo.EXPECT().FindDisplayProfiles(ctx, []uuid.UUID{near.UserID}).
		Return(nil, assert.AnError)

	nearby, err := svc.FindNearbyVolunteers(ctx, request.ID, nil, 0)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Empty(t, nearby[0].DisplayName)
	assert.Empty(t, nearby[0].AvatarURL)
}

func TestMatchingService_FindNearbyVolunteers_ZeroRadiusKeepsOnlyOnSite(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	onSite := expertVolunteer()
	// Roughly 30 km north with a personal radius wide enough to score high.
	remote := expertVolunteer()
	remote.Latitude = floatPtr(0.27)
	remote.ServiceRadiusKm = 100

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).
		Return([]*entity.VolunteerProfile{onSite, remote}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)
	mocks.profileRepo.EXPECT().FindDisplayProfiles(ctx, []uuid.UUID{onSite.UserID}).
		Return(nil, nil)

	// An explicit zero radius must not widen to the default.
	nearby, err := svc.FindNearbyVolunteers(ctx, request.ID, floatPtr(0), 10)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, onSite.UserID, nearby[0].VolunteerID)
}

func TestMatchingService_CreateMatches_Success(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest() // needs 2, none matched: cap is 4
	pool := make([]*entity.VolunteerProfile, 0, 6)
	for range 6 {
		pool = append(pool, expertVolunteer())
	}

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).Return(pool, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txRequestRepo := mockRepo.NewMockHelpRequestRepository(t)
	txMatchRepo.EXPECT().UpsertMatches(ctx, mock.Anything).Return(nil)
	txRequestRepo.EXPECT().UpdateRequestStatus(ctx, request.ID, entity.RequestStatusMatching).Return(nil)
	expectTransaction(t, mocks.txManager, txMatchRepo, txRequestRepo)

	proposals, err := svc.CreateMatches(ctx, request.ID)
	require.NoError(t, err)
	require.Len(t, proposals, 4)
	for _, proposal := range proposals {
		assert.Equal(t, request.ID, proposal.RequestID)
		assert.Equal(t, entity.MatchStatusPending, proposal.Status)
		assert.GreaterOrEqual(t, proposal.Score, 40)
	}
}

func TestMatchingService_CreateMatches_FullyMatchedReturnsEmpty(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	request.VolunteersMatched = request.VolunteersNeeded

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).
		Return([]*entity.VolunteerProfile{expertVolunteer()}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)

	proposals, err := svc.CreateMatches(ctx, request.ID)
	require.NoError(t, err)
	assert.Empty(t, proposals)
	mocks.txManager.AssertNotCalled(t, "Execute")
}

func TestMatchingService_CreateMatches_SecondRunCreatesNoDuplicates(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	volunteer := expertVolunteer()
	pool := []*entity.VolunteerProfile{volunteer}

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil).Times(2)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).Return(pool, nil).Times(2)

	// First run sees no prior matches, second run sees the persisted proposal.
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil).Once()
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).
		Return([]*entity.Match{
			{RequestID: request.ID, VolunteerID: volunteer.UserID, Status: entity.MatchStatusPending},
		}, nil).Once()

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txRequestRepo := mockRepo.NewMockHelpRequestRepository(t)
	txMatchRepo.EXPECT().UpsertMatches(ctx, mock.Anything).Return(nil).Once()
	txRequestRepo.EXPECT().UpdateRequestStatus(ctx, request.ID, entity.RequestStatusMatching).Return(nil).Once()
	expectTransaction(t, mocks.txManager, txMatchRepo, txRequestRepo)

	first, err := svc.CreateMatches(ctx, request.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.CreateMatches(ctx, request.ID)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestMatchingService_CreateMatches_SkipsStatusFlipWhenAlreadyMatching(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	request.Status = entity.RequestStatusMatching

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).
		Return([]*entity.VolunteerProfile{expertVolunteer()}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txRequestRepo := mockRepo.NewMockHelpRequestRepository(t)
	txMatchRepo.EXPECT().UpsertMatches(ctx, mock.Anything).Return(nil)
	expectTransaction(t, mocks.txManager, txMatchRepo, txRequestRepo)

	proposals, err := svc.CreateMatches(ctx, request.ID)
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	txRequestRepo.AssertNotCalled(t, "UpdateRequestStatus")
}

func TestMatchingService_CreateMatches_PublishesAndNotifies(t *testing.T) {
	svc, mocks := createNotifyingMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	volunteer := expertVolunteer()

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).
		Return([]*entity.VolunteerProfile{volunteer}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txRequestRepo := mockRepo.NewMockHelpRequestRepository(t)
	txMatchRepo.EXPECT().UpsertMatches(ctx, mock.Anything).Return(nil)
	txRequestRepo.EXPECT().UpdateRequestStatus(ctx, request.ID, entity.RequestStatusMatching).Return(nil)
	expectTransaction(t, mocks.txManager, txMatchRepo, txRequestRepo)

	mocks.publisher.EXPECT().
		PublishMatchEvent(ctx, mock.MatchedBy(func(event *service.MatchEvent) bool {
			return event.HelpRequestID == request.ID.String() &&
				event.Source == service.MatchSourceAuto &&
				len(event.VolunteerIDs) == 1
		})).
		Return(nil)
	mocks.deviceRepo.EXPECT().
		FindActiveTokensByUserIDs(ctx, []uuid.UUID{volunteer.UserID}).
		Return([]string{"token-1"}, nil)
	mocks.notifySvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)

	proposals, err := svc.CreateMatches(ctx, request.ID)
	require.NoError(t, err)
	require.Len(t, proposals, 1)
}

func TestMatchingService_CreateSelectedMatches_Success(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	volunteerA := uuid.New()
	volunteerB := uuid.New()

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txRequestRepo := mockRepo.NewMockHelpRequestRepository(t)
	txMatchRepo.EXPECT().UpsertMatches(ctx, mock.Anything).Return(nil)
	txRequestRepo.EXPECT().UpdateRequestStatus(ctx, request.ID, entity.RequestStatusMatching).Return(nil)
	expectTransaction(t, mocks.txManager, txMatchRepo, txRequestRepo)

	// Duplicate IDs in the input collapse to one proposal each.
	proposals, err := svc.CreateSelectedMatches(ctx, request.ID, []uuid.UUID{volunteerA, volunteerB, volunteerA})
	require.NoError(t, err)
	require.Len(t, proposals, 2)
	for _, proposal := range proposals {
		assert.Equal(t, entity.MatchStatusPending, proposal.Status)
		assert.Zero(t, proposal.Score)
	}
}

func TestMatchingService_RunBatchMatching_AggregatesAcrossRequests(t *testing.T) {
	svc, mocks := createTestMatchingService(t)

	ctx := context.Background()
	healthy := testHelpRequest()
	broken := testHelpRequest()
	volunteer := expertVolunteer()

	mocks.requestRepo.EXPECT().FindRequestsNeedingVolunteers(ctx).
		Return([]*entity.HelpRequest{healthy, broken}, nil)

	mocks.requestRepo.EXPECT().FindRequestByID(ctx, healthy.ID).Return(healthy, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, healthy.RequesterID).
		Return([]*entity.VolunteerProfile{volunteer}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, healthy.ID).Return(nil, nil)

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txRequestRepo := mockRepo.NewMockHelpRequestRepository(t)
	txMatchRepo.EXPECT().UpsertMatches(ctx, mock.Anything).Return(nil)
	txRequestRepo.EXPECT().UpdateRequestStatus(ctx, healthy.ID, entity.RequestStatusMatching).Return(nil)
	expectTransaction(t, mocks.txManager, txMatchRepo, txRequestRepo)

	// The second request fails at pool load; the sweep must keep going.
	mocks.requestRepo.EXPECT().FindRequestByID(ctx, broken.ID).Return(broken, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, broken.RequesterID).
		Return(nil, assert.AnError)

	report, err := svc.RunBatchMatching(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.RequestsScanned)
	assert.Equal(t, 1, report.RequestsMatched)
	assert.Equal(t, 1, report.MatchesCreated)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, broken.ID, report.Failures[0].RequestID)
}

func TestMatchingService_RunBatchMatching_PublishesBatchSource(t *testing.T) {
	svc, mocks := createNotifyingMatchingService(t)

	ctx := context.Background()
	request := testHelpRequest()
	volunteer := expertVolunteer()

	mocks.requestRepo.EXPECT().FindRequestsNeedingVolunteers(ctx).
		Return([]*entity.HelpRequest{request}, nil)
	mocks.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	mocks.volunteerRepo.EXPECT().FindAvailableVolunteers(ctx, request.RequesterID).
		Return([]*entity.VolunteerProfile{volunteer}, nil)
	mocks.matchRepo.EXPECT().FindActiveMatchesByRequest(ctx, request.ID).Return(nil, nil)

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txRequestRepo := mockRepo.NewMockHelpRequestRepository(t)
	txMatchRepo.EXPECT().UpsertMatches(ctx, mock.Anything).Return(nil)
	txRequestRepo.EXPECT().UpdateRequestStatus(ctx, request.ID, entity.RequestStatusMatching).Return(nil)
	expectTransaction(t, mocks.txManager, txMatchRepo, txRequestRepo)

	mocks.publisher.EXPECT().
		PublishMatchEvent(ctx, mock.MatchedBy(func(event *service.MatchEvent) bool {
			return event.Source == service.MatchSourceBatch
		})).
		Return(nil)
	mocks.deviceRepo.EXPECT().
		FindActiveTokensByUserIDs(ctx, []uuid.UUID{volunteer.UserID}).
		Return(nil, nil)

	report, err := svc.RunBatchMatching(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RequestsMatched)
}
