package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"payfirm/internal/domain"
	"payfirm/internal/usecase"
	mock_usecase "payfirm/internal/usecase/mocks"
)

func TestReconcileUseCase_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roster := []domain.RosterEntry{
		{Username: "johndoe", FullName: "John Doe"},
		{Username: "janeroe", FullName: "Jane Roe"},
	}
	rows := []domain.NotificationRow{
		{Sender: "service@paypal.com", Subject: "John Doe sent you $20.00 USD"},
		{Sender: "venmo@venmo.com", Subject: "John Doe paid you $15.00"},
		{Sender: "no-reply@wise.com", Subject: "You've received USD 50.00 from Jane Roe"},
		{Sender: "venmo@venmo.com", Subject: "Some Stranger paid you $5.00"},
	}

	rosterRepo := mock_usecase.NewMockRosterRepository(ctrl)
	rosterRepo.EXPECT().LoadRoster(gomock.Any(), "roster.csv").Return(roster, nil)

	doc := mock_usecase.NewMockDocument(ctrl)
	doc.EXPECT().Rows(gomock.Any()).Return(rows, nil)

	var savedRun domain.RunEntry
	history := mock_usecase.NewMockHistoryStore(ctrl)
	history.EXPECT().SaveRun(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry domain.RunEntry) error {
			savedRun = entry
			return nil
		})

	var cachedSnapshot domain.RosterSnapshot
	cache := mock_usecase.NewMockRosterCache(ctrl)
	cache.EXPECT().SaveRoster(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, snapshot domain.RosterSnapshot) error {
			cachedSnapshot = snapshot
			return nil
		})

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	uc := usecase.NewReconcileUseCase(rosterRepo, newTestExtractor(doc), history, cache, nil)

	outcome, err := uc.Reconcile(context.Background(), usecase.ReconcileOptions{
		RosterPath: "roster.csv",
		From:       from,
	})
	assert.NoError(t, err)

	// Jane's 50 outranks John's 35.
	assert.Len(t, outcome.Results, 2)
	assert.Equal(t, "janeroe", outcome.Results[0].Username)
	assert.Equal(t, "50.00", outcome.Results[0].TotalAmount.StringFixed(2))
	assert.Equal(t, "johndoe", outcome.Results[1].Username)
	assert.Equal(t, "35.00", outcome.Results[1].TotalAmount.StringFixed(2))
	assert.Equal(t, 2, outcome.Results[1].PaymentCount)
	assert.Equal(t, []domain.Platform{domain.PlatformPayPal, domain.PlatformVenmo}, outcome.Results[1].Platforms)
	assert.Equal(t, []string{"Some Stranger"}, outcome.Unmatched)

	// The run was recorded with the filter bounds as submitted.
	assert.NotEmpty(t, savedRun.ID)
	assert.False(t, savedRun.RunAt.IsZero())
	assert.Equal(t, "2026-08-01T00:00:00Z", savedRun.FromFilter)
	assert.Empty(t, savedRun.ToFilter)
	assert.Equal(t, outcome.Results, savedRun.Results)
	assert.Equal(t, outcome.Unmatched, savedRun.Unmatched)

	// The freshly loaded roster was cached.
	assert.Equal(t, roster, cachedSnapshot.Rows)
	assert.Equal(t, "roster.csv", cachedSnapshot.FileName)
}

func TestReconcileUseCase_RosterFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rosterRepo := mock_usecase.NewMockRosterRepository(ctrl)
	rosterRepo.EXPECT().LoadRoster(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("roster file bad.csv: %w", domain.ErrInvalidFormat))

	doc := mock_usecase.NewMockDocument(ctrl)
	uc := usecase.NewReconcileUseCase(rosterRepo, newTestExtractor(doc), nil, nil, nil)

	_, err := uc.Reconcile(context.Background(), usecase.ReconcileOptions{RosterPath: "bad.csv"})
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestReconcileUseCase_ExtractionFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rosterRepo := mock_usecase.NewMockRosterRepository(ctrl)
	rosterRepo.EXPECT().LoadRoster(gomock.Any(), gomock.Any()).
		Return([]domain.RosterEntry{{Username: "johndoe", FullName: "John Doe"}}, nil)

	doc := mock_usecase.NewMockDocument(ctrl)
	doc.EXPECT().Rows(gomock.Any()).Return(nil, domain.ErrNoDocument)

	uc := usecase.NewReconcileUseCase(rosterRepo, newTestExtractor(doc), nil, nil, nil)

	_, err := uc.Reconcile(context.Background(), usecase.ReconcileOptions{RosterPath: "roster.csv"})
	assert.ErrorIs(t, err, domain.ErrNoDocument)
}

func TestReconcileUseCase_HistorySaveFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rosterRepo := mock_usecase.NewMockRosterRepository(ctrl)
	rosterRepo.EXPECT().LoadRoster(gomock.Any(), gomock.Any()).
		Return([]domain.RosterEntry{{Username: "johndoe", FullName: "John Doe"}}, nil)

	doc := mock_usecase.NewMockDocument(ctrl)
	doc.EXPECT().Rows(gomock.Any()).Return([]domain.NotificationRow{
		{Sender: "service@paypal.com", Subject: "John Doe sent you $20.00 USD"},
	}, nil)

	history := mock_usecase.NewMockHistoryStore(ctrl)
	history.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	uc := usecase.NewReconcileUseCase(rosterRepo, newTestExtractor(doc), history, nil, nil)

	outcome, err := uc.Reconcile(context.Background(), usecase.ReconcileOptions{RosterPath: "roster.csv"})
	assert.NoError(t, err)
	assert.Len(t, outcome.Results, 1)
}

func TestReconcileUseCase_CachedRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("reuses the cached roster without loading", func(t *testing.T) {
		// No LoadRoster expectation: the repository must not be touched.
		rosterRepo := mock_usecase.NewMockRosterRepository(ctrl)

		cache := mock_usecase.NewMockRosterCache(ctrl)
		cache.EXPECT().LoadRoster(gomock.Any()).Return(&domain.RosterSnapshot{
			Rows:     []domain.RosterEntry{{Username: "johndoe", FullName: "John Doe"}},
			FileName: "roster.csv",
		}, nil)

		doc := mock_usecase.NewMockDocument(ctrl)
		doc.EXPECT().Rows(gomock.Any()).Return([]domain.NotificationRow{
			{Sender: "service@paypal.com", Subject: "John Doe sent you $20.00 USD"},
		}, nil)

		uc := usecase.NewReconcileUseCase(rosterRepo, newTestExtractor(doc), nil, cache, nil)

		outcome, err := uc.Reconcile(context.Background(), usecase.ReconcileOptions{UseCachedRoster: true})
		assert.NoError(t, err)
		assert.Len(t, outcome.Results, 1)
	})

	t.Run("fails when nothing is cached", func(t *testing.T) {
		rosterRepo := mock_usecase.NewMockRosterRepository(ctrl)

		cache := mock_usecase.NewMockRosterCache(ctrl)
		cache.EXPECT().LoadRoster(gomock.Any()).Return(nil, nil)

		doc := mock_usecase.NewMockDocument(ctrl)
		uc := usecase.NewReconcileUseCase(rosterRepo, newTestExtractor(doc), nil, cache, nil)

		_, err := uc.Reconcile(context.Background(), usecase.ReconcileOptions{UseCachedRoster: true})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no cached roster")
	})
}
