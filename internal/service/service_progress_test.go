// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/mock"
	"github.com/paydev-web/dmlabs-client/internal/store"
	"github.com/paydev-web/dmlabs-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testCatalog is the fixture used across the progress and access tests:
// two tools in stage 1, one in stage 2, one premium tool in stage 3, and a
// single tool in the final stage. Stages 4 and 5 are deliberately left
// empty of tools.
func testCatalog() *models.Catalog {
	return &models.Catalog{
		Tools: []models.ToolDescriptor{
			{ID: "analyzer", Name: "Idea Analyzer", Plan: models.PlanFree, Stage: 1},
			{ID: "competitor-scan", Name: "Competitor Scan", Plan: models.PlanFree, Stage: 1},
			{ID: "offer-builder", Name: "Offer Builder", Plan: models.PlanFree, Stage: 2},
			{ID: "landing-gen", Name: "Landing Generator", Plan: models.PlanPremium, Stage: 3},
			{ID: "scale-planner", Name: "Scale Planner", Plan: models.PlanPremium, Stage: 6},
		},
		Stages: map[int]models.StageMetadata{
			1: {Title: "Find your idea", Plan: models.PlanFree},
			2: {Title: "Build the offer", Plan: models.PlanFree},
			3: {Title: "Launch", Plan: models.PlanPremium},
			6: {Title: "Scale", Plan: models.PlanPremium},
		},
	}
}

// fakeProgressRepo keeps the record in memory so multi-step scenarios read
// their own writes.
type fakeProgressRepo struct {
	record *models.ProgressRecord
}

func (f *fakeProgressRepo) Get(context.Context) (models.ProgressRecord, error) {
	if f.record == nil {
		return models.ProgressRecord{}, store.ErrRecordNotFound
	}
	return *f.record, nil
}

func (f *fakeProgressRepo) Save(_ context.Context, record models.ProgressRecord) error {
	f.record = &record
	return nil
}

func (f *fakeProgressRepo) Delete(context.Context) error {
	f.record = nil
	return nil
}

func newTestProgressSvc(repo store.ProgressRepository) ClientProgressService {
	storages := &store.ClientStorages{Progress: repo}
	return NewClientProgressService(storages, logger.Nop())
}

func TestProgressService_GetProgress_Defaults(t *testing.T) {
	svc := newTestProgressSvc(&fakeProgressRepo{})

	record, err := svc.GetProgress(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.ProgressSchemaVersion, record.SchemaVersion)
	assert.Empty(t, record.CompletedTools)
	assert.Equal(t, 1, record.CurrentStage)
	assert.True(t, record.FirstTime)
}

func TestProgressService_GetProgress_NormalizesStoredRecord(t *testing.T) {
	repo := &fakeProgressRepo{record: &models.ProgressRecord{
		CompletedTools: nil,
		CurrentStage:   42,
	}}
	svc := newTestProgressSvc(repo)

	record, err := svc.GetProgress(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.ProgressSchemaVersion, record.SchemaVersion)
	assert.NotNil(t, record.CompletedTools)
	assert.Equal(t, models.StageCount, record.CurrentStage)
}

func TestProgressService_MarkToolCompleted_Idempotent(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := newTestProgressSvc(repo)
	ctx := context.Background()
	cat := testCatalog()

	first, err := svc.MarkToolCompleted(ctx, cat, "analyzer")
	require.NoError(t, err)
	assert.Equal(t, []string{"analyzer"}, first.CompletedTools)
	assert.Equal(t, "analyzer", first.LastToolOpened)
	assert.Equal(t, 1, first.CurrentStage)

	// marking again must not duplicate the entry or move anything
	second, err := svc.MarkToolCompleted(ctx, cat, "analyzer")
	require.NoError(t, err)
	assert.Equal(t, first.CompletedTools, second.CompletedTools)
	assert.Equal(t, first.CurrentStage, second.CurrentStage)
}

func TestProgressService_MarkToolCompleted_StageAdvance(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := newTestProgressSvc(repo)
	ctx := context.Background()
	cat := testCatalog()

	record, err := svc.MarkToolCompleted(ctx, cat, "analyzer")
	require.NoError(t, err)
	assert.Equal(t, 1, record.CurrentStage, "stage holds until every tool is done")

	record, err = svc.MarkToolCompleted(ctx, cat, "competitor-scan")
	require.NoError(t, err)
	assert.Equal(t, 2, record.CurrentStage, "finishing the stage advances the journey")

	record, err = svc.MarkToolCompleted(ctx, cat, "offer-builder")
	require.NoError(t, err)
	assert.Equal(t, 3, record.CurrentStage)
}

func TestProgressService_MarkToolCompleted_StageNeverDecreases(t *testing.T) {
	// the user is already at stage 3 but left a stage-1 tool unfinished
	repo := &fakeProgressRepo{record: &models.ProgressRecord{
		SchemaVersion:  models.ProgressSchemaVersion,
		CompletedTools: []string{"analyzer", "offer-builder"},
		CurrentStage:   3,
	}}
	svc := newTestProgressSvc(repo)

	record, err := svc.MarkToolCompleted(context.Background(), testCatalog(), "competitor-scan")
	require.NoError(t, err)

	// stage 1 is now fully complete, but the journey must not move backwards
	assert.Equal(t, 3, record.CurrentStage)
	assert.Equal(t, "competitor-scan", record.LastToolOpened)
}

func TestProgressService_MarkToolCompleted_NoAdvancePastFinalStage(t *testing.T) {
	repo := &fakeProgressRepo{record: &models.ProgressRecord{
		SchemaVersion:  models.ProgressSchemaVersion,
		CompletedTools: []string{},
		CurrentStage:   models.StageCount,
	}}
	svc := newTestProgressSvc(repo)

	record, err := svc.MarkToolCompleted(context.Background(), testCatalog(), "scale-planner")
	require.NoError(t, err)
	assert.Equal(t, models.StageCount, record.CurrentStage)
}

func TestProgressService_MarkToolCompleted_UnknownTool(t *testing.T) {
	// a tool that has left the catalog still counts as completed, but it can
	// neither become the last opened tool nor advance the stage
	repo := &fakeProgressRepo{}
	svc := newTestProgressSvc(repo)

	record, err := svc.MarkToolCompleted(context.Background(), testCatalog(), "ghost")
	require.NoError(t, err)

	assert.Equal(t, []string{"ghost"}, record.CompletedTools)
	assert.Empty(t, record.LastToolOpened)
	assert.Equal(t, 1, record.CurrentStage)
	require.NotNil(t, repo.record, "the completion must be persisted")
	assert.Equal(t, []string{"ghost"}, repo.record.CompletedTools)
}

func TestProgressService_MarkToolCompleted_AlreadyCompletedIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProgress := mock.NewMockProgressRepository(ctrl)
	svc := newTestProgressSvc(mockProgress)
	ctx := context.Background()

	stored := models.ProgressRecord{
		SchemaVersion:  models.ProgressSchemaVersion,
		CompletedTools: []string{"analyzer", "competitor-scan"},
		LastToolOpened: "competitor-scan",
		CurrentStage:   2,
	}
	// no Save expectation: re-marking must not write anything
	mockProgress.EXPECT().Get(ctx).Return(stored, nil)

	record, err := svc.MarkToolCompleted(ctx, testCatalog(), "analyzer")
	require.NoError(t, err)

	assert.Equal(t, stored.CompletedTools, record.CompletedTools)
	assert.Equal(t, "competitor-scan", record.LastToolOpened, "reopening an old tool must not steal last-opened")
	assert.Equal(t, 2, record.CurrentStage)
}

func TestProgressService_MarkToolCompleted_NilCatalog(t *testing.T) {
	svc := newTestProgressSvc(&fakeProgressRepo{})

	_, err := svc.MarkToolCompleted(context.Background(), nil, "analyzer")
	require.ErrorIs(t, err, ErrCatalogNotLoaded)
}

func TestProgressService_NextRecommendedTool(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog()

	t.Run("first incomplete tool of the current stage", func(t *testing.T) {
		repo := &fakeProgressRepo{record: &models.ProgressRecord{
			SchemaVersion:  models.ProgressSchemaVersion,
			CompletedTools: []string{"analyzer"},
			CurrentStage:   1,
		}}
		svc := newTestProgressSvc(repo)

		tool, err := svc.NextRecommendedTool(ctx, cat)
		require.NoError(t, err)
		require.NotNil(t, tool)
		assert.Equal(t, "competitor-scan", tool.ID)
	})

	t.Run("stage done: first tool of the next stage as teaser", func(t *testing.T) {
		repo := &fakeProgressRepo{record: &models.ProgressRecord{
			SchemaVersion:  models.ProgressSchemaVersion,
			CompletedTools: []string{"offer-builder"},
			CurrentStage:   2,
		}}
		svc := newTestProgressSvc(repo)

		tool, err := svc.NextRecommendedTool(ctx, cat)
		require.NoError(t, err)
		require.NotNil(t, tool)
		// the teaser ignores access: this one is premium
		assert.Equal(t, "landing-gen", tool.ID)
	})

	t.Run("nothing left at the final stage", func(t *testing.T) {
		repo := &fakeProgressRepo{record: &models.ProgressRecord{
			SchemaVersion:  models.ProgressSchemaVersion,
			CompletedTools: []string{"scale-planner"},
			CurrentStage:   models.StageCount,
		}}
		svc := newTestProgressSvc(repo)

		tool, err := svc.NextRecommendedTool(ctx, cat)
		require.NoError(t, err)
		assert.Nil(t, tool)
	})
}

func TestNextRecommended_NilInputs(t *testing.T) {
	record := models.NewProgressRecord()

	assert.Nil(t, NextRecommended(nil, &record))
	assert.Nil(t, NextRecommended(testCatalog(), nil))
}

func TestProgressService_StageProgress(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog()

	repo := &fakeProgressRepo{record: &models.ProgressRecord{
		SchemaVersion:  models.ProgressSchemaVersion,
		CompletedTools: []string{"analyzer"},
		CurrentStage:   1,
	}}
	svc := newTestProgressSvc(repo)

	t.Run("half done", func(t *testing.T) {
		progress, err := svc.StageProgress(ctx, cat, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, progress.Total)
		assert.Equal(t, 1, progress.Completed)
		assert.InDelta(t, 50.0, progress.Percentage, 0.001)
		assert.False(t, progress.Done())
	})

	t.Run("untouched stage", func(t *testing.T) {
		progress, err := svc.StageProgress(ctx, cat, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, progress.Total)
		assert.Zero(t, progress.Completed)
		assert.Zero(t, progress.Percentage)
	})

	t.Run("stage without tools is zero, not a division error", func(t *testing.T) {
		progress, err := svc.StageProgress(ctx, cat, 4)
		require.NoError(t, err)
		assert.Zero(t, progress.Total)
		assert.Zero(t, progress.Percentage)
		assert.False(t, progress.Done())
	})
}

func TestProgressService_MarkIntroSeen(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := newTestProgressSvc(repo)
	ctx := context.Background()

	require.NoError(t, svc.MarkIntroSeen(ctx))

	record, err := svc.GetProgress(ctx)
	require.NoError(t, err)
	assert.False(t, record.FirstTime)

	// idempotent
	require.NoError(t, svc.MarkIntroSeen(ctx))
}

func TestProgressService_GetProgress_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProgress := mock.NewMockProgressRepository(ctrl)
	svc := newTestProgressSvc(mockProgress)
	ctx := context.Background()

	mockProgress.EXPECT().Get(ctx).Return(models.ProgressRecord{}, assert.AnError)

	_, err := svc.GetProgress(ctx)
	require.Error(t, err)
}
