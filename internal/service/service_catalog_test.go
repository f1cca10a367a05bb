package service

import (
	"context"
	"errors"
	"testing"

	"github.com/paydev-web/dmlabs-client/internal/adapter"
	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/mock"
	"github.com/paydev-web/dmlabs-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCatalogSvc(t *testing.T, ctrl *gomock.Controller) (ClientCatalogService, *mock.MockBackendAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	return NewClientCatalogService(mockAdapter, logger.Nop()), mockAdapter
}

func TestCatalogService_LoadCatalog_StripsURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	resp := models.ToolsResponse{
		Success: true,
		Tools: []models.BackendTool{
			{ID: "analyzer", Name: "Idea Analyzer", Plan: models.PlanFree, Stage: 1, URL: "https://tools.example.com/analyzer"},
			{ID: "landing-gen", Name: "Landing Generator", Plan: models.PlanPremium, Stage: 2, URL: "https://tools.example.com/landing"},
		},
		FrameworkStages: map[string]models.StageMetadata{
			"1": {Title: "Find your idea", Goal: "Validate demand", Plan: models.PlanFree},
			"2": {Title: "Build the offer", Goal: "First landing", Plan: models.PlanPremium},
		},
	}

	mockAdapter.EXPECT().GetTools(ctx).Return(resp, nil)

	cat, err := svc.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, cat.Tools, 2)

	// nothing past the adapter carries a launch URL
	tool, ok := cat.Tool("analyzer")
	require.True(t, ok)
	assert.Equal(t, "Idea Analyzer", tool.Name)

	require.Len(t, cat.Stages, 2)
	meta, ok := cat.Stage(2)
	require.True(t, ok)
	assert.Equal(t, "Build the offer", meta.Title)
}

func TestCatalogService_LoadCatalog_DropsBadStageKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	resp := models.ToolsResponse{
		Success: true,
		FrameworkStages: map[string]models.StageMetadata{
			"1":     {Title: "Find your idea"},
			"0":     {Title: "out of range low"},
			"7":     {Title: "out of range high"},
			"three": {Title: "not a number"},
		},
	}

	mockAdapter.EXPECT().GetTools(ctx).Return(resp, nil)

	cat, err := svc.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, cat.Stages, 1)
	_, ok := cat.Stage(1)
	assert.True(t, ok)
}

func TestCatalogService_LoadCatalog_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetTools(ctx).
		Return(models.ToolsResponse{}, adapter.ErrNetwork)

	_, err := svc.LoadCatalog(ctx)
	require.ErrorIs(t, err, adapter.ErrNetwork)
}

func TestCatalogService_ResolveLaunchURL(t *testing.T) {
	cat := &models.Catalog{
		Tools: []models.ToolDescriptor{{ID: "analyzer", Stage: 1}},
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockAdapter := newTestCatalogSvc(t, ctrl)
		ctx := context.Background()

		mockAdapter.EXPECT().GetToolURL(ctx, "analyzer").
			Return("https://tools.example.com/analyzer", nil)

		url, err := svc.ResolveLaunchURL(ctx, cat, "analyzer")
		require.NoError(t, err)
		assert.Equal(t, "https://tools.example.com/analyzer", url)
	})

	t.Run("unknown tool fails before any backend call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestCatalogSvc(t, ctrl)

		_, err := svc.ResolveLaunchURL(context.Background(), cat, "ghost")
		require.ErrorIs(t, err, ErrToolNotFound)
	})

	t.Run("nil catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestCatalogSvc(t, ctrl)

		_, err := svc.ResolveLaunchURL(context.Background(), nil, "analyzer")
		require.ErrorIs(t, err, ErrCatalogNotLoaded)
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockAdapter := newTestCatalogSvc(t, ctrl)
		ctx := context.Background()

		mockAdapter.EXPECT().GetToolURL(ctx, "analyzer").
			Return("", errors.New("no url for tool"))

		_, err := svc.ResolveLaunchURL(ctx, cat, "analyzer")
		require.Error(t, err)
	})
}
