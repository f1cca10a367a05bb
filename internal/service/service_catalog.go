package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/paydev-web/dmlabs-client/internal/adapter"
	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/models"
)

type catalogService struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
}

// NewClientCatalogService constructs a [ClientCatalogService] over the
// backend adapter.
func NewClientCatalogService(backend adapter.BackendAdapter, log *logger.Logger) ClientCatalogService {
	return &catalogService{adapter: backend, logger: log}
}

// LoadCatalog fetches the tool list and stage metadata. The conversion from
// wire tools to descriptors drops launch URLs; nothing past this function
// ever holds one. Stage keys arrive as strings and are re-keyed by number,
// out-of-range keys are dropped with a warning.
func (c *catalogService) LoadCatalog(ctx context.Context) (*models.Catalog, error) {
	log := logger.FromContext(ctx)

	resp, err := c.adapter.GetTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	cat := &models.Catalog{
		Tools:  make([]models.ToolDescriptor, 0, len(resp.Tools)),
		Stages: make(map[int]models.StageMetadata, len(resp.FrameworkStages)),
	}

	for _, wire := range resp.Tools {
		cat.Tools = append(cat.Tools, wire.Descriptor())
	}

	for key, meta := range resp.FrameworkStages {
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > models.StageCount {
			log.Warn().Str("func", "*catalogService.LoadCatalog").Str("stageKey", key).Msg("dropping stage with out-of-range key")
			continue
		}
		cat.Stages[n] = meta
	}

	log.Debug().Str("func", "*catalogService.LoadCatalog").Int("tools", len(cat.Tools)).Int("stages", len(cat.Stages)).Msg("catalog loaded")
	return cat, nil
}

// ResolveLaunchURL resolves the launch URL of a catalog tool from the
// backend. The id is validated locally first so a bad id never turns into a
// backend round-trip.
func (c *catalogService) ResolveLaunchURL(ctx context.Context, cat *models.Catalog, toolID string) (string, error) {
	if cat == nil {
		return "", ErrCatalogNotLoaded
	}
	if _, ok := cat.Tool(toolID); !ok {
		return "", ErrToolNotFound
	}

	url, err := c.adapter.GetToolURL(ctx, toolID)
	if err != nil {
		return "", fmt.Errorf("resolve launch url: %w", err)
	}

	return url, nil
}
