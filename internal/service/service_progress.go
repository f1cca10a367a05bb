// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/store"
	"github.com/paydev-web/dmlabs-client/models"
)

type progressService struct {
	localStore *store.ClientStorages
	logger     *logger.Logger
}

// NewClientProgressService constructs a [ClientProgressService] over the
// local store.
func NewClientProgressService(localStore *store.ClientStorages, log *logger.Logger) ClientProgressService {
	return &progressService{localStore: localStore, logger: log}
}

// GetProgress loads the stored record, normalized. Absent or corrupt records
// yield the defaults: nothing completed, stage 1, introduction pending.
func (p *progressService) GetProgress(ctx context.Context) (models.ProgressRecord, error) {
	record, err := p.localStore.Progress.Get(ctx)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.NewProgressRecord(), nil
	}
	if err != nil {
		return models.ProgressRecord{}, err
	}

	record.Normalize()
	return record, nil
}

// MarkToolCompleted records an opened tool and advances the journey when its
// stage becomes fully complete. Re-marking a completed tool is a no-op: the
// loaded record is returned unchanged and nothing is written. A tool id
// missing from the catalog is still recorded as completed, but LastToolOpened
// and the stage advance are skipped. The whole record is persisted in one
// write.
//
// The current stage never decreases: completing a leftover tool of an
// earlier stage, even its last one, cannot pull the journey backwards.
func (p *progressService) MarkToolCompleted(ctx context.Context, cat *models.Catalog, toolID string) (models.ProgressRecord, error) {
	log := logger.FromContext(ctx)

	if cat == nil {
		return models.ProgressRecord{}, ErrCatalogNotLoaded
	}

	record, err := p.GetProgress(ctx)
	if err != nil {
		return models.ProgressRecord{}, err
	}

	if record.Completed(toolID) {
		return record, nil
	}
	record.CompletedTools = append(record.CompletedTools, toolID)

	if tool, ok := cat.Tool(toolID); ok {
		record.LastToolOpened = toolID

		if stageComplete(cat, &record, tool.Stage) &&
			tool.Stage < models.StageCount &&
			tool.Stage+1 > record.CurrentStage {
			log.Info().
				Str("func", "*progressService.MarkToolCompleted").
				Int("stage", tool.Stage).
				Msg("stage complete, advancing")
			record.CurrentStage = tool.Stage + 1
		}
	} else {
		log.Warn().
			Str("func", "*progressService.MarkToolCompleted").
			Str("toolID", toolID).
			Msg("tool is not in the catalog, completion recorded without stage advance")
	}

	if err = p.localStore.Progress.Save(ctx, record); err != nil {
		log.Err(err).Str("func", "*progressService.MarkToolCompleted").Msg("error saving progress")
		return models.ProgressRecord{}, err
	}

	return record, nil
}

// NextRecommendedTool suggests what to open next: the first incomplete tool
// of the current stage, else the first tool of the following stage as a
// teaser regardless of access, else nil when the journey is done.
func (p *progressService) NextRecommendedTool(ctx context.Context, cat *models.Catalog) (*models.ToolDescriptor, error) {
	if cat == nil {
		return nil, ErrCatalogNotLoaded
	}

	record, err := p.GetProgress(ctx)
	if err != nil {
		return nil, err
	}

	return NextRecommended(cat, &record), nil
}

// NextRecommended is the pure selection behind [NextRecommendedTool], shared
// with views that already hold a loaded record: the first incomplete tool of
// the current stage in catalog order, else the first tool of the following
// stage, else nil.
func NextRecommended(cat *models.Catalog, record *models.ProgressRecord) *models.ToolDescriptor {
	if cat == nil || record == nil {
		return nil
	}

	for _, tool := range cat.StageTools(record.CurrentStage) {
		if !record.Completed(tool.ID) {
			return &tool
		}
	}

	if next := cat.StageTools(record.CurrentStage + 1); len(next) > 0 {
		return &next[0]
	}

	return nil
}

// StageProgress returns the completion ratio of stage n. An empty stage is
// 0%, never a division by zero.
func (p *progressService) StageProgress(ctx context.Context, cat *models.Catalog, n int) (models.StageProgress, error) {
	if cat == nil {
		return models.StageProgress{}, ErrCatalogNotLoaded
	}

	record, err := p.GetProgress(ctx)
	if err != nil {
		return models.StageProgress{}, err
	}

	return stageProgressOf(cat, &record, n), nil
}

// MarkIntroSeen clears the first-time flag. Idempotent; the record is saved
// even when the flag was already cleared so a missing record gets created.
func (p *progressService) MarkIntroSeen(ctx context.Context) error {
	log := logger.FromContext(ctx)

	record, err := p.GetProgress(ctx)
	if err != nil {
		return err
	}

	record.FirstTime = false
	if err = p.localStore.Progress.Save(ctx, record); err != nil {
		log.Err(err).Str("func", "*progressService.MarkIntroSeen").Msg("error saving progress")
		return err
	}

	return nil
}

// stageComplete reports whether every tool of stage n is completed in the
// record. A stage with no tools is never complete.
func stageComplete(cat *models.Catalog, record *models.ProgressRecord, n int) bool {
	tools := cat.StageTools(n)
	if len(tools) == 0 {
		return false
	}
	for _, tool := range tools {
		if !record.Completed(tool.ID) {
			return false
		}
	}
	return true
}

func stageProgressOf(cat *models.Catalog, record *models.ProgressRecord, n int) models.StageProgress {
	tools := cat.StageTools(n)

	progress := models.StageProgress{Total: len(tools)}
	for _, tool := range tools {
		if record.Completed(tool.ID) {
			progress.Completed++
		}
	}
	if progress.Total > 0 {
		progress.Percentage = 100 * float64(progress.Completed) / float64(progress.Total)
	}

	return progress
}
