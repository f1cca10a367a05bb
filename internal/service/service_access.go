// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/paydev-web/dmlabs-client/models"
)

// CanAccessTool reports whether the session may open the tool: free tools are
// open to everyone, premium tools require a currently premium session.
// Expired and Free sessions are denied identically; the distinction only
// changes the message shown, not the decision.
func CanAccessTool(tool models.ToolDescriptor, user *models.UserSession, now time.Time) bool {
	if tool.Plan != models.PlanPremium {
		return true
	}
	return HasPremiumAccess(user, now)
}

// IsStageVisible reports whether stage n appears on the dashboard at all.
// Stage 1 is always visible, premium sessions see everything, everyone else
// sees only the stages they have reached.
func IsStageVisible(n int, user *models.UserSession, record *models.ProgressRecord, now time.Time) bool {
	if n == 1 {
		return true
	}
	if HasPremiumAccess(user, now) {
		return true
	}
	return record != nil && n <= record.CurrentStage
}

// BuildStageViews assembles the render-ready stage sections for the
// dashboard. Hidden stages are omitted entirely, not flagged: their tools
// must not leak into the UI in any form. Premium tools inside visible stages
// are shown locked, and gated stages carry the upsell flag for non-premium
// sessions.
func BuildStageViews(cat *models.Catalog, user *models.UserSession, record *models.ProgressRecord, now time.Time) []models.StageView {
	if cat == nil {
		return nil
	}

	premium := HasPremiumAccess(user, now)

	var views []models.StageView
	for n := 1; n <= models.StageCount; n++ {
		tools := cat.StageTools(n)
		meta, hasMeta := cat.Stage(n)
		if len(tools) == 0 && !hasMeta {
			continue
		}
		if !IsStageVisible(n, user, record, now) {
			continue
		}

		view := models.StageView{
			Number:     n,
			Meta:       meta,
			Tools:      make([]models.ToolView, 0, len(tools)),
			Progress:   stageProgressOf(cat, record, n),
			ShowUpsell: !premium && stageGated(meta, tools),
		}

		for _, tool := range tools {
			view.Tools = append(view.Tools, models.ToolView{
				Tool:      tool,
				Completed: record != nil && record.Completed(tool.ID),
				Locked:    !CanAccessTool(tool, user, now),
			})
		}

		views = append(views, view)
	}

	return views
}

// stageGated reports whether the stage holds anything premium worth an
// upsell prompt.
func stageGated(meta models.StageMetadata, tools []models.ToolDescriptor) bool {
	if meta.Plan == models.PlanPremium {
		return true
	}
	for _, tool := range tools {
		if tool.Plan == models.PlanPremium {
			return true
		}
	}
	return false
}
