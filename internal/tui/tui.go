// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive panel of one mirrored collection:
// a checkbox list of records with bulk delete, reload and a live status line
// fed by synchronizer events.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/internal/service"
	"github.com/MKhiriev/go-content-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnknownEntity = errors.New("unknown entity")

// eventBuffer is the capacity of the panel's event subscription.
const eventBuffer = 32

type TUI struct {
	services  *service.ContentServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ContentServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}
}

// Panel opens the panel of entity and blocks until the user quits or ctx is
// cancelled.
func (t *TUI) Panel(ctx context.Context, entity models.Entity) error {
	switch entity {
	case models.EntityPost:
		return runPanel(ctx, t.services.Posts, postLabel, t.buildInfo, t.logger)
	case models.EntityCategory:
		return runPanel(ctx, t.services.Categories, categoryLabel, t.buildInfo, t.logger)
	case models.EntitySubCategory:
		return runPanel(ctx, t.services.SubCategories, subCategoryLabel, t.buildInfo, t.logger)
	case models.EntityItem:
		return runPanel(ctx, t.services.Items, itemLabel, t.buildInfo, t.logger)
	}
	return fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
}

func runPanel[T models.Record, I any](
	ctx context.Context,
	sync service.Synchronizer[T, I],
	label func(T) string,
	info models.AppBuildInfo,
	log *logger.Logger,
) error {
	events, unsubscribe := sync.Subscribe(eventBuffer)
	defer unsubscribe()

	model := newPanelModel(ctx, sync, events, label, info)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log.Info().Str("entity", sync.Entity().String()).Msg("panel closed on shutdown")
		return nil
	}
	return err
}

func postLabel(p models.Post) string { return p.Title }

func categoryLabel(c models.Category) string {
	if c.Slug == "" {
		return c.Title
	}
	return c.Title + " (" + c.Slug + ")"
}

func subCategoryLabel(s models.SubCategory) string {
	if s.Slug == "" {
		return s.Title
	}
	return s.Title + " (" + s.Slug + ")"
}

func itemLabel(i models.Item) string { return i.Name }
