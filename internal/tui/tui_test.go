package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-content-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, "Hello", postLabel(models.Post{Title: "Hello"}))
	assert.Equal(t, "News (news)", categoryLabel(models.Category{Title: "News", Slug: "news"}))
	assert.Equal(t, "News", categoryLabel(models.Category{Title: "News"}))
	assert.Equal(t, "Local (local)", subCategoryLabel(models.SubCategory{Title: "Local", Slug: "local"}))
	assert.Equal(t, "Vinyl", itemLabel(models.Item{Name: "Vinyl"}))
}

func TestPanel_UnknownEntity(t *testing.T) {
	ui := New(nil, models.NewAppBuildInfo("", "", ""), nil)

	err := ui.Panel(context.Background(), models.Entity("tag"))

	assert.ErrorIs(t, err, ErrUnknownEntity)
}
