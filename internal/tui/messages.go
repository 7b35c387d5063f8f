package tui

import (
	"github.com/MKhiriev/go-content-keeper/internal/service"
	"github.com/MKhiriev/go-content-keeper/models"
)

type recordsLoadedMsg[T models.Record] struct {
	records []T
	err     error
}

type reloadDoneMsg struct {
	err error
}

type deletedMsg struct {
	ids []models.ID
	err error
}

type eventMsg[T models.Record] struct {
	event service.Event[T]
}

type eventsClosedMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
