// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages shown to the user when a
// synchronizer operation fails.
//
// Messages are rendered inline next to the affected collection and never
// block further interaction; keeping them in one place ensures the CLI and
// the panel use the same wording.
package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-content-keeper/internal/service"
)

const (
	// MsgNetworkError is shown for every failure that never got an answer
	// from the server.
	MsgNetworkError = "Network error occurred. Please try again later."

	// MsgServerErrorFormat wraps the server's own message, verbatim.
	MsgServerErrorFormat = "Error: %s"

	// MsgFailedFormat is the fallback when the server gave no message. The
	// verbs are the operation and the entity.
	MsgFailedFormat = "Failed to %s %s. Please try again."

	// MsgEmptySelectionFormat is shown when a delete finds nothing to send.
	// The verb is the plural entity name.
	MsgEmptySelectionFormat = "No valid %s selected for deletion."

	// MsgClosed is shown for operations attempted after shutdown started.
	MsgClosed = "The application is shutting down."
)

// UserMessage renders err as a one-line message for the user. It returns ""
// for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var merr *service.MutationError
	if !errors.As(err, &merr) {
		return fmt.Sprintf(MsgServerErrorFormat, err.Error())
	}

	switch {
	case errors.Is(err, service.ErrEmptySelection):
		return fmt.Sprintf(MsgEmptySelectionFormat, merr.Entity.Plural())
	case errors.Is(err, service.ErrClosed):
		return MsgClosed
	case merr.Kind == service.KindNetwork:
		return MsgNetworkError
	case merr.Message != "":
		return fmt.Sprintf(MsgServerErrorFormat, merr.Message)
	}

	return fmt.Sprintf(MsgFailedFormat, merr.Op, merr.Entity)
}
