// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-content-keeper/models"
)

var (
	ErrNetwork    = errors.New("network error")
	ErrServer     = errors.New("server error")
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid record")

	// ErrEmptySelection is returned by deletes when none of the requested ids
	// is present in the collection. No request is sent in that case.
	ErrEmptySelection = errors.New("no valid records selected for deletion")
	// ErrClosed is returned once the synchronizer has been closed, including
	// for mutations whose response arrived after Close.
	ErrClosed = errors.New("synchronizer is closed")
	// ErrStore wraps failures of the local collection store.
	ErrStore = errors.New("local store error")
)

// ErrorKind classifies a failed operation.
type ErrorKind int

const (
	// KindLocal marks failures that never reached the server or happened
	// after it answered: store errors, a closed synchronizer, a delete with
	// nothing live to delete.
	KindLocal ErrorKind = iota
	KindNetwork
	KindServer
	KindNotFound
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "local"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindServer:
		return ErrServer
	case KindNotFound:
		return ErrNotFound
	case KindValidation:
		return ErrValidation
	}
	return nil
}

// MutationError is returned by every synchronizer operation that fails.
//
// errors.Is matches the sentinel of Kind (ErrNetwork, ErrServer, ErrNotFound,
// ErrValidation) as well as anything in the Err chain.
type MutationError struct {
	Kind       ErrorKind
	Entity     models.Entity
	Op         Op
	MutationID string
	// Code and Message are the server's error code and message, when the
	// server produced one.
	Code    string
	Message string
	Err     error
}

func (e *MutationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s failed (%s): %s", e.Op, e.Entity, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s %s failed (%s): %v", e.Op, e.Entity, e.Kind, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

func (e *MutationError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}
