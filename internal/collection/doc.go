// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package collection implements the pure state transitions that keep a local,
// ordered mirror of a remote entity set consistent with server-confirmed
// mutations.
//
// A collection is a plain []T of [models.Record] values holding at most one
// record per id. The transitions never mutate their input: each returns a new
// slice. They assume the record they receive has already been confirmed by the
// server; nothing here talks to the network or to storage.
//
// [Selection] keeps the transient set of ids a user has marked for a bulk
// action and filters it against the live collection before a delete is sent.
package collection
