// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// GraphQLRequest is the body POSTed to the content API.
type GraphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// GraphQLResponse is the envelope returned by the content API. Data holds one
// raw value per selected root field.
type GraphQLResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []GraphQLError             `json:"errors,omitempty"`
}

// GraphQLError is a single entry of the "errors" array.
type GraphQLError struct {
	Message    string   `json:"message"`
	Path       []any    `json:"path,omitempty"`
	Extensions ErrorExt `json:"extensions,omitempty"`
}

// ErrorExt holds the extension fields the content API sets on errors.
type ErrorExt struct {
	Code string `json:"code,omitempty"`
}

// GraphQLErrors joins the messages of errs with "; ".
func GraphQLErrors(errs []GraphQLError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Message != "" {
			msgs = append(msgs, e.Message)
		}
	}
	return strings.Join(msgs, "; ")
}
