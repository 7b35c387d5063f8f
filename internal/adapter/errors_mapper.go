package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-content-keeper/models"
)

const notFoundCode = "NOT_FOUND"

func mapTransportError(err error) error {
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	// GraphQL servers often answer validation failures with 400 and a
	// regular errors array; prefer its message over the raw body.
	message, code := "", ""
	var envelope models.GraphQLResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && len(envelope.Errors) > 0 {
		message = models.GraphQLErrors(envelope.Errors)
		code = envelope.Errors[0].Extensions.Code
	}
	if message == "" {
		message = strings.TrimSpace(string(resp.Body()))
	}
	if message == "" {
		message = http.StatusText(status)
	}

	var kind error
	switch status {
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ErrUnauthorized
	default:
		kind = ErrServer
	}

	return NewResponseError(kind, status, code, message)
}

func mapGraphQLErrors(errs []models.GraphQLError) error {
	if len(errs) == 0 {
		return nil
	}

	kind := ErrServer
	code := ""
	for _, e := range errs {
		if e.Extensions.Code != "" && code == "" {
			code = e.Extensions.Code
		}
		if e.Extensions.Code == notFoundCode || strings.Contains(strings.ToLower(e.Message), "not found") {
			kind = ErrNotFound
			code = e.Extensions.Code
		}
	}

	return NewResponseError(kind, http.StatusOK, code, models.GraphQLErrors(errs))
}
