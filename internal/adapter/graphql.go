package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-content-keeper/internal/config"
	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/internal/utils"
	"github.com/MKhiriev/go-content-keeper/models"
)

// RequestIDHeader carries the mutation id of the call.
const RequestIDHeader = "X-Request-ID"

// GraphQLClient posts GraphQL documents to the content API.
type GraphQLClient struct {
	client   *utils.HTTPClient
	endpoint string
	logger   *logger.Logger
}

// NewGraphQLClient constructs a client for adapterCfg.GraphQLEndpoint. The
// API token from appCfg, if any, is sent as a bearer token; a JWT that has
// already expired is logged but still used, the server has the last word.
func NewGraphQLClient(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) *GraphQLClient {
	if appCfg.APIToken != "" && utils.IsTokenExpired(appCfg.APIToken, time.Now()) {
		log.Warn().Str("func", "NewGraphQLClient").Msg("configured api token has expired, requests will likely be rejected")
	}

	return &GraphQLClient{
		client:   utils.NewHTTPClient(adapterCfg.RequestTimeout, appCfg.APIToken),
		endpoint: adapterCfg.GraphQLEndpoint,
		logger:   log,
	}
}

// Do executes one request and returns the raw root fields of "data".
//
// Errors wrap [ErrNetwork] when no response arrived, and otherwise carry a
// [*ResponseError].
func (c *GraphQLClient) Do(ctx context.Context, gqlReq models.GraphQLRequest) (map[string]json.RawMessage, error) {
	req := c.client.R().
		SetContext(ctx).
		SetBody(gqlReq)
	if id, ok := utils.GetMutationIDFromContext(ctx); ok {
		req.SetHeader(RequestIDHeader, id)
	}

	resp, err := req.Post(c.endpoint)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("func", "GraphQLClient.Do").
			Str("operation", gqlReq.OperationName).
			Msg("request failed")
		return nil, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.GraphQLResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, NewResponseError(ErrServer, resp.StatusCode(), "",
			fmt.Sprintf("malformed response: %v", err))
	}

	if err = mapGraphQLErrors(envelope.Errors); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// decodeField unmarshals data[field] into dst. A missing field decodes as
// JSON null.
func decodeField(data map[string]json.RawMessage, field string, dst any) error {
	raw, ok := data[field]
	if !ok {
		raw = json.RawMessage("null")
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return NewResponseError(ErrServer, http.StatusOK, "",
			fmt.Sprintf("unexpected %s payload: %v", field, err))
	}

	return nil
}

// inputVariables turns an input struct into GraphQL variables using its JSON
// field names.
func inputVariables(input any) (map[string]any, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode input: %w", err)
	}

	vars := make(map[string]any)
	if err = json.Unmarshal(raw, &vars); err != nil {
		return nil, fmt.Errorf("input must encode to an object: %w", err)
	}

	return vars, nil
}
