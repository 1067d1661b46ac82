// Package railway is the narrow boundary to the provider's GraphQL API. It
// authenticates through the token gate and exposes only the operations the
// dashboard needs, so the provider's schema can evolve or be mocked without
// touching session, refresh, or streaming logic.
package railway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/railboard/railboard/internal/config"
	"github.com/railboard/railboard/internal/errors"
)

// TokenProvider hands out a currently-valid access token for the request's
// session, refreshing if needed.
type TokenProvider interface {
	Token(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool)
}

type Client struct {
	apiURL     string
	tokens     TokenProvider
	httpClient *http.Client
}

func NewClient(cfg config.Config, tokens TokenProvider) *Client {
	return &Client{
		apiURL:     cfg.GetAPIURL(),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: cfg.GetRequestTimeout()},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// query issues an authenticated GraphQL request and decodes the data payload
// into out. Fails fast with ErrNotAuthenticated when no usable token exists.
func (c *Client) query(ctx context.Context, w http.ResponseWriter, r *http.Request, query string, variables map[string]any, out any) error {
	token, ok := c.tokens.Token(ctx, w, r)
	if !ok {
		return errors.ErrNotAuthenticated
	}

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("railway: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("railway: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(errors.ErrUpstreamError, "railway: request failed: %v", err)
	}
	defer resp.Body.Close()

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return errors.Wrapf(errors.ErrUpstreamError, "railway: undecodable response (status %d)", resp.StatusCode)
	}

	if len(gqlResp.Errors) > 0 {
		return errors.Wrapf(errors.ErrUpstreamError, "railway: %s", gqlResp.Errors[0].Message)
	}

	if out != nil {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return errors.Wrapf(errors.ErrUpstreamError, "railway: unexpected data shape")
		}
	}
	return nil
}

// FetchOverviewGraph returns the nested workspace/project/service graph.
func (c *Client) FetchOverviewGraph(ctx context.Context, w http.ResponseWriter, r *http.Request) (OverviewGraph, error) {
	var graph OverviewGraph
	if err := c.query(ctx, w, r, overviewQuery, nil, &graph); err != nil {
		return OverviewGraph{}, err
	}
	return graph, nil
}

// FetchLogPage returns the most recent limit log entries for a service within
// an environment, newest first as the provider delivers them.
func (c *Client) FetchLogPage(ctx context.Context, w http.ResponseWriter, r *http.Request, envID, serviceID string, limit int) ([]LogEntry, error) {
	var out struct {
		EnvironmentLogs []LogEntry `json:"environmentLogs"`
	}
	variables := map[string]any{
		"environmentId": envID,
		"filter":        "@service:" + serviceID,
		"beforeLimit":   limit,
	}
	if err := c.query(ctx, w, r, environmentLogsQuery, variables, &out); err != nil {
		return nil, err
	}
	return out.EnvironmentLogs, nil
}

// Redeploy triggers a redeploy of a service instance and returns the
// provider's deployment identifier.
func (c *Client) Redeploy(ctx context.Context, w http.ResponseWriter, r *http.Request, serviceID, envID string) (string, error) {
	var out struct {
		ServiceInstanceRedeploy json.RawMessage `json:"serviceInstanceRedeploy"`
	}
	variables := map[string]any{
		"serviceId":     serviceID,
		"environmentId": envID,
	}
	if err := c.query(ctx, w, r, redeployMutation, variables, &out); err != nil {
		return "", err
	}

	// The provider has returned both a bare id and a quoted string here.
	var id string
	if err := json.Unmarshal(out.ServiceInstanceRedeploy, &id); err != nil {
		id = string(out.ServiceInstanceRedeploy)
	}
	return id, nil
}
