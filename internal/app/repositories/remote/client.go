// Package remote implements the HTTP data source variant: every repository
// call is forwarded to an upstream backend speaking the same REST dialect and
// pagination envelope. Filtering, sorting and paging are pushed down as query
// parameters; this process does not re-run the pipeline over remote results.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// Client carries the connection settings shared by all remote stores
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the upstream backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// get issues a GET and decodes the JSON response into T.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, query, nil)
}

// send issues a request with a JSON body and decodes the response into T.
func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	return do[T](ctx, c, method, path, nil, body)
}

func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, apperrors.NewTransportError(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return zero, apperrors.NewTransportError(err, "failed to build upstream request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, apperrors.NewTransportError(err, fmt.Sprintf("upstream request %s %s failed", method, path))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return zero, err
	}
	if resp.StatusCode == http.StatusNoContent {
		return zero, nil
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, apperrors.NewTransportError(err, "failed to decode upstream response")
	}
	return out, nil
}

// remove issues a DELETE and discards any response body.
func (c *Client) remove(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return apperrors.NewTransportError(err, "failed to build upstream request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NewTransportError(err, fmt.Sprintf("upstream request DELETE %s failed", path))
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

// checkStatus maps upstream HTTP failures onto the application error set, so
// callers cannot tell a remote store from a local one.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	message := upstreamMessage(resp)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(message)
	case http.StatusConflict:
		return apperrors.NewInvalidTransitionError(message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.NewValidationError(message)
	default:
		return apperrors.NewTransportError(nil,
			fmt.Sprintf("upstream returned status %d: %s", resp.StatusCode, message))
	}
}

// upstreamMessage extracts the error message from a standard error body,
// falling back to the raw status text.
func upstreamMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var errResp dto.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil && errResp.Error.Message != "" {
			return errResp.Error.Message
		}
	}
	return resp.Status
}

// pageQuery encodes shared pagination and sorting parameters.
func pageQuery(params search.Params) url.Values {
	q := url.Values{}
	if params.Unpaginated {
		q.Set("unpaginated", "true")
		return addSort(q, params)
	}
	q.Set("page", strconv.Itoa(params.Page))
	if params.Size > 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}
	return addSort(q, params)
}

func addSort(q url.Values, params search.Params) url.Values {
	if params.SortBy != "" {
		q.Set("sortBy", params.SortBy)
		q.Set("sortDir", string(params.SortDir))
	}
	return q
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setBoolIfPresent(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}
