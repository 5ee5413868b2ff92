// Package client is the HTTP binding of the annotation store: it implements
// annotation.Store against the REST API in controllers, plus the prediction
// endpoint. An embedding UI hands a Client to annotation.NewSyncer and gets
// the full load/save/reset protocol.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"retinoscope/annotation"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

type Option func(*Client)

// WithHTTPClient Use a custom http.Client, e.g. one from httptest.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithToken Send a bearer token with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New Create a client against the store at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// dataEnvelope The {"data": ...} wrapper every store response uses.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// ListAnnotations Fetch the annotations for an image, scoped to one author.
func (c *Client) ListAnnotations(ctx context.Context, imageID, createdBy string) ([]annotation.Annotation, error) {
	u := fmt.Sprintf("%s/api/v1/annotations/%s", c.baseURL, url.PathEscape(imageID))
	if createdBy != "" {
		u += "?created_by=" + url.QueryEscape(createdBy)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var out []annotation.Annotation
	if err := c.do(req, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	return out, nil
}

// CreateAnnotation Persist one annotation and return the canonical stored
// copy. The client-generated id is kept by the server when present.
func (c *Client) CreateAnnotation(ctx context.Context, a annotation.Annotation) (annotation.Annotation, error) {
	body, err := json.Marshal(a)
	if err != nil {
		return annotation.Annotation{}, err
	}
	u := fmt.Sprintf("%s/api/v1/annotations", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return annotation.Annotation{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out annotation.Annotation
	if err := c.do(req, http.StatusOK, &out); err != nil {
		return annotation.Annotation{}, fmt.Errorf("create annotation: %w", err)
	}
	return out, nil
}

// DeleteAnnotation Delete one persisted record. A 404 counts as success:
// deleting an id that is already gone is not an error.
func (c *Client) DeleteAnnotation(ctx context.Context, id string) error {
	u := fmt.Sprintf("%s/api/v1/annotations/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete annotation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete annotation: status %d", resp.StatusCode)
	}
	return nil
}

// do Issue the request, expect wantStatus, and decode the data envelope into
// out when non-nil.
func (c *Client) do(req *http.Request, wantStatus int, out interface{}) error {
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}

	var envelope dataEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
