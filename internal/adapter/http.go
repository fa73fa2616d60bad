package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

const traceIDHeader = "X-Trace-ID"

type httpContactStore struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPContactStore constructs the REST implementation of
// [RemoteContactStore]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the client with the request timeout
// and the API key.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPContactStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteContactStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewJSONClient(baseURL, adapterCfg.RequestTimeout, appCfg.APIKey).WithUserAgent(appCfg.Version)

	return &httpContactStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [RemoteContactStore] via GET /api/User/GetAll.
func (h *httpContactStore) List(ctx context.Context) ([]models.Contact, error) {
	resp, err := h.request(ctx).Get("/api/User/GetAll")
	if err != nil {
		return nil, fmt.Errorf("%w: list contacts request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.ContactListResponse
	if err = decode(resp, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data.Users == nil {
		return []models.Contact{}, nil
	}

	return envelope.Data.Users, nil
}

// Get implements [RemoteContactStore] via GET /api/User/{id}.
func (h *httpContactStore) Get(ctx context.Context, id string) (models.Contact, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Get("/api/User/{id}")
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: get contact request: %w", ErrNetwork, err)
	}

	return decodeContact(resp)
}

// Create implements [RemoteContactStore] via POST /api/User.
func (h *httpContactStore) Create(ctx context.Context, payload models.ContactPayload) (models.Contact, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/api/User")
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: create contact request: %w", ErrNetwork, err)
	}

	return decodeContact(resp)
}

// Update implements [RemoteContactStore] via PUT /api/User/{id}.
func (h *httpContactStore) Update(ctx context.Context, id string, payload models.ContactPayload) (models.Contact, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(payload).
		Put("/api/User/{id}")
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: update contact request: %w", ErrNetwork, err)
	}

	contact, err := decodeContact(resp)
	if err != nil {
		return models.Contact{}, err
	}
	if contact.ID == "" {
		contact.ID = id
	}
	return contact, nil
}

// Delete implements [RemoteContactStore] via DELETE /api/User/{id}.
func (h *httpContactStore) Delete(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete("/api/User/{id}")
	if err != nil {
		return fmt.Errorf("%w: delete contact request: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpContactStore) request(ctx context.Context) *resty.Request {
	return newRequest(ctx, h.client)
}

func newRequest(ctx context.Context, client *utils.HTTPClient) *resty.Request {
	req := client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func decodeContact(resp *resty.Response) (models.Contact, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var envelope models.ContactResponse
	if err := decode(resp, &envelope); err != nil {
		return models.Contact{}, err
	}
	return envelope.Data, nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrServer, resp.Request.Method, err)
	}
	return nil
}
