package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient()

	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewJSONClient_SendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(APIKeyHeader); got != "secret" {
			t.Errorf("expected ApiKey header 'secret', got '%s'", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("expected Accept 'application/json', got '%s'", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewJSONClient(srv.URL, time.Second, "secret")

	resp, err := client.R().Get("/ping")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode())
	}
}

func TestWithAPIKey_Empty(t *testing.T) {
	client := NewHTTPClient().WithAPIKey("")

	if got := client.Header.Get(APIKeyHeader); got != "" {
		t.Errorf("expected no ApiKey header, got '%s'", got)
	}
}

func TestWithUserAgent(t *testing.T) {
	if got := NewHTTPClient().WithUserAgent("1.4.0").Header.Get("User-Agent"); got != "phonebook/1.4.0" {
		t.Errorf("expected 'phonebook/1.4.0', got '%s'", got)
	}
	if got := NewHTTPClient().WithUserAgent("").Header.Get("User-Agent"); got != "" {
		t.Errorf("expected no User-Agent override, got '%s'", got)
	}
}
