// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const serviceListBody = `{
	"status": "success",
	"data": {
		"services": {
			"KVM": [
				{"name": "web01", "internal_id": "abc123"},
				{"name": "db01", "internal_id": "def456"}
			],
			"WEBSPACE": [
				{"name": "web01", "internal_id": "ws-777"}
			],
			"DOMAIN": [
				{"name": "example.de", "internal_id": "dom-1"}
			]
		}
	}
}`

func newServiceListServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/account/services" {
			t.Errorf("expected path '/account/services', got '%s'", r.URL.Path)
		}
		if r.Method != "GET" {
			t.Errorf("expected GET request, got '%s'", r.Method)
		}
		_, _ = w.Write([]byte(serviceListBody))
	}))
}

func TestServicesList(t *testing.T) {
	server := newServiceListServer(t)
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	services, err := client.Services.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(services) != 4 {
		t.Fatalf("expected 4 services, got %d", len(services))
	}

	// Flattened order is KVM, WEBSPACE, DOMAIN.
	if services[0].Name != "web01" || services[0].Type != ServiceTypeKVM {
		t.Errorf("services[0] = %+v, want KVM web01", services[0])
	}
	if services[2].Type != ServiceTypeWebspace {
		t.Errorf("services[2].Type = %s, want WEBSPACE", services[2].Type)
	}
	if services[3].InternalID != "dom-1" {
		t.Errorf("services[3].InternalID = %s, want dom-1", services[3].InternalID)
	}
}

func TestServicesResolve(t *testing.T) {
	tests := []struct {
		name         string
		identifier   string
		requiredType ServiceType
		wantID       string
		wantType     ServiceType
		wantNotFound bool
	}{
		{
			name:       "by name",
			identifier: "db01",
			wantID:     "def456",
			wantType:   ServiceTypeKVM,
		},
		{
			name:       "by internal id",
			identifier: "abc123",
			wantID:     "abc123",
			wantType:   ServiceTypeKVM,
		},
		{
			name:       "duplicate name resolves to first match",
			identifier: "web01",
			wantID:     "abc123",
			wantType:   ServiceTypeKVM,
		},
		{
			name:         "type scope skips same-named service of other type",
			identifier:   "web01",
			requiredType: ServiceTypeWebspace,
			wantID:       "ws-777",
			wantType:     ServiceTypeWebspace,
		},
		{
			name:         "kvm scope never returns a domain",
			identifier:   "example.de",
			requiredType: ServiceTypeKVM,
			wantNotFound: true,
		},
		{
			name:         "zero matches",
			identifier:   "missing",
			wantNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServiceListServer(t)
			defer server.Close()

			client := NewClient("key", WithBaseURL(server.URL))
			svc, err := client.Services.Resolve(context.Background(), tt.identifier, tt.requiredType)

			if tt.wantNotFound {
				if err == nil {
					t.Fatalf("expected not found, got %+v", svc)
				}
				if !IsNotFoundError(err) {
					t.Errorf("expected NotFound kind, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if svc.InternalID != tt.wantID {
				t.Errorf("InternalID = %s, want %s", svc.InternalID, tt.wantID)
			}
			if svc.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", svc.Type, tt.wantType)
			}
		})
	}
}

func TestServicesResolveUpstreamErrorKeepsKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","message":"internal error"}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	_, err := client.Services.Resolve(context.Background(), "web01", ServiceTypeAny)
	if err == nil {
		t.Fatal("expected error")
	}
	// An upstream failure must not masquerade as "identifier unknown".
	if IsNotFoundError(err) {
		t.Errorf("upstream error reported as NotFound: %v", err)
	}
	if !IsAPIError(err) {
		t.Errorf("expected API error kind, got %v", err)
	}
}

func TestServicesListUnknownTypeKept(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":{"services":{"COLOCATION":[{"name":"rack1","internal_id":"colo-1"}]}}}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	services, err := client.Services.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(services))
	}
	if services[0].Type != ServiceType("COLOCATION") {
		t.Errorf("Type = %s, want COLOCATION", services[0].Type)
	}
}