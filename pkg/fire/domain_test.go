// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDomainListDNS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/domain/dom-1/dns" {
			t.Errorf("expected path '/domain/dom-1/dns', got '%s'", r.URL.Path)
		}
		if r.Method != "GET" {
			t.Errorf("expected GET request, got '%s'", r.Method)
		}
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"records": [
					{"record_id": "r1", "type": "A", "name": "www", "data": "1.2.3.4"},
					{"record_id": "r2", "type": "MX", "name": "@", "data": "mail.example.de"}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	records, err := client.Domain.ListDNS(context.Background(), "dom-1")
	if err != nil {
		t.Fatalf("ListDNS returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "r1" || records[0].Type != "A" {
		t.Errorf("records[0] = %+v, want r1/A", records[0])
	}
}

func TestDomainAddDNS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/domain/dom-1/dns/add" {
			t.Errorf("expected path '/domain/dom-1/dns/add', got '%s'", r.URL.Path)
		}
		if r.Method != "PUT" {
			t.Errorf("expected PUT request, got '%s'", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if r.PostForm.Get("type") != "A" || r.PostForm.Get("name") != "www" || r.PostForm.Get("data") != "1.2.3.4" {
			t.Errorf("form = %v, want type=A name=www data=1.2.3.4", r.PostForm)
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"record_id":"r9"}}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	record, err := client.Domain.AddDNS(context.Background(), "dom-1", "A", "www", "1.2.3.4")
	if err != nil {
		t.Fatalf("AddDNS returned error: %v", err)
	}
	if record.ID != "r9" {
		t.Errorf("ID = %s, want r9", record.ID)
	}
	// Submitted fields are filled in when the panel omits the echo.
	if record.Type != "A" || record.Name != "www" || record.Data != "1.2.3.4" {
		t.Errorf("record = %+v, want submitted fields echoed", record)
	}
}

func TestDomainEditDNS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/domain/dom-1/dns/edit" {
			t.Errorf("expected path '/domain/dom-1/dns/edit', got '%s'", r.URL.Path)
		}
		if r.Method != "POST" {
			t.Errorf("expected POST request, got '%s'", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if r.PostForm.Get("record_id") != "r1" {
			t.Errorf("record_id = %q, want r1", r.PostForm.Get("record_id"))
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"record_id":"r1","type":"A","name":"www","data":"5.6.7.8"}}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	record, err := client.Domain.EditDNS(context.Background(), "dom-1", "r1", "A", "www", "5.6.7.8")
	if err != nil {
		t.Fatalf("EditDNS returned error: %v", err)
	}
	if record.Data != "5.6.7.8" {
		t.Errorf("Data = %s, want 5.6.7.8", record.Data)
	}
}

func TestDomainRemoveDNS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/domain/dom-1/dns/remove" {
			t.Errorf("expected path '/domain/dom-1/dns/remove', got '%s'", r.URL.Path)
		}
		if r.Method != "DELETE" {
			t.Errorf("expected DELETE request, got '%s'", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if r.PostForm.Get("record_id") != "r1" {
			t.Errorf("record_id = %q, want r1", r.PostForm.Get("record_id"))
		}
		_, _ = w.Write([]byte(`{"status":"success","message":"record deleted"}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	if err := client.Domain.RemoveDNS(context.Background(), "dom-1", "r1"); err != nil {
		t.Fatalf("RemoveDNS returned error: %v", err)
	}
}

func TestWebspaceGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webspace/ws-777" {
			t.Errorf("expected path '/webspace/ws-777', got '%s'", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"plan":"L","domains":["example.de"]}}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	info, err := client.Webspace.Get(context.Background(), "ws-777")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if info["plan"] != "L" {
		t.Errorf("plan = %v, want L", info["plan"])
	}
}