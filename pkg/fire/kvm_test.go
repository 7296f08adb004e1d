// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestKVMPower(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/kvm/abc123/power" {
			t.Errorf("expected path '/kvm/abc123/power', got '%s'", r.URL.Path)
		}
		if r.Method != "POST" {
			t.Errorf("expected POST request, got '%s'", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.PostForm.Get("mode"); got != "start" {
			t.Errorf("mode = %q, want %q", got, "start")
		}
		_, _ = w.Write([]byte(`{"status":"success","message":"VM is starting"}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	msg, err := client.KVM.Power(context.Background(), "abc123", PowerStart)
	if err != nil {
		t.Fatalf("Power returned error: %v", err)
	}
	if msg != "VM is starting" {
		t.Errorf("message = %q, want %q", msg, "VM is starting")
	}
	if calls != 1 {
		t.Errorf("expected exactly 1 request, got %d", calls)
	}
}

func TestKVMStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/kvm/abc123/status" {
			t.Errorf("expected path '/kvm/abc123/status', got '%s'", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"hostname":"web01","vm_state":"running","uptime":991}}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	status, err := client.KVM.Status(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status["vm_state"] != "running" {
		t.Errorf("vm_state = %v, want running", status["vm_state"])
	}
}

func TestKVMConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/kvm/abc123/config" {
			t.Errorf("expected path '/kvm/abc123/config', got '%s'", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"cores":4,"memory":8192}}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL))
	config, err := client.KVM.Config(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Config returned error: %v", err)
	}
	if config["cores"].(float64) != 4 {
		t.Errorf("cores = %v, want 4", config["cores"])
	}
}

func TestKVMDDoS(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/kvm/abc123/ddos" {
				t.Errorf("expected path '/kvm/abc123/ddos', got '%s'", r.URL.Path)
			}
			if r.Method != "GET" {
				t.Errorf("expected GET request, got '%s'", r.Method)
			}
			_, _ = w.Write([]byte(`{"status":"success","data":{"layer4":"dynamic","layer7":"off","ip":"203.0.113.7"}}`))
		}))
		defer server.Close()

		client := NewClient("key", WithBaseURL(server.URL))
		settings, err := client.KVM.DDoS(context.Background(), "abc123")
		if err != nil {
			t.Fatalf("DDoS returned error: %v", err)
		}
		if settings.Layer4 != "dynamic" || settings.Layer7 != "off" {
			t.Errorf("settings = %+v, want layer4=dynamic layer7=off", settings)
		}
	})

	t.Run("update", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != "POST" {
				t.Errorf("expected POST request, got '%s'", r.Method)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("failed to parse form: %v", err)
			}
			if got := r.PostForm.Get("layer4"); got != "permanent" {
				t.Errorf("layer4 = %q, want permanent", got)
			}
			if got := r.PostForm.Get("layer7"); got != "on" {
				t.Errorf("layer7 = %q, want on", got)
			}
			_, _ = w.Write([]byte(`{"status":"success","data":{"layer4":"permanent","layer7":"on"}}`))
		}))
		defer server.Close()

		client := NewClient("key", WithBaseURL(server.URL))
		settings, err := client.KVM.UpdateDDoS(context.Background(), "abc123", "permanent", "on")
		if err != nil {
			t.Fatalf("UpdateDDoS returned error: %v", err)
		}
		if settings.Layer4 != "permanent" {
			t.Errorf("Layer4 = %s, want permanent", settings.Layer4)
		}
	})
}