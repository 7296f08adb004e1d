// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"fmt"
	"net/url"
)

// MonitoringService provides access to a VM's uptime monitoring data.
type MonitoringService struct {
	client *Client
}

// NewMonitoringService creates a new MonitoringService.
func NewMonitoringService(client *Client) *MonitoringService {
	return &MonitoringService{client: client}
}

// Incidence is one recorded outage of a monitored VM.
type Incidence struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Start    string `json:"start"`
	End      string `json:"end,omitempty"`
	Downtime int    `json:"downtime,omitempty"` // minutes
}

// incidenceList is the wire shape of GET /kvm/{id}/monitoring/incidences.
type incidenceList struct {
	Incidences []Incidence `json:"incidences"`
}

// Timings returns the latest monitoring readings (ping, load, per-check
// latencies). The set of probes varies per VM, so the payload stays untyped.
//
// GET /kvm/{id}/monitoring/timings
func (m *MonitoringService) Timings(ctx context.Context, internalID string) (map[string]interface{}, error) {
	var timings map[string]interface{}
	path := fmt.Sprintf("/kvm/%s/monitoring/timings", url.PathEscape(internalID))
	if err := m.client.Get(ctx, path, &timings); err != nil {
		return nil, err
	}
	return timings, nil
}

// Incidences returns the recorded outages of a VM.
//
// GET /kvm/{id}/monitoring/incidences
func (m *MonitoringService) Incidences(ctx context.Context, internalID string) ([]Incidence, error) {
	var list incidenceList
	path := fmt.Sprintf("/kvm/%s/monitoring/incidences", url.PathEscape(internalID))
	if err := m.client.Get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Incidences, nil
}