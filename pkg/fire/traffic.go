// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"fmt"
	"net/url"
)

// TrafficService provides access to a VM's traffic statistics.
type TrafficService struct {
	client *Client
}

// NewTrafficService creates a new TrafficService.
func NewTrafficService(client *Client) *TrafficService {
	return &TrafficService{client: client}
}

// TrafficStats holds transferred volume in GB for one direction split.
type TrafficStats struct {
	Total float64 `json:"total"`
	In    float64 `json:"in"`
	Out   float64 `json:"out"`
}

// TrafficLimit describes the monthly allowance a VM runs against.
type TrafficLimit struct {
	Monthly   float64 `json:"monthly"`
	Remaining float64 `json:"remaining"`
	VMStatus  string  `json:"vm_status"`
}

// TrafficUsage is the current billing period's usage against the limit.
type TrafficUsage struct {
	Usage TrafficStats `json:"usage"`
	Limit TrafficLimit `json:"limit"`
}

// UsedPercent returns how much of the monthly allowance is consumed, in the
// range 0-100. An unlimited (zero) allowance reports 0.
func (u TrafficUsage) UsedPercent() float64 {
	if u.Limit.Monthly <= 0 {
		return 0
	}
	pct := u.Usage.Total / u.Limit.Monthly * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// TrafficLogEntry is one day of the traffic log.
type TrafficLogEntry struct {
	Date string  `json:"date"`
	In   float64 `json:"in"`
	Out  float64 `json:"out"`
	Sum  float64 `json:"sum"`
}

// trafficLog is the wire shape of GET /kvm/{id}/traffic/log.
type trafficLog struct {
	Log []TrafficLogEntry `json:"log"`
}

// Usage returns the current period's traffic usage of a VM.
//
// GET /kvm/{id}/traffic/current
func (t *TrafficService) Usage(ctx context.Context, internalID string) (*TrafficUsage, error) {
	var usage TrafficUsage
	path := fmt.Sprintf("/kvm/%s/traffic/current", url.PathEscape(internalID))
	if err := t.client.Get(ctx, path, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// Log returns the per-day traffic log of a VM.
//
// GET /kvm/{id}/traffic/log
func (t *TrafficService) Log(ctx context.Context, internalID string) ([]TrafficLogEntry, error) {
	var log trafficLog
	path := fmt.Sprintf("/kvm/%s/traffic/log", url.PathEscape(internalID))
	if err := t.client.Get(ctx, path, &log); err != nil {
		return nil, err
	}
	return log.Log, nil
}