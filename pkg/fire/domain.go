// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"fmt"
	"net/url"
)

// DomainService handles domain info and DNS record management.
type DomainService struct {
	client *Client
}

// NewDomainService creates a new DomainService.
func NewDomainService(client *Client) *DomainService {
	return &DomainService{client: client}
}

// DNSRecord is one zone entry of a domain.
type DNSRecord struct {
	ID   string `json:"record_id"`
	Type string `json:"type"`
	Name string `json:"name"`
	Data string `json:"data"`
}

// dnsRecordList is the wire shape of GET /domain/{id}/dns.
type dnsRecordList struct {
	Records []DNSRecord `json:"records"`
}

// Get returns the domain's info payload (registration, nameservers, state).
func (d *DomainService) Get(ctx context.Context, internalID string) (map[string]interface{}, error) {
	var info map[string]interface{}
	path := fmt.Sprintf("/domain/%s", url.PathEscape(internalID))
	if err := d.client.Get(ctx, path, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// ListDNS returns all DNS records of a domain.
//
// GET /domain/{id}/dns
func (d *DomainService) ListDNS(ctx context.Context, internalID string) ([]DNSRecord, error) {
	var list dnsRecordList
	path := fmt.Sprintf("/domain/%s/dns", url.PathEscape(internalID))
	if err := d.client.Get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Records, nil
}

// AddDNS creates a DNS record and returns it with the remote-assigned id.
//
// PUT /domain/{id}/dns/add with type/name/data
func (d *DomainService) AddDNS(ctx context.Context, internalID, recordType, name, data string) (*DNSRecord, error) {
	path := fmt.Sprintf("/domain/%s/dns/add", url.PathEscape(internalID))

	form := url.Values{}
	form.Set("type", recordType)
	form.Set("name", name)
	form.Set("data", data)

	var record DNSRecord
	if err := d.client.Put(ctx, path, form, &record); err != nil {
		return nil, err
	}
	// The panel occasionally omits the echo of submitted fields.
	if record.Type == "" {
		record.Type = recordType
	}
	if record.Name == "" {
		record.Name = name
	}
	if record.Data == "" {
		record.Data = data
	}
	return &record, nil
}

// EditDNS rewrites an existing DNS record.
//
// POST /domain/{id}/dns/edit with record_id/type/name/data
func (d *DomainService) EditDNS(ctx context.Context, internalID, recordID, recordType, name, data string) (*DNSRecord, error) {
	path := fmt.Sprintf("/domain/%s/dns/edit", url.PathEscape(internalID))

	form := url.Values{}
	form.Set("record_id", recordID)
	form.Set("type", recordType)
	form.Set("name", name)
	form.Set("data", data)

	var record DNSRecord
	if err := d.client.Post(ctx, path, form, &record); err != nil {
		return nil, err
	}
	if record.ID == "" {
		record.ID = recordID
	}
	return &record, nil
}

// RemoveDNS deletes a DNS record.
//
// DELETE /domain/{id}/dns/remove with record_id
func (d *DomainService) RemoveDNS(ctx context.Context, internalID, recordID string) error {
	path := fmt.Sprintf("/domain/%s/dns/remove", url.PathEscape(internalID))

	form := url.Values{}
	form.Set("record_id", recordID)

	return d.client.Delete(ctx, path, form, nil)
}