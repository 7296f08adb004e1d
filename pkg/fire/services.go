// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"fmt"
)

// ServicesService is the service directory: it lists the account's services
// and resolves user-supplied identifiers to one service record.
type ServicesService struct {
	client *Client
}

// NewServicesService creates a new services service.
func NewServicesService(client *Client) *ServicesService {
	return &ServicesService{client: client}
}

// serviceEntry is the wire shape of one entry inside data.services.
type serviceEntry struct {
	Name       string `json:"name"`
	InternalID string `json:"internal_id"`
}

// serviceList is the wire shape of GET /account/services: a mapping of
// service type to its entries.
type serviceList struct {
	Services map[string][]serviceEntry `json:"services"`
}

// List returns the flat list of all services on the account. The API groups
// services by type; the flattened list keeps KVM, WEBSPACE, DOMAIN order so
// resolution and menu numbering are deterministic.
func (s *ServicesService) List(ctx context.Context) ([]Service, error) {
	var list serviceList
	if err := s.client.Get(ctx, "/account/services", &list); err != nil {
		return nil, err
	}

	ordered := []ServiceType{ServiceTypeKVM, ServiceTypeWebspace, ServiceTypeDomain}
	services := make([]Service, 0)
	for _, typ := range ordered {
		for _, entry := range list.Services[string(typ)] {
			services = append(services, Service{
				Name:       entry.Name,
				InternalID: entry.InternalID,
				Type:       typ,
			})
		}
	}

	// Types the client does not know yet still resolve and render.
	for typ, entries := range list.Services {
		known := false
		for _, k := range ordered {
			if typ == string(k) {
				known = true
				break
			}
		}
		if known {
			continue
		}
		for _, entry := range entries {
			services = append(services, Service{
				Name:       entry.Name,
				InternalID: entry.InternalID,
				Type:       ServiceType(typ),
			})
		}
	}

	return services, nil
}

// Resolve fetches the service list and matches identifier against both name
// and internal id. When requiredType is set the scan is restricted to that
// type; the first match in listing order wins. Duplicate names are an
// accepted ambiguity of the upstream API.
func (s *ServicesService) Resolve(ctx context.Context, identifier string, requiredType ServiceType) (*Service, error) {
	services, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range services {
		if requiredType != ServiceTypeAny && services[i].Type != requiredType {
			continue
		}
		if services[i].Name == identifier || services[i].InternalID == identifier {
			return &services[i], nil
		}
	}

	if requiredType != ServiceTypeAny {
		return nil, NewNotFoundError(fmt.Sprintf("no %s service matches %q", requiredType, identifier))
	}
	return nil, NewNotFoundError(fmt.Sprintf("no service matches %q", identifier))
}