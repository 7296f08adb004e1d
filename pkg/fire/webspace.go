// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"fmt"
	"net/url"
)

// WebspaceService handles webspace API operations.
type WebspaceService struct {
	client *Client
}

// NewWebspaceService creates a new WebspaceService.
func NewWebspaceService(client *Client) *WebspaceService {
	return &WebspaceService{client: client}
}

// Get returns the webspace's info payload (plan, domains, usage).
func (w *WebspaceService) Get(ctx context.Context, internalID string) (map[string]interface{}, error) {
	var info map[string]interface{}
	path := fmt.Sprintf("/webspace/%s", url.PathEscape(internalID))
	if err := w.client.Get(ctx, path, &info); err != nil {
		return nil, err
	}
	return info, nil
}