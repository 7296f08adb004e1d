// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"fmt"
	"net/url"
)

// KVMService handles virtual-machine related API operations.
type KVMService struct {
	client *Client
}

// NewKVMService creates a new KVM service.
func NewKVMService(client *Client) *KVMService {
	return &KVMService{client: client}
}

// Status returns the current status payload of a VM. The shape varies with
// the booked addons, so it stays an untyped mapping for the generic renderer.
func (k *KVMService) Status(ctx context.Context, internalID string) (map[string]interface{}, error) {
	var status map[string]interface{}
	path := fmt.Sprintf("/kvm/%s/status", url.PathEscape(internalID))
	if err := k.client.Get(ctx, path, &status); err != nil {
		return nil, err
	}
	return status, nil
}

// Config returns the VM's configuration payload (cores, memory, disk, network).
func (k *KVMService) Config(ctx context.Context, internalID string) (map[string]interface{}, error) {
	var config map[string]interface{}
	path := fmt.Sprintf("/kvm/%s/config", url.PathEscape(internalID))
	if err := k.client.Get(ctx, path, &config); err != nil {
		return nil, err
	}
	return config, nil
}

// Power executes a power action and returns the panel's confirmation message.
//
// POST /kvm/{id}/power with mode=start|stop|restart
func (k *KVMService) Power(ctx context.Context, internalID string, mode PowerMode) (string, error) {
	path := fmt.Sprintf("/kvm/%s/power", url.PathEscape(internalID))

	data := url.Values{}
	data.Set("mode", string(mode))

	env, err := k.client.roundTrip(ctx, "POST", path, data)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// DDoSSettings describes the VM's DDoS protection configuration.
type DDoSSettings struct {
	Layer4 string `json:"layer4"`
	Layer7 string `json:"layer7"`
	IP     string `json:"ip,omitempty"`
}

// DDoS returns the DDoS protection settings of a VM.
func (k *KVMService) DDoS(ctx context.Context, internalID string) (*DDoSSettings, error) {
	var settings DDoSSettings
	path := fmt.Sprintf("/kvm/%s/ddos", url.PathEscape(internalID))
	if err := k.client.Get(ctx, path, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateDDoS changes the layer4/layer7 protection modes of a VM.
func (k *KVMService) UpdateDDoS(ctx context.Context, internalID string, layer4, layer7 string) (*DDoSSettings, error) {
	path := fmt.Sprintf("/kvm/%s/ddos", url.PathEscape(internalID))

	data := url.Values{}
	data.Set("layer4", layer4)
	data.Set("layer7", layer7)

	var settings DDoSSettings
	if err := k.client.Post(ctx, path, data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// WaitFor polls the VM status until the condition reports true or the
// context is done. Useful after power actions, which return before the VM
// has actually changed state.
func (k *KVMService) WaitFor(ctx context.Context, internalID string, condition func(status map[string]interface{}) bool) error {
	return waitForCondition(ctx, func() (bool, error) {
		status, err := k.Status(ctx, internalID)
		if err != nil {
			return false, err
		}
		return condition(status), nil
	})
}