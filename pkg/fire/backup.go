// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"fmt"
	"net/url"
)

// BackupService handles KVM backup operations.
type BackupService struct {
	client *Client
}

// NewBackupService creates a new backup service.
func NewBackupService(client *Client) *BackupService {
	return &BackupService{client: client}
}

// Backup represents one stored VM backup.
type Backup struct {
	ID          string   `json:"backup_id"`
	Description string   `json:"description,omitempty"`
	Size        float64  `json:"size,omitempty"`
	Status      string   `json:"status,omitempty"`
	CreatedAt   FireTime `json:"created,omitempty"`
}

// backupList is the wire shape of GET /kvm/{id}/backup/list.
type backupList struct {
	Backups []Backup `json:"backups"`
}

// List returns all backups of a VM.
func (b *BackupService) List(ctx context.Context, internalID string) ([]Backup, error) {
	var list backupList
	path := fmt.Sprintf("/kvm/%s/backup/list", url.PathEscape(internalID))
	if err := b.client.Get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Backups, nil
}

// Create starts a new backup and returns the panel's confirmation message.
func (b *BackupService) Create(ctx context.Context, internalID string) (string, error) {
	path := fmt.Sprintf("/kvm/%s/backup/create", url.PathEscape(internalID))
	env, err := b.client.roundTrip(ctx, "POST", path, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Restore rolls a VM back to the given backup.
//
// POST /kvm/{id}/backup/restore with backup_id=...
func (b *BackupService) Restore(ctx context.Context, internalID, backupID string) (string, error) {
	path := fmt.Sprintf("/kvm/%s/backup/restore", url.PathEscape(internalID))

	data := url.Values{}
	data.Set("backup_id", backupID)

	env, err := b.client.roundTrip(ctx, "POST", path, data)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Delete removes a stored backup.
//
// DELETE /kvm/{id}/backup/delete with backup_id=...
func (b *BackupService) Delete(ctx context.Context, internalID, backupID string) (string, error) {
	path := fmt.Sprintf("/kvm/%s/backup/delete", url.PathEscape(internalID))

	data := url.Values{}
	data.Set("backup_id", backupID)

	env, err := b.client.roundTrip(ctx, "DELETE", path, data)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}