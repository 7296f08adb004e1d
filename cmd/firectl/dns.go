// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/firectl/firectl/pkg/fire"
)

func runDNS(ctx context.Context, client *fire.Client, cmd *command) error {
	svc, err := client.Services.Resolve(ctx, cmd.target, fire.ServiceTypeDomain)
	if err != nil {
		return err
	}

	switch cmd.dnsOp {
	case "add":
		record, err := client.Domain.AddDNS(ctx, svc.InternalID, cmd.record.rtype, cmd.record.name, cmd.record.data)
		if err != nil {
			return err
		}
		successColor.Printf("✓ Added %s record %s → %s\n", record.Type, record.Name, record.Data)
		return nil

	case "edit":
		record, err := client.Domain.EditDNS(ctx, svc.InternalID, cmd.record.id, cmd.record.rtype, cmd.record.name, cmd.record.data)
		if err != nil {
			return err
		}
		successColor.Printf("✓ Updated record %s: %s %s → %s\n", record.ID, record.Type, record.Name, record.Data)
		return nil

	case "remove":
		if err := client.Domain.RemoveDNS(ctx, svc.InternalID, cmd.record.id); err != nil {
			return err
		}
		successColor.Printf("✓ Removed record %s\n", cmd.record.id)
		return nil

	default: // list
		records, err := client.Domain.ListDNS(ctx, svc.InternalID)
		if err != nil {
			return err
		}
		heading("DNS records of %s", svc.Name)
		if len(records) == 0 {
			fmt.Println("No records found")
			return nil
		}
		for _, r := range records {
			fmt.Printf("%-12s  %-6s  %-30s  %s\n", r.ID, r.Type, r.Name, r.Data)
		}
		return nil
	}
}