// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/firectl/firectl/pkg/fire"
)

func runPower(ctx context.Context, client *fire.Client, cmd *command) error {
	svc, err := client.Services.Resolve(ctx, cmd.target, fire.ServiceTypeKVM)
	if err != nil {
		return err
	}

	msg, err := client.KVM.Power(ctx, svc.InternalID, cmd.mode)
	if err != nil {
		return err
	}
	successColor.Printf("✓ %s: %s\n", svc.Name, msg)

	if cmd.wait {
		want := "running"
		if cmd.mode == fire.PowerStop {
			want = "stopped"
		}
		fmt.Printf("Waiting for %s to be %s...\n", svc.Name, want)
		err := client.KVM.WaitFor(ctx, svc.InternalID, func(status map[string]interface{}) bool {
			state, _ := status["vm_state"].(string)
			return strings.EqualFold(state, want)
		})
		if err != nil {
			return err
		}
		successColor.Printf("✓ %s is %s\n", svc.Name, want)
	}

	return nil
}

func runBackup(ctx context.Context, client *fire.Client, cmd *command) error {
	svc, err := client.Services.Resolve(ctx, cmd.target, fire.ServiceTypeKVM)
	if err != nil {
		return err
	}

	switch cmd.backupOp {
	case "list":
		backups, err := client.Backup.List(ctx, svc.InternalID)
		if err != nil {
			return err
		}
		heading("Backups of %s", svc.Name)
		if len(backups) == 0 {
			fmt.Println("No backups found")
			return nil
		}
		for _, b := range backups {
			fmt.Printf("%s  %-10s  %8.2f GB  %s  %s\n",
				b.CreatedAt.Format("2006-01-02 15:04"), b.Status, b.Size, b.ID, b.Description)
		}
		return nil

	case "create":
		msg, err := client.Backup.Create(ctx, svc.InternalID)
		if err != nil {
			return err
		}
		successColor.Printf("✓ %s\n", msg)
		return nil

	case "restore":
		msg, err := client.Backup.Restore(ctx, svc.InternalID, cmd.backupID)
		if err != nil {
			return err
		}
		successColor.Printf("✓ %s\n", msg)
		return nil

	default: // delete, validated earlier
		msg, err := client.Backup.Delete(ctx, svc.InternalID, cmd.backupID)
		if err != nil {
			return err
		}
		successColor.Printf("✓ %s\n", msg)
		return nil
	}
}

func runTraffic(ctx context.Context, client *fire.Client, cmd *command) error {
	svc, err := client.Services.Resolve(ctx, cmd.target, fire.ServiceTypeKVM)
	if err != nil {
		return err
	}

	if cmd.trafficOp == "logs" {
		entries, err := client.Traffic.Log(ctx, svc.InternalID)
		if err != nil {
			return err
		}
		heading("Traffic log of %s", svc.Name)
		for _, e := range entries {
			fmt.Printf("%s  in %8.2f GB  out %8.2f GB  sum %8.2f GB\n", e.Date, e.In, e.Out, e.Sum)
		}
		return nil
	}

	usage, err := client.Traffic.Usage(ctx, svc.InternalID)
	if err != nil {
		return err
	}

	heading("Traffic of %s", svc.Name)
	fmt.Printf("%s: %.2f GB\n", keyColor.Sprint("Incoming"), usage.Usage.In)
	fmt.Printf("%s: %.2f GB\n", keyColor.Sprint("Outgoing"), usage.Usage.Out)
	fmt.Printf("%s: %.2f GB\n", keyColor.Sprint("Total"), usage.Usage.Total)
	if usage.Limit.Monthly > 0 {
		fmt.Printf("%s: %.2f GB of %.2f GB\n", keyColor.Sprint("Monthly"),
			usage.Limit.Monthly-usage.Limit.Remaining, usage.Limit.Monthly)
		fmt.Println(progressBar(usage.UsedPercent(), 20))
	} else {
		fmt.Printf("%s: unlimited\n", keyColor.Sprint("Monthly"))
	}
	return nil
}

func runMonitoring(ctx context.Context, client *fire.Client, cmd *command) error {
	svc, err := client.Services.Resolve(ctx, cmd.target, fire.ServiceTypeKVM)
	if err != nil {
		return err
	}

	if cmd.monitoringOp == "reading" {
		timings, err := client.Monitoring.Timings(ctx, svc.InternalID)
		if err != nil {
			return err
		}
		heading("Monitoring readings of %s", svc.Name)
		printValue(timings)
		return nil
	}

	incidences, err := client.Monitoring.Incidences(ctx, svc.InternalID)
	if err != nil {
		return err
	}
	heading("Outages of %s", svc.Name)
	if len(incidences) == 0 {
		successColor.Println("No outages recorded")
		return nil
	}
	for _, in := range incidences {
		end := in.End
		if end == "" {
			end = warnColor.Sprint("ongoing")
		}
		fmt.Printf("%s  %s → %s  downtime %d min\n", in.Type, in.Start, end, in.Downtime)
	}
	return nil
}

func runDDoS(ctx context.Context, client *fire.Client, cmd *command) error {
	svc, err := client.Services.Resolve(ctx, cmd.target, fire.ServiceTypeKVM)
	if err != nil {
		return err
	}

	settings, err := client.KVM.DDoS(ctx, svc.InternalID)
	if err != nil {
		return err
	}

	heading("DDoS protection of %s", svc.Name)
	fmt.Printf("%s: %s\n", keyColor.Sprint("Layer 4"), formatScalar(settings.Layer4))
	fmt.Printf("%s: %s\n", keyColor.Sprint("Layer 7"), formatScalar(settings.Layer7))
	if settings.IP != "" {
		fmt.Printf("%s: %s\n", keyColor.Sprint("IP"), settings.IP)
	}
	return nil
}

func runInstall() error {
	warnColor.Println("Reinstalling is not finished yet")
	return nil
}