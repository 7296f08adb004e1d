// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/firectl/firectl/pkg/fire"
)

type actionKind int

const (
	actionMenu actionKind = iota
	actionPower
	actionBackup
	actionTraffic
	actionMonitoring
	actionDDoS
	actionDNS
	actionAccount
	actionDonations
	actionAffiliate
	actionInstall
)

// command is a fully validated invocation, ready to execute. All flag
// validation happens before it is built so that a malformed command line
// never reaches the network.
type command struct {
	kind   actionKind
	target string

	mode fire.PowerMode
	wait bool

	backupOp string
	backupID string

	trafficOp    string
	monitoringOp string

	dnsOp  string
	record dnsRecordSpec
}

// dnsRecordSpec holds the parsed --add/--edit/--remove payload.
type dnsRecordSpec struct {
	id    string
	rtype string
	name  string
	data  string
}

// selectCommand turns parsed flags into a single command, enforcing that
// exactly one action was requested and that its companion flags are present
// and well-formed.
func selectCommand(opts *options) (*command, error) {
	cmd := &command{kind: actionMenu, target: opts.target, wait: opts.wait}
	actions := 0

	powerTargets := map[fire.PowerMode]string{
		fire.PowerStart:   opts.start,
		fire.PowerStop:    opts.stop,
		fire.PowerRestart: opts.restart,
	}
	for mode, target := range powerTargets {
		if target == "" {
			continue
		}
		actions++
		cmd.kind = actionPower
		cmd.mode = mode
		cmd.target = target
	}

	if opts.backup != "" {
		actions++
		cmd.kind = actionBackup
		cmd.backupOp = opts.backup
		cmd.backupID = opts.backupID
	}
	if opts.traffic != "" {
		actions++
		cmd.kind = actionTraffic
		cmd.trafficOp = opts.traffic
	}
	if opts.monitoring != "" {
		actions++
		cmd.kind = actionMonitoring
		cmd.monitoringOp = opts.monitoring
	}
	if opts.ddos {
		actions++
		cmd.kind = actionDDoS
	}

	dnsOp := opts.dns
	if dnsOp == "" {
		// --add/--edit/--remove imply the dns action.
		switch {
		case opts.add != "":
			dnsOp = "add"
		case opts.edit != "":
			dnsOp = "edit"
		case opts.remove != "":
			dnsOp = "remove"
		}
	}
	if dnsOp != "" {
		actions++
		cmd.kind = actionDNS
		cmd.dnsOp = dnsOp
	}

	if opts.account {
		actions++
		cmd.kind = actionAccount
	}
	if opts.donations {
		actions++
		cmd.kind = actionDonations
	}
	if opts.affiliate {
		actions++
		cmd.kind = actionAffiliate
	}
	if opts.install {
		actions++
		cmd.kind = actionInstall
	}

	if actions > 1 {
		return nil, fire.NewValidationError("exactly one action may be given per invocation")
	}

	if err := validateCommand(cmd, opts); err != nil {
		return nil, err
	}

	return cmd, nil
}

func validateCommand(cmd *command, opts *options) error {
	needsTarget := func(what string) error {
		if cmd.target == "" {
			return fire.NewValidationError(fmt.Sprintf("%s needs --target (service name or internal id)", what))
		}
		return nil
	}

	switch cmd.kind {
	case actionPower:
		// The power flags carry the target as their value.
		return nil

	case actionBackup:
		switch cmd.backupOp {
		case "list", "create":
		case "restore", "delete":
			if cmd.backupID == "" {
				return fire.NewValidationError(fmt.Sprintf("--backup %s needs --backup-id", cmd.backupOp))
			}
		default:
			return fire.NewValidationError(fmt.Sprintf("unknown backup action %q (want list, create, restore or delete)", cmd.backupOp))
		}
		return needsTarget("--backup")

	case actionTraffic:
		if cmd.trafficOp != "usage" && cmd.trafficOp != "logs" {
			return fire.NewValidationError(fmt.Sprintf("unknown traffic action %q (want usage or logs)", cmd.trafficOp))
		}
		return needsTarget("--traffic")

	case actionMonitoring:
		if cmd.monitoringOp != "reading" && cmd.monitoringOp != "outages" {
			return fire.NewValidationError(fmt.Sprintf("unknown monitoring action %q (want reading or outages)", cmd.monitoringOp))
		}
		return needsTarget("--monitoring")

	case actionDDoS:
		return needsTarget("--ddos")

	case actionDNS:
		switch cmd.dnsOp {
		case "list":
		case "add":
			spec, err := parseRecordSpec(opts.add, 3)
			if err != nil {
				return err
			}
			cmd.record = *spec
		case "edit":
			spec, err := parseRecordSpec(opts.edit, 4)
			if err != nil {
				return err
			}
			cmd.record = *spec
		case "remove":
			if opts.remove == "" {
				return fire.NewValidationError("--dns remove needs --remove with a record id")
			}
			cmd.record = dnsRecordSpec{id: opts.remove}
		default:
			return fire.NewValidationError(fmt.Sprintf("unknown dns action %q (want list, add, edit or remove)", cmd.dnsOp))
		}
		return needsTarget("--dns")
	}

	return nil
}

// parseRecordSpec parses a comma-separated record. Three fields mean
// type,name,data; four mean record_id,type,name,data. No other count is
// accepted.
func parseRecordSpec(raw string, want int) (*dnsRecordSpec, error) {
	if raw == "" {
		switch want {
		case 3:
			return nil, fire.NewValidationError("--dns add needs --add with type,name,data")
		default:
			return nil, fire.NewValidationError("--dns edit needs --edit with record_id,type,name,data")
		}
	}

	parts := strings.Split(raw, ",")
	if len(parts) != want {
		return nil, fire.NewValidationError(fmt.Sprintf("record %q has %d comma-separated fields, want %d", raw, len(parts), want))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, fire.NewValidationError(fmt.Sprintf("record %q has an empty field", raw))
		}
	}

	spec := &dnsRecordSpec{}
	if want == 4 {
		spec.id, parts = parts[0], parts[1:]
	}
	spec.rtype, spec.name, spec.data = parts[0], parts[1], parts[2]
	return spec, nil
}

// execute runs a validated command against the API.
func execute(ctx context.Context, client *fire.Client, cmd *command) error {
	switch cmd.kind {
	case actionPower:
		return runPower(ctx, client, cmd)
	case actionBackup:
		return runBackup(ctx, client, cmd)
	case actionTraffic:
		return runTraffic(ctx, client, cmd)
	case actionMonitoring:
		return runMonitoring(ctx, client, cmd)
	case actionDDoS:
		return runDDoS(ctx, client, cmd)
	case actionDNS:
		return runDNS(ctx, client, cmd)
	case actionAccount:
		return runAccount(ctx, client)
	case actionDonations:
		return runDonations(ctx, client)
	case actionAffiliate:
		return runAffiliate(ctx, client)
	case actionInstall:
		return runInstall()
	default:
		return runMenu(ctx, client)
	}
}