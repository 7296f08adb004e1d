// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/firectl/firectl/pkg/fire"
)

const (
	menuExtras = "__extras"
	menuQuit   = "__quit"
	menuBack   = "__back"
)

// runMenu is the interactive mode entered when no action flag is given. It
// loops until the user quits; every iteration re-fetches the service list so
// that newly ordered services show up.
func runMenu(ctx context.Context, client *fire.Client) error {
	for {
		services, err := client.Services.List(ctx)
		if err != nil {
			return err
		}

		choice, err := pickService(services)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case menuQuit:
			return nil
		case menuExtras:
			if err := runExtras(ctx, client); err != nil {
				return err
			}
		default:
			svc := findService(services, choice)
			if svc == nil {
				continue
			}
			if err := showService(ctx, client, svc); err != nil {
				warnColor.Printf("! %v\n", err)
			}
		}
	}
}

func pickService(services []fire.Service) (string, error) {
	options := make([]huh.Option[string], 0, len(services)+2)
	for _, svc := range services {
		label := fmt.Sprintf("%s (%s)", svc.Name, svc.Type)
		options = append(options, huh.NewOption(label, svc.InternalID))
	}
	options = append(options,
		huh.NewOption("Extras", menuExtras),
		huh.NewOption("Quit", menuQuit),
	)

	var choice string
	err := huh.NewSelect[string]().
		Title("Select a service").
		Options(options...).
		Value(&choice).
		Run()
	return choice, err
}

func findService(services []fire.Service, internalID string) *fire.Service {
	for i := range services {
		if services[i].InternalID == internalID {
			return &services[i]
		}
	}
	return nil
}

// showService prints the type-appropriate detail view for a service.
func showService(ctx context.Context, client *fire.Client, svc *fire.Service) error {
	heading("%s (%s)", svc.Name, svc.Type)

	switch svc.Type {
	case fire.ServiceTypeKVM:
		status, err := client.KVM.Status(ctx, svc.InternalID)
		if err != nil {
			return err
		}
		printValue(status)
	case fire.ServiceTypeWebspace:
		info, err := client.Webspace.Get(ctx, svc.InternalID)
		if err != nil {
			return err
		}
		printValue(info)
	case fire.ServiceTypeDomain:
		info, err := client.Domain.Get(ctx, svc.InternalID)
		if err != nil {
			return err
		}
		printValue(info)
	default:
		fmt.Println("No detail view for this service type")
	}
	return nil
}

func runExtras(ctx context.Context, client *fire.Client) error {
	for {
		var choice string
		err := huh.NewSelect[string]().
			Title("Extras").
			Options(
				huh.NewOption("Account", "account"),
				huh.NewOption("Donations", "donations"),
				huh.NewOption("Affiliate", "affiliate"),
				huh.NewOption("Back", menuBack),
			).
			Value(&choice).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case "account":
			err = runAccount(ctx, client)
		case "donations":
			err = runDonations(ctx, client)
		case "affiliate":
			err = runAffiliate(ctx, client)
		default:
			return nil
		}
		if err != nil {
			warnColor.Printf("! %v\n", err)
		}
	}
}