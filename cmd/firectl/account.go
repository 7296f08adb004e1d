// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/firectl/firectl/pkg/fire"
)

func runAccount(ctx context.Context, client *fire.Client) error {
	account, err := client.Account.Get(ctx)
	if err != nil {
		return err
	}

	heading("Account")
	fmt.Printf("%s: %s %s\n", keyColor.Sprint("Name"), account.Firstname, account.Lastname)
	fmt.Printf("%s: %s\n", keyColor.Sprint("Email"), account.Email)
	fmt.Printf("%s: %.2f €\n", keyColor.Sprint("Balance"), float64(account.Balance))
	fmt.Printf("%s: %s\n", keyColor.Sprint("Plus User"), formatScalar(account.IsPlusUser))
	if account.RegistryDate != "" {
		fmt.Printf("%s: %s\n", keyColor.Sprint("Registered"), account.RegistryDate)
	}
	if account.DiscordID != "" {
		fmt.Printf("%s: %s\n", keyColor.Sprint("Discord ID"), account.DiscordID)
	}
	if addr := account.InvoiceAddress; addr != nil {
		heading("Invoice Address")
		fmt.Printf("%s\n%s %s\n%s %s\n%s\n", addr.Name, addr.Street, addr.Number, addr.Zip, addr.City, addr.Country)
	}
	return nil
}

func runDonations(ctx context.Context, client *fire.Client) error {
	info, err := client.Account.Donations(ctx)
	if err != nil {
		return err
	}

	heading("Donation Page")
	fmt.Printf("%s: %s\n", keyColor.Sprint("Enabled"), formatScalar(info.Information.Enabled))
	if info.Information.Link != "" {
		fmt.Printf("%s: %s\n", keyColor.Sprint("Link"), info.Information.Link)
	}
	if info.Information.Description != "" {
		fmt.Printf("%s: %s\n", keyColor.Sprint("Description"), info.Information.Description)
	}

	heading("Donations")
	if len(info.Donations) == 0 {
		fmt.Println("No donations received")
		return nil
	}
	var total float64
	for _, d := range info.Donations {
		total += float64(d.Amount)
		fmt.Printf("%s  %-20s  %6.2f €  %s\n", d.Date, d.Donator, float64(d.Amount), d.Status)
	}
	fmt.Printf("%s: %.2f €\n", keyColor.Sprint("Total"), total)
	return nil
}

func runAffiliate(ctx context.Context, client *fire.Client) error {
	info, err := client.Account.Affiliate(ctx)
	if err != nil {
		return err
	}

	heading("Affiliate")
	if info.Information.Link != "" {
		fmt.Printf("%s: %s\n", keyColor.Sprint("Link"), info.Information.Link)
	}
	fmt.Printf("%s: %d\n", keyColor.Sprint("Confirmed Leads"), info.Summary.ConfirmedLeads)
	fmt.Printf("%s: %d\n", keyColor.Sprint("URL Clicks"), info.Summary.URLClicks)
	fmt.Printf("%s: %.2f €\n", keyColor.Sprint("Paid Out"), float64(info.Summary.BalancePaid))
	fmt.Printf("%s: %.2f €\n", keyColor.Sprint("Pending"), float64(info.Summary.BalancePending))

	if len(info.Leads) == 0 {
		return nil
	}
	heading("Leads")
	for _, l := range info.Leads {
		fmt.Printf("%s  %-20s  %-30s  %6.2f €  %s\n", l.Date, l.Customer, l.ProductName, float64(l.BuyPrice), l.Status)
	}
	return nil
}