// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
)

// AccountService handles account-level API operations.
type AccountService struct {
	client *Client
}

// NewAccountService creates a new account service.
func NewAccountService(client *Client) *AccountService {
	return &AccountService{client: client}
}

// InvoiceAddress is the billing address attached to an account.
type InvoiceAddress struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	Number  string `json:"number"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Account is the profile of the authenticated customer.
type Account struct {
	Firstname      string          `json:"firstname"`
	Lastname       string          `json:"lastname"`
	Email          string          `json:"email"`
	ProfileImage   string          `json:"profile_image,omitempty"`
	Balance        StringFloat     `json:"balance"`
	IsPlusUser     bool            `json:"is_plus_user"`
	RegistryDate   string          `json:"registry_date,omitempty"`
	DiscordID      string          `json:"discord_id,omitempty"`
	InvoiceAddress *InvoiceAddress `json:"invoice_address,omitempty"`
}

// DonationPage is the public donation page configuration.
type DonationPage struct {
	Enabled         bool   `json:"enabled"`
	Description     string `json:"description,omitempty"`
	Link            string `json:"link,omitempty"`
	BackgroundImage string `json:"background_image,omitempty"`
}

// Donation is one received donation.
type Donation struct {
	ID      string      `json:"id"`
	Date    string      `json:"date"`
	Donator string      `json:"donator"`
	Amount  StringFloat `json:"amount"`
	Status  string      `json:"status"`
}

// DonationInfo bundles the donation page and its received donations.
type DonationInfo struct {
	Information DonationPage `json:"information"`
	Donations   []Donation   `json:"donations"`
}

// AffiliateSummary aggregates the referral program's results.
type AffiliateSummary struct {
	ConfirmedLeads int         `json:"confirmed_leads"`
	URLClicks      int         `json:"url_clicks"`
	BalancePaid    StringFloat `json:"balance_paid"`
	BalancePending StringFloat `json:"balance_pending"`
}

// AffiliateLead is one referred customer.
type AffiliateLead struct {
	Customer    string      `json:"customer"`
	Date        string      `json:"date"`
	BuyPrice    StringFloat `json:"buy_price"`
	ProductName string      `json:"product_name"`
	Status      string      `json:"status"`
}

// AffiliateInfo bundles referral link, summary and leads.
type AffiliateInfo struct {
	Information struct {
		Link string `json:"link"`
	} `json:"information"`
	Summary AffiliateSummary `json:"summary"`
	Leads   []AffiliateLead  `json:"leads"`
}

// Get returns the authenticated account's profile.
//
// GET /account
func (a *AccountService) Get(ctx context.Context) (*Account, error) {
	var account Account
	if err := a.client.Get(ctx, "/account", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Donations returns the donation page configuration and received donations.
//
// GET /account/donations
func (a *AccountService) Donations(ctx context.Context) (*DonationInfo, error) {
	var info DonationInfo
	if err := a.client.Get(ctx, "/account/donations", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Affiliate returns the referral program's link, summary and leads.
//
// GET /account/affiliate
func (a *AccountService) Affiliate(ctx context.Context) (*AffiliateInfo, error) {
	var info AffiliateInfo
	if err := a.client.Get(ctx, "/account/affiliate", &info); err != nil {
		return nil, err
	}
	return &info, nil
}