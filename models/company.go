package models

// DefaultValidityDays applies when no company settings are stored.
const DefaultValidityDays = 30

// CompanyAddress is the postal address on the quote header.
type CompanyAddress struct {
	Street   string `json:"street"`
	Suburb   string `json:"suburb"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// CompanySettings are the reseller's own details printed on every quote.
type CompanySettings struct {
	CompanyName        string         `json:"companyName"`
	TradingName        string         `json:"tradingName,omitempty"`
	ABN                string         `json:"abn"`
	Address            CompanyAddress `json:"address"`
	Phone              string         `json:"phone"`
	Email              string         `json:"email"`
	Website            string         `json:"website,omitempty"`
	LogoURL            string         `json:"logoUrl,omitempty"`
	PrimaryColor       string         `json:"primaryColor,omitempty"`
	TermsAndConditions string         `json:"termsAndConditions,omitempty"`
	PaymentTerms       string         `json:"paymentTerms,omitempty"`
	ValidityPeriod     int            `json:"validityPeriod"`
	FooterText         string         `json:"footerText,omitempty"`
	LastUpdated        string         `json:"lastUpdated,omitempty"`
	Version            int            `json:"version,omitempty"`
	IsConfigured       bool           `json:"isConfigured"`
}

// ValidityDays returns the configured validity period, falling back to the
// default for missing or non-positive values.
func (c *CompanySettings) ValidityDays() int {
	if c == nil || c.ValidityPeriod <= 0 {
		return DefaultValidityDays
	}
	return c.ValidityPeriod
}
