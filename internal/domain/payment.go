package domain

import (
	"fmt"
	"strings"
)

// PaymentMode is the broad family a payment method belongs to.
type PaymentMode string

const (
	PaymentModeCreditCard PaymentMode = "CREDIT_CARD"
	PaymentModeDebitCard  PaymentMode = "DEBIT_CARD"
	PaymentModeUPI        PaymentMode = "UPI"
	PaymentModeWallet     PaymentMode = "WALLET"
	PaymentModeNetBanking PaymentMode = "NET_BANKING"
)

// PaymentMethod describes how the customer pays. The set of implementations is closed:
// CardPayment, UPIPayment and WalletPayment.
type PaymentMethod interface {
	PaymentMode() PaymentMode
	// Matches reports whether every field set on the criteria equals the
	// corresponding field of the method, ignoring case.
	Matches(criteria MatchCriteria) bool
	String() string

	isPaymentMethod()
}

// MatchCriteria holds optional requirements on a payment method. An empty field matches anything.
type MatchCriteria struct {
	Mode           PaymentMode
	Bank           string
	CardType       string
	WalletProvider string
	UPIApp         string
}

// IsEmpty reports whether no requirement is set.
func (c MatchCriteria) IsEmpty() bool {
	return c == MatchCriteria{}
}

func (c MatchCriteria) String() string {
	var parts []string
	for _, kv := range [][2]string{
		{"mode", string(c.Mode)},
		{"bank", c.Bank},
		{"card_type", c.CardType},
		{"wallet_provider", c.WalletProvider},
		{"upi_app", c.UPIApp},
	} {
		if kv[1] != "" {
			parts = append(parts, kv[0]+"="+kv[1])
		}
	}
	if len(parts) == 0 {
		return "any"
	}
	return strings.Join(parts, " ")
}

// fieldMatches treats an empty requirement as a wildcard.
func fieldMatches(required, actual string) bool {
	return required == "" || strings.EqualFold(required, actual)
}

// CardPayment is a credit or debit card.
type CardPayment struct {
	Mode     PaymentMode `json:"mode"`
	Bank     string      `json:"bank"`
	CardType string      `json:"card_type"`
}

// NewCreditCard returns a credit card payment for the given bank and network.
func NewCreditCard(bank, cardType string) CardPayment {
	return CardPayment{Mode: PaymentModeCreditCard, Bank: bank, CardType: cardType}
}

// NewDebitCard returns a debit card payment for the given bank and network.
func NewDebitCard(bank, cardType string) CardPayment {
	return CardPayment{Mode: PaymentModeDebitCard, Bank: bank, CardType: cardType}
}

func (p CardPayment) PaymentMode() PaymentMode { return p.Mode }

func (p CardPayment) Matches(c MatchCriteria) bool {
	if !fieldMatches(string(c.Mode), string(p.Mode)) {
		return false
	}
	if !fieldMatches(c.Bank, p.Bank) {
		return false
	}
	if !fieldMatches(c.CardType, p.CardType) {
		return false
	}
	return c.WalletProvider == "" && c.UPIApp == ""
}

func (p CardPayment) String() string {
	return fmt.Sprintf("%s %s (%s)", p.Bank, p.CardType, p.Mode)
}

func (CardPayment) isPaymentMethod() {}

// UPIPayment is a UPI transfer through a given app.
type UPIPayment struct {
	UPIID string `json:"upi_id"`
	App   string `json:"app"`
}

func NewUPI(upiID, app string) UPIPayment {
	return UPIPayment{UPIID: upiID, App: app}
}

func (UPIPayment) PaymentMode() PaymentMode { return PaymentModeUPI }

func (p UPIPayment) Matches(c MatchCriteria) bool {
	if !fieldMatches(string(c.Mode), string(PaymentModeUPI)) {
		return false
	}
	if !fieldMatches(c.UPIApp, p.App) {
		return false
	}
	return c.Bank == "" && c.CardType == "" && c.WalletProvider == ""
}

func (p UPIPayment) String() string {
	return fmt.Sprintf("%s UPI (%s)", p.App, p.UPIID)
}

func (UPIPayment) isPaymentMethod() {}

// WalletPayment is a prepaid wallet.
type WalletPayment struct {
	Provider string `json:"provider"`
}

func NewWallet(provider string) WalletPayment {
	return WalletPayment{Provider: provider}
}

func (WalletPayment) PaymentMode() PaymentMode { return PaymentModeWallet }

func (p WalletPayment) Matches(c MatchCriteria) bool {
	if !fieldMatches(string(c.Mode), string(PaymentModeWallet)) {
		return false
	}
	if !fieldMatches(c.WalletProvider, p.Provider) {
		return false
	}
	return c.Bank == "" && c.CardType == "" && c.UPIApp == ""
}

func (p WalletPayment) String() string {
	return p.Provider + " Wallet"
}

func (WalletPayment) isPaymentMethod() {}
