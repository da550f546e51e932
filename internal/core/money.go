// Package core provides money parsing and handling utilities.
//
// This file contains the decimal-backed Money type used for expense amounts
// and budgets, and its display formatting through go-money currencies.
package core

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used for display when no currency is configured.
const DefaultCurrency = money.USD

// Money is an exact decimal amount. It carries no currency; the currency is a
// display concern chosen by configuration.
type Money struct {
	value decimal.Decimal
}

// Zero is the additive identity.
func Zero() Money {
	return Money{value: decimal.Zero}
}

// ParseMoney converts user or ledger text into Money.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional sign. Any other input fails with ErrParse.
//
// Examples:
//
//	ParseMoney("12.34") -> 12.34, nil
//	ParseMoney("12,34") -> 12.34, nil
//	ParseMoney("-3")    -> -3, nil
//	ParseMoney("abc")   -> 0, ErrParse
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty amount", ErrParse)
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q", ErrParse, s)
	}
	return Money{value: d}, nil
}

// MustParseMoney is ParseMoney for constants; it panics on invalid input.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value)} }
func (m Money) Abs() Money         { return Money{value: m.value.Abs()} }

// String returns the canonical decimal text used in the ledgers.
func (m Money) String() string {
	return m.value.String()
}

// Format renders the amount with the currency's symbol, separators and minor
// unit precision. Unknown currency codes fall back to two plain decimals.
func (m Money) Format(currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return m.value.StringFixed(2)
	}
	minor := m.value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// CurrencySymbol returns the display symbol for a currency code, or the code
// itself followed by a space when go-money does not know it.
func CurrencySymbol(currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil || cur.Grapheme == "" {
		return currencyCode + " "
	}
	return cur.Grapheme
}
