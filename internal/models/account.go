package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AccountType is the account category carried on the wire.
type AccountType string

const (
	TypeCourant AccountType = "COURANT"
	TypeEpargne AccountType = "EPARGNE"
)

// ParseAccountType maps user input onto the closed type enumeration.
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TypeCourant, TypeEpargne:
		return t, nil
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// Valid reports whether t is one of the two wire values.
func (t AccountType) Valid() bool {
	return t == TypeCourant || t == TypeEpargne
}

// Account represents a bank account record. ID is nil until the server
// assigns one on creation. Field names on the wire are the same in both
// formats: id, solde, type, dateCreation.
type Account struct {
	ID           *int64      `json:"id"`
	Balance      float64     `json:"solde"`
	Type         AccountType `json:"type"`
	CreationDate string      `json:"dateCreation"`
}

// AccountList is the wrapped collection the XML format returns for list
// responses. It exists only to mirror the wire shape and is unwrapped at
// the repository boundary.
type AccountList struct {
	Comptes []Account
}

// ParseBalance validates user-supplied balance text before an Account is
// constructed. Empty or non-numeric input is rejected here, before any
// network call.
func ParseBalance(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("balance is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid balance %q: %w", s, err)
	}
	return v, nil
}

// Today returns the current date in the wire format (yyyy-MM-dd). Creation
// dates are generated client-side, not by the server.
func Today() string {
	return time.Now().Format("2006-01-02")
}
