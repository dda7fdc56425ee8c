package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/maprojet/compte-client/internal/client"
	"github.com/maprojet/compte-client/internal/models"
	"github.com/sirupsen/logrus"
)

const comptesPath = "/comptes"

// AccountService issues the REST operations of the remote compte resource.
// The list operation has two shapes: the JSON format returns a bare array,
// the XML format a wrapped collection. Every call is a single request; no
// retries.
type AccountService struct {
	client *client.Client
	log    *logrus.Logger
}

// NewAccountService initializes a service over an already-configured wire
// client.
func NewAccountService(c *client.Client, log *logrus.Logger) *AccountService {
	return &AccountService{client: c, log: log}
}

// ListJSON fetches all accounts as the bare array the JSON format returns.
func (s *AccountService) ListJSON(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.client.Do(ctx, http.MethodGet, comptesPath, nil, &accounts); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ListXML fetches all accounts wrapped in the XML list envelope.
func (s *AccountService) ListXML(ctx context.Context) (*models.AccountList, error) {
	list := &models.AccountList{}
	if err := s.client.Do(ctx, http.MethodGet, comptesPath, nil, list); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return list, nil
}

// GetByID fetches one account.
func (s *AccountService) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	account := &models.Account{}
	if err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", comptesPath, id), nil, account); err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}
	return account, nil
}

// Create posts a new account. The input ID must be nil; the server assigns
// one and returns the stored record.
func (s *AccountService) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	created := &models.Account{}
	if err := s.client.Do(ctx, http.MethodPost, comptesPath, account, created); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

// Update replaces the account stored under id with the full payload.
func (s *AccountService) Update(ctx context.Context, id int64, account *models.Account) (*models.Account, error) {
	updated := &models.Account{}
	if err := s.client.Do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", comptesPath, id), account, updated); err != nil {
		return nil, fmt.Errorf("failed to update account %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes the account. Success carries no payload.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", comptesPath, id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}
	return nil
}
