package repository

import (
	"context"

	"github.com/maprojet/compte-client/internal/client"
	"github.com/maprojet/compte-client/internal/models"
	"github.com/maprojet/compte-client/internal/service"
	"github.com/sirupsen/logrus"
)

// AccountRepository presents one format-independent CRUD surface over the
// account service, hiding the JSON/XML list-shape divergence from callers.
//
// Methods block until the single underlying request completes and return the
// two-outcome result directly; callers that need asynchrony run them in
// their own goroutines. No ordering is guaranteed between independent calls
// (a ListAll issued right after Create may observe pre-create state), and no
// promise is made about which goroutine observes the result.
type AccountRepository struct {
	svc    *service.AccountService
	format client.Format
	log    *logrus.Logger
}

// NewAccountRepository binds a repository to one wire format, obtaining the
// matching client from the factory.
func NewAccountRepository(f *client.Factory, format client.Format, log *logrus.Logger) *AccountRepository {
	return &AccountRepository{
		svc:    service.NewAccountService(f.Client(format), log),
		format: format,
		log:    log,
	}
}

// Format returns the wire format this repository was bound to.
func (r *AccountRepository) Format() client.Format {
	return r.format
}

// ListAll returns every account in one normalized slice regardless of the
// active format. Under XML the wrapped list is unwrapped in memory — no
// extra network call — and failures keep the underlying cause, including
// the status code of a rejected response.
func (r *AccountRepository) ListAll(ctx context.Context) ([]models.Account, error) {
	if r.format == client.FormatJSON {
		return r.svc.ListJSON(ctx)
	}
	list, err := r.svc.ListXML(ctx)
	if err != nil {
		return nil, err
	}
	return list.Comptes, nil
}

// GetByID fetches one account.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return r.svc.GetByID(ctx, id)
}

// Create stores a new account. The caller leaves ID nil; the returned
// account carries the server-assigned one.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	return r.svc.Create(ctx, account)
}

// Update replaces the stored account with the full payload.
func (r *AccountRepository) Update(ctx context.Context, id int64, account *models.Account) (*models.Account, error) {
	return r.svc.Update(ctx, id, account)
}

// Delete removes an account.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	return r.svc.Delete(ctx, id)
}
