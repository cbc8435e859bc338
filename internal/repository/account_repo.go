package repository

import (
	"backend/internal/model"
	"backend/internal/storage"
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when an operation's target record is absent.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when a write would leave two accounts with
// the same email. The check runs inside the store's write transaction, so
// concurrent writers cannot both pass it.
var ErrDuplicateEmail = errors.New("email already in use")

// AccountRepository defines the interface for data access of Account records
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id string) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	List(ctx context.Context, page, limit int) ([]model.Account, int64, error)
	Update(ctx context.Context, account *model.Account) error
	Delete(ctx context.Context, id string) error
}

type accountRepository struct {
	store *storage.Store
}

// NewAccountRepository returns a store-backed AccountRepository
func NewAccountRepository(store *storage.Store) AccountRepository {
	return &accountRepository{store: store}
}

// Create appends the account, refusing a case-insensitive email collision
// with any existing record.
func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	return r.store.Update(ctx, func(state *storage.State) error {
		for i := range state.Accounts {
			if strings.EqualFold(state.Accounts[i].Email, account.Email) {
				return ErrDuplicateEmail
			}
		}
		state.Accounts = append(state.Accounts, *account)
		return nil
	})
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*model.Account, error) {
	var found *model.Account
	r.store.View(func(state *storage.State) {
		for i := range state.Accounts {
			if state.Accounts[i].ID == id {
				account := state.Accounts[i]
				found = &account
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// GetByEmail matches case-insensitively; the stored casing is preserved.
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	var found *model.Account
	r.store.View(func(state *storage.State) {
		for i := range state.Accounts {
			if strings.EqualFold(state.Accounts[i].Email, email) {
				account := state.Accounts[i]
				found = &account
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *accountRepository) List(ctx context.Context, page, limit int) ([]model.Account, int64, error) {
	var accounts []model.Account
	var total int64
	r.store.View(func(state *storage.State) {
		total = int64(len(state.Accounts))
		accounts = pageSlice(state.Accounts, page, limit)
	})
	return accounts, total, nil
}

// Update replaces the record in place. Email uniqueness excludes the record
// itself, so writes that keep the email are always admissible.
func (r *accountRepository) Update(ctx context.Context, account *model.Account) error {
	return r.store.Update(ctx, func(state *storage.State) error {
		for i := range state.Accounts {
			if state.Accounts[i].ID != account.ID && strings.EqualFold(state.Accounts[i].Email, account.Email) {
				return ErrDuplicateEmail
			}
		}
		for i := range state.Accounts {
			if state.Accounts[i].ID == account.ID {
				state.Accounts[i] = *account
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(state *storage.State) error {
		for i := range state.Accounts {
			if state.Accounts[i].ID == id {
				state.Accounts = append(state.Accounts[:i], state.Accounts[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
