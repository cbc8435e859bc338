package repository

import (
	"backend/internal/model"
	"backend/internal/storage"
	"context"
	"strings"
)

// RequestRepository defines the interface for data access of Request
// records. Requests are write-once: no update or delete.
type RequestRepository interface {
	Create(ctx context.Context, request *model.Request) error
	ListByEmail(ctx context.Context, email string, page, limit int) ([]model.Request, int64, error)
}

type requestRepository struct {
	store *storage.Store
}

// NewRequestRepository returns a store-backed RequestRepository
func NewRequestRepository(store *storage.Store) RequestRepository {
	return &requestRepository{store: store}
}

func (r *requestRepository) Create(ctx context.Context, request *model.Request) error {
	return r.store.Update(ctx, func(state *storage.State) error {
		state.Requests = append(state.Requests, *request)
		return nil
	})
}

// ListByEmail returns only the requests created by the given account email,
// matched case-insensitively.
func (r *requestRepository) ListByEmail(ctx context.Context, email string, page, limit int) ([]model.Request, int64, error) {
	var matched []model.Request
	r.store.View(func(state *storage.State) {
		for i := range state.Requests {
			if strings.EqualFold(state.Requests[i].EmployeeEmail, email) {
				matched = append(matched, state.Requests[i])
			}
		}
	})
	total := int64(len(matched))
	return pageSlice(matched, page, limit), total, nil
}
