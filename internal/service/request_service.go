package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
	"backend/pkg/identifier"
	"context"
	"strings"
	"time"
)

// DTOs for request validation
type RequestItemInput struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type SubmitRequestRequest struct {
	Type  string             `json:"type" binding:"required"`
	Items []RequestItemInput `json:"items"`
}

type RequestResponse struct {
	ID     string              `json:"id"`
	Type   string              `json:"type"`
	Items  []model.RequestItem `json:"items"`
	Status string              `json:"status"`
	Date   string              `json:"date"`
}

// RequestService defines request submission and per-account listing.
// Requests are write-once and never leave Pending status.
type RequestService interface {
	SubmitRequest(ctx context.Context, acting *model.Account, req SubmitRequestRequest) (*RequestResponse, error)
	ListRequests(ctx context.Context, acting *model.Account, page, limit int) ([]RequestResponse, int64, error)
}

type requestService struct {
	requests repository.RequestRepository
	hub      *websocket.Hub
}

// NewRequestService returns a new instance of RequestService
func NewRequestService(requests repository.RequestRepository, hub *websocket.Hub) RequestService {
	return &requestService{requests: requests, hub: hub}
}

func mapRequestToResponse(request *model.Request) *RequestResponse {
	return &RequestResponse{
		ID:     request.ID,
		Type:   request.Type,
		Items:  request.Items,
		Status: request.Status,
		Date:   request.Date,
	}
}

// SubmitRequest records a new pending request for the acting account. Rows
// with blank names are dropped; quantities below one default to one. At
// least one named item must remain.
func (s *requestService) SubmitRequest(ctx context.Context, acting *model.Account, req SubmitRequestRequest) (*RequestResponse, error) {
	items := make([]model.RequestItem, 0, len(req.Items))
	for _, item := range req.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		qty := item.Qty
		if qty < 1 {
			qty = 1
		}
		items = append(items, model.RequestItem{Name: name, Qty: qty})
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	request := &model.Request{
		ID:            identifier.New(),
		Type:          req.Type,
		Items:         items,
		Status:        model.RequestStatusPending,
		Date:          time.Now().Format("2006-01-02"),
		EmployeeEmail: strings.ToLower(acting.Email),
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.hub.Notify("request.submitted", request.EmployeeEmail, "Request submitted")
	return mapRequestToResponse(request), nil
}

// ListRequests returns only the acting account's requests.
func (s *requestService) ListRequests(ctx context.Context, acting *model.Account, page, limit int) ([]RequestResponse, int64, error) {
	requests, total, err := s.requests.ListByEmail(ctx, acting.Email, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *mapRequestToResponse(&requests[i]))
	}
	return responses, total, nil
}
