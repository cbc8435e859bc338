package service

import (
	"backend/internal/model"
	"context"
	"errors"
	"testing"
	"time"
)

func TestSubmitRequestRequiresItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	worker := env.registerVerified(t, "worker@x.com", "secret1")

	// Blank-named rows are filtered out; nothing remains, so the submission
	// is refused and the store stays unchanged.
	_, err := env.requests.SubmitRequest(ctx, worker, SubmitRequestRequest{
		Type:  "equipment",
		Items: []RequestItemInput{{Name: "   ", Qty: 2}, {Name: "", Qty: 1}},
	})
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("SubmitRequest(blank items) error = %v, want ErrNoItems", err)
	}

	requests, total, listErr := env.requests.ListRequests(ctx, worker, 1, 20)
	if listErr != nil {
		t.Fatalf("ListRequests() returned error: %v", listErr)
	}
	if total != 0 || len(requests) != 0 {
		t.Error("refused submission must leave the store unchanged")
	}
}

func TestSubmitRequestDefaults(t *testing.T) {
	env := newTestEnv(t)
	worker := env.registerVerified(t, "Worker@X.com", "secret1")

	request, err := env.requests.SubmitRequest(context.Background(), worker, SubmitRequestRequest{
		Type: "equipment",
		Items: []RequestItemInput{
			{Name: "  laptop  ", Qty: 0},
			{Name: "monitor", Qty: 2},
			{Name: "   ", Qty: 5},
		},
	})
	if err != nil {
		t.Fatalf("SubmitRequest() returned error: %v", err)
	}

	if request.Status != model.RequestStatusPending {
		t.Errorf("Status = %q, want Pending", request.Status)
	}
	if len(request.Items) != 2 {
		t.Fatalf("expected 2 surviving items, got %d", len(request.Items))
	}
	if request.Items[0].Name != "laptop" || request.Items[0].Qty != 1 {
		t.Errorf("first item = %+v, want trimmed name and qty floored to 1", request.Items[0])
	}
	if _, err := time.Parse("2006-01-02", request.Date); err != nil {
		t.Errorf("Date %q is not an ISO date", request.Date)
	}
}

func TestListRequestsOnlyOwn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerVerified(t, "alice@x.com", "secret1")
	bob := env.registerVerified(t, "bob@x.com", "secret1")

	if _, err := env.requests.SubmitRequest(ctx, alice, SubmitRequestRequest{
		Type: "equipment", Items: []RequestItemInput{{Name: "desk", Qty: 1}},
	}); err != nil {
		t.Fatalf("SubmitRequest(alice) returned error: %v", err)
	}
	if _, err := env.requests.SubmitRequest(ctx, bob, SubmitRequestRequest{
		Type: "leave", Items: []RequestItemInput{{Name: "vacation day", Qty: 3}},
	}); err != nil {
		t.Fatalf("SubmitRequest(bob) returned error: %v", err)
	}

	requests, total, err := env.requests.ListRequests(ctx, alice, 1, 20)
	if err != nil {
		t.Fatalf("ListRequests() returned error: %v", err)
	}
	if total != 1 || len(requests) != 1 {
		t.Fatalf("alice sees %d requests, want exactly her own", len(requests))
	}
	if requests[0].Type != "equipment" {
		t.Errorf("alice's listing shows someone else's request: %+v", requests[0])
	}
}
