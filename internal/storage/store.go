package storage

import (
	"backend/internal/model"
	"backend/pkg/identifier"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Persisted keys. StateKey holds the full serialized dataset;
// UnverifiedEmailKey transiently holds the last registered email awaiting
// verification.
const (
	StateKey           = "staffdesk_v1"
	UnverifiedEmailKey = "unverified_email"
)

// Seed credentials for the initial admin account.
const (
	SeedAdminEmail    = "admin@example.com"
	SeedAdminPassword = "Password123!"
)

// State is the full dataset: four independent collections serialized as one
// JSON blob under StateKey.
type State struct {
	Accounts    []model.Account    `json:"accounts"`
	Departments []model.Department `json:"departments"`
	Employees   []model.Employee   `json:"employees"`
	Requests    []model.Request    `json:"requests"`
}

// Store holds the in-memory dataset and mirrors it to the medium on every
// mutation. The original design was single-threaded by construction; the
// HTTP server is not, so all access goes through the lock.
type Store struct {
	mu     sync.RWMutex
	medium Medium
	state  State
}

// NewStore wraps a medium. Call Load before serving.
func NewStore(medium Medium) *Store {
	return &Store{medium: medium}
}

// Load hydrates the state from the medium. Missing or unparseable data
// replaces the dataset with the seed and persists it. Individual missing
// collections default to empty.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.medium.Retrieve(ctx, StateKey)
	if err != nil {
		log.Println("WARNING: state read failed, reseeding:", err)
	}
	if err == nil && ok {
		var state State
		if jsonErr := json.Unmarshal([]byte(raw), &state); jsonErr == nil {
			s.state = withDefaults(state)
			return nil
		}
		log.Println("WARNING: state blob unparseable, reseeding")
	}

	seeded, err := seedState()
	if err != nil {
		return err
	}
	s.state = seeded
	return s.save(ctx)
}

// View runs fn with read access to the state. fn must not retain or mutate
// the state or its slices.
func (s *Store) View(fn func(state *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Update runs fn with write access to the state and, if fn succeeds,
// immediately persists the full serialized state. A persist failure is
// returned wrapped in ErrPersist; the in-memory mutation stands, and the
// previously persisted state remains until a later save succeeds.
func (s *Store) Update(ctx context.Context, fn func(state *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.state); err != nil {
		return err
	}
	return s.save(ctx)
}

// save serializes the full state to the medium. Caller holds the lock.
func (s *Store) save(ctx context.Context) error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("%w: encode state: %v", ErrPersist, err)
	}
	return s.medium.Persist(ctx, StateKey, string(raw))
}

// PersistKey writes an auxiliary key on the same medium, outside the state
// blob.
func (s *Store) PersistKey(ctx context.Context, key, value string) error {
	return s.medium.Persist(ctx, key, value)
}

// RetrieveKey reads an auxiliary key.
func (s *Store) RetrieveKey(ctx context.Context, key string) (string, bool, error) {
	return s.medium.Retrieve(ctx, key)
}

// ClearKey removes an auxiliary key.
func (s *Store) ClearKey(ctx context.Context, key string) error {
	return s.medium.Clear(ctx, key)
}

func withDefaults(state State) State {
	if state.Accounts == nil {
		state.Accounts = []model.Account{}
	}
	if state.Departments == nil {
		state.Departments = []model.Department{}
	}
	if state.Employees == nil {
		state.Employees = []model.Employee{}
	}
	if state.Requests == nil {
		state.Requests = []model.Request{}
	}
	return state
}

// seedState builds the fixed initial dataset: one verified admin account and
// two departments.
func seedState() (State, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return State{}, fmt.Errorf("hash seed password: %w", err)
	}
	return State{
		Accounts: []model.Account{
			{
				ID:        identifier.New(),
				FirstName: "Admin",
				LastName:  "User",
				Email:     SeedAdminEmail,
				Password:  string(hash),
				Role:      model.RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []model.Department{
			{ID: identifier.New(), Name: "Engineering", Description: "Software development"},
			{ID: identifier.New(), Name: "HR", Description: "Human Resources"},
		},
		Employees: []model.Employee{},
		Requests:  []model.Request{},
	}, nil
}
