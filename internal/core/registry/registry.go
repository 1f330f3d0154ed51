// Package registry keeps the console's customers and users in memory. State
// lives for the process lifetime only.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agenthands/mdm/internal/core/common"
	"github.com/agenthands/mdm/internal/core/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

type Registry struct {
	mu           sync.RWMutex
	customers    []model.Customer
	users        []model.User
	nextCustomer int

	Now   func() time.Time
	NewID func() string
}

func New() *Registry {
	return &Registry{
		nextCustomer: 1,
		Now:          func() time.Time { return time.Now().UTC() },
		NewID:        func() string { return uuid.New().String() },
	}
}

// NewSeeded returns a registry holding the demo customers the console ships with.
func NewSeeded() *Registry {
	r := New()
	r.customers = []model.Customer{
		{ID: "CUST-001", Name: "Acme Inc.", CreatedAt: "2023-01-15", Status: model.StatusActive},
		{ID: "CUST-002", Name: "Globex Corporation", CreatedAt: "2023-02-20", Status: model.StatusActive},
		{ID: "CUST-003", Name: "Soylent Corp", CreatedAt: "2023-03-10", Status: model.StatusInactive},
		{ID: "CUST-004", Name: "Initech", CreatedAt: "2023-04-05", Status: model.StatusActive},
		{ID: "CUST-005", Name: "Wayne Enterprises", CreatedAt: "2023-05-21", Status: model.StatusActive},
	}
	r.nextCustomer = len(r.customers) + 1
	return r
}

func (r *Registry) ListCustomers() []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Customer(nil), r.customers...)
}

func (r *Registry) GetCustomer(id string) (model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.customerIndex(id)
	if i < 0 {
		return model.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	return r.customers[i], nil
}

// AddCustomer assigns the next CUST-NNN id; new customers start active unless
// a status is given.
func (r *Registry) AddCustomer(in model.CustomerInput) (model.Customer, error) {
	if err := common.ValidateStruct(in); err != nil {
		return model.Customer{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := model.Customer{
		ID:        fmt.Sprintf("CUST-%03d", r.nextCustomer),
		Name:      strings.TrimSpace(in.Name),
		CreatedAt: r.Now().Format(time.DateOnly),
		Status:    model.StatusActive,
	}
	if in.Status != "" {
		c.Status = in.Status
	}
	r.nextCustomer++
	r.customers = append(r.customers, c)
	return c, nil
}

func (r *Registry) UpdateCustomer(id string, in model.CustomerInput) (model.Customer, error) {
	if err := common.ValidateStruct(in); err != nil {
		return model.Customer{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.customerIndex(id)
	if i < 0 {
		return model.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	r.customers[i].Name = strings.TrimSpace(in.Name)
	if in.Status != "" {
		r.customers[i].Status = in.Status
	}
	return r.customers[i], nil
}

// ListUsers filters by customer when customerID is not empty.
func (r *Registry) ListUsers(customerID string) []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		if customerID == "" || u.CustomerID == customerID {
			out = append(out, u)
		}
	}
	return out
}

func (r *Registry) GetUser(id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.userIndex(id)
	if i < 0 {
		return model.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return r.users[i], nil
}

func (r *Registry) AddUser(in model.UserInput) (model.User, error) {
	if err := common.ValidateStruct(in); err != nil {
		return model.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUser("", in); err != nil {
		return model.User{}, err
	}

	u := model.User{
		ID:         r.NewID(),
		CustomerID: in.CustomerID,
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.ToLower(in.Email),
		Phone:      in.Phone,
		Profile:    in.Profile,
		Status:     model.StatusActive,
	}
	if in.Status != "" {
		u.Status = in.Status
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *Registry) UpdateUser(id string, in model.UserInput) (model.User, error) {
	if err := common.ValidateStruct(in); err != nil {
		return model.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.userIndex(id)
	if i < 0 {
		return model.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err := r.checkUser(id, in); err != nil {
		return model.User{}, err
	}

	u := &r.users[i]
	u.CustomerID = in.CustomerID
	u.Name = strings.TrimSpace(in.Name)
	u.Email = strings.ToLower(in.Email)
	u.Phone = in.Phone
	u.Profile = in.Profile
	if in.Status != "" {
		u.Status = in.Status
	}
	return *u, nil
}

func (r *Registry) DeleteUser(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.userIndex(id)
	if i < 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

// checkUser must be called with the write lock held.
func (r *Registry) checkUser(selfID string, in model.UserInput) error {
	if in.CustomerID != "" && r.customerIndex(in.CustomerID) < 0 {
		return &common.ValidationError{Field: "customerId", Reason: fmt.Sprintf("unknown customer %q", in.CustomerID)}
	}
	for _, u := range r.users {
		if u.ID != selfID && strings.EqualFold(u.Email, in.Email) {
			return fmt.Errorf("user with email %s: %w", in.Email, ErrConflict)
		}
	}
	return nil
}

func (r *Registry) customerIndex(id string) int {
	for i, c := range r.customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) userIndex(id string) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
