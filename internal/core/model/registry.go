package model

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Profile string

const (
	ProfileAdmin     Profile = "admin"
	ProfileApprover  Profile = "approver"
	ProfileRequester Profile = "requester"
)

type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"` // YYYY-MM-DD
	Status    Status `json:"status"`
}

type CustomerInput struct {
	Name   string `json:"name" validate:"required,notblank"`
	Status Status `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type User struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId,omitempty"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	Profile    Profile `json:"profile"`
	Status     Status  `json:"status"`
}

type UserInput struct {
	CustomerID string  `json:"customerId,omitempty"`
	Name       string  `json:"name" validate:"required,notblank"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone,omitempty"`
	Profile    Profile `json:"profile" validate:"required,oneof=admin approver requester"`
	Status     Status  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
