package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                    string
	EmployeeCode          string
	FullName              string
	BankName              string
	BankAccountHolderName *string
	BankAccountNumber     string
	Salary                decimal.Decimal // monthly base
	Status                Status
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusOnLeave  Status = "on_leave"
	StatusInactive Status = "inactive"
)

func IsValidStatus(s Status) bool {
	return s == StatusActive || s == StatusOnLeave || s == StatusInactive
}
