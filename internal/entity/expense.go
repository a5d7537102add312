package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ExpenseType string

const (
	ExpenseTypeSupplies       ExpenseType = "SUPPLIES"
	ExpenseTypeTransportation ExpenseType = "TRANSPORTATION"
	ExpenseTypeEquipment      ExpenseType = "EQUIPMENT"
)

func (t ExpenseType) String() string {
	return string(t)
}

func (t ExpenseType) Validate() error {
	switch t {
	case ExpenseTypeSupplies, ExpenseTypeTransportation, ExpenseTypeEquipment:
		return nil
	default:
		return fmt.Errorf("%w: unknown expense type %s", ErrInvalidArgument, t)
	}
}

type Expense struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	Type        ExpenseType
	Description string
	Amount      decimal.Decimal
	ExpenseDate time.Time
}
