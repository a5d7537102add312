package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type ClientType string

const (
	ClientTypeIndividual ClientType = "INDIVIDUAL"
	ClientTypeCompany    ClientType = "COMPANY"
)

func (t ClientType) String() string {
	return string(t)
}

func (t ClientType) Validate() error {
	switch t {
	case ClientTypeIndividual, ClientTypeCompany:
		return nil
	default:
		return fmt.Errorf("%w: unknown client type %s", ErrInvalidArgument, t)
	}
}

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

func (s ClientStatus) String() string {
	return string(s)
}

func (s ClientStatus) Validate() error {
	switch s {
	case ClientStatusActive, ClientStatusInactive:
		return nil
	default:
		return fmt.Errorf("%w: unknown client status %s", ErrInvalidArgument, s)
	}
}

type Client struct {
	ID        uuid.UUID
	Name      string
	Type      ClientType
	Status    ClientStatus
	Address   Address
	CreatedAt time.Time
}

type Address struct {
	Street   string
	City     string
	State    string
	PostCode string
}

func (a Address) String() string {
	return a.Street + ", " + a.City + ", " + a.State + ", " + a.PostCode
}
