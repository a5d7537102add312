package entity

import (
	"errors"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrHasPayments           = errors.New("job has recorded payments")
	ErrNotificationsDisabled = errors.New("business notifications are disabled")
)
