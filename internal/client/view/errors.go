package view

import (
	"errors"

	"github.com/dmitrijs2005/mailtriage/internal/client/services"
)

var (
	ErrNotAuthenticated = errors.New("log in first")
	ErrUnknownTab       = errors.New("unknown tab")
	ErrAccessDenied     = services.ErrAccessDenied
)
