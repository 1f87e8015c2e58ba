// Package service implements the application services that sit between the
// HTTP surface and the domain engine.
package service

import (
	"github.com/hornerapp/horner-server/internal/domain"
	"github.com/hornerapp/horner-server/internal/validation"
)

// validate is the shared request validator for all services.
var validate = validation.New()

// LocalAccountID identifies the implicit account used when a client
// presents no account header. Remote sync is disabled for it.
const LocalAccountID = domain.LocalAccountID
