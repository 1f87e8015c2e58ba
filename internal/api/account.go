package api

import (
	"github.com/hornerapp/horner-server/internal/domain"
)

// resolveAccount maps the X-Account-ID header to an account. A request
// without the header belongs to the implicit local account.
func resolveAccount(header string) string {
	if header == "" {
		return domain.LocalAccountID
	}
	return header
}
