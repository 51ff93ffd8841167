package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// Registration is barber-only and rare, so a blocking DNS lookup is
// acceptable; the deadline keeps a slow resolver from stalling it.
const lookupTimeout = 3 * time.Second

// IsEmailDomainValid reports whether the address's domain has MX or
// address records.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	var r net.Resolver
	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
