package cors

// Policy decides which request origins receive CORS headers.
type Policy struct {
	allowed map[string]struct{}
}

func New(allowedOrigins []string) *Policy {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}
	return &Policy{allowed: allowed}
}

// Allows reports whether origin may access the API. Requests without an
// origin come from the same origin or from non browser clients and are
// always allowed.
func (p *Policy) Allows(origin string) bool {
	if origin == "" {
		return true
	}
	_, ok := p.allowed[origin]
	return ok
}
