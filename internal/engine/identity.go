package engine

// Identity is the verified caller identity supplied by the gateway's
// authentication layer. The engines trust it without re-verification and
// never reach for ambient auth state.
type Identity struct {
	UID   string
	Admin bool
}

// Authenticated reports whether the identity carries a verified user id.
func (id Identity) Authenticated() bool {
	return id.UID != ""
}
