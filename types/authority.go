package types

// SessionKeys is the bundle of role keys a validator runs with during a session.
type SessionKeys struct {
	Grandpa            PublicKey `json:"grandpa"`
	Babe               PublicKey `json:"babe"`
	ImOnline           PublicKey `json:"imOnline"`
	AuthorityDiscovery PublicKey `json:"authorityDiscovery"`
}

// AuthorityKeys are the identifiers of one validator candidate: the stash holding
// its bond, the controller managing it, and its four session keys.
type AuthorityKeys struct {
	Stash              AccountID `json:"stash"`
	Controller         AccountID `json:"controller"`
	Grandpa            PublicKey `json:"grandpa"`
	Babe               PublicKey `json:"babe"`
	ImOnline           PublicKey `json:"imOnline"`
	AuthorityDiscovery PublicKey `json:"authorityDiscovery"`
}

// SessionKeys returns the session key bundle of the authority.
func (a AuthorityKeys) SessionKeys() SessionKeys {
	return SessionKeys{
		Grandpa:            a.Grandpa,
		Babe:               a.Babe,
		ImOnline:           a.ImOnline,
		AuthorityDiscovery: a.AuthorityDiscovery,
	}
}

// Stashes returns the stash accounts of the given authorities, in order.
func Stashes(authorities []AuthorityKeys) []AccountID {
	stashes := make([]AccountID, 0, len(authorities))
	for _, a := range authorities {
		stashes = append(stashes, a.Stash)
	}
	return stashes
}
