package keyring

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/baron-chain/coinnet-bc/types"
)

// Scheme is a signature scheme keys can be derived for.
type Scheme int

const (
	Sr25519 Scheme = iota + 1
	Ed25519
)

func (s Scheme) String() string {
	switch s {
	case Sr25519:
		return "sr25519"
	case Ed25519:
		return "ed25519"
	default:
		return "unknown"
	}
}

// ParseScheme resolves a scheme by name.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "sr25519", "":
		return Sr25519, nil
	case "ed25519":
		return Ed25519, nil
	default:
		return 0, errorsmod.Wrapf(ErrUnknownScheme, "%q", name)
	}
}

// AccountID maps a public key of this scheme to its account identifier. Both
// supported schemes use the raw public key.
func (s Scheme) AccountID(pk types.PublicKey) types.AccountID {
	return pk.AccountID()
}

// Role names the purpose a key is derived for. Each role has a fixed scheme.
type Role int

const (
	RoleAccount Role = iota
	RoleGrandpa
	RoleBabe
	RoleImOnline
	RoleAuthorityDiscovery
)

type roleInfo struct {
	keyType string
	scheme  Scheme
}

var roles = map[Role]roleInfo{
	RoleAccount:            {keyType: "acco", scheme: Sr25519},
	RoleGrandpa:            {keyType: "gran", scheme: Ed25519},
	RoleBabe:               {keyType: "babe", scheme: Sr25519},
	RoleImOnline:           {keyType: "imon", scheme: Sr25519},
	RoleAuthorityDiscovery: {keyType: "audi", scheme: Sr25519},
}

// Scheme returns the signature scheme keys of this role use.
func (r Role) Scheme() Scheme { return roles[r].scheme }

// KeyTypeID returns the four-letter key type identifier of the role.
func (r Role) KeyTypeID() string { return roles[r].keyType }

func (r Role) String() string {
	if info, ok := roles[r]; ok {
		return info.keyType
	}
	return "unknown"
}

func (r Role) valid() bool {
	_, ok := roles[r]
	return ok
}
