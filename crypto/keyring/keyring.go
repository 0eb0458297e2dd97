package keyring

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/baron-chain/coinnet-bc/types"
)

// StashSuffix is appended to a seed to derive its stash account.
const StashSuffix = "//stash"

// devURI turns a development seed such as "Alice" or "Alice//stash" into the
// secret URI "//Alice" under the development phrase.
func devURI(seed string) string {
	return fmt.Sprintf("//%s", seed)
}

// PublicFromSeed derives the public key of the given role from a development seed.
func PublicFromSeed(seed string, role Role) (types.PublicKey, error) {
	if !role.valid() {
		return types.PublicKey{}, errorsmod.Wrapf(ErrUnknownRole, "%d", role)
	}

	kp, err := Derive(devURI(seed), role.Scheme())
	if err != nil {
		return types.PublicKey{}, errorsmod.Wrapf(err, "seed %q role %s", seed, role)
	}
	return kp.Public, nil
}

// MustPublicFromSeed is PublicFromSeed for static seeds. It panics on failure.
func MustPublicFromSeed(seed string, role Role) types.PublicKey {
	pk, err := PublicFromSeed(seed, role)
	if err != nil {
		panic(fmt.Errorf("static values are valid: %w", err))
	}
	return pk
}

// AccountIDFromSeed derives the sr25519 account of a development seed.
func AccountIDFromSeed(seed string) (types.AccountID, error) {
	pk, err := PublicFromSeed(seed, RoleAccount)
	if err != nil {
		return types.AccountID{}, err
	}
	return RoleAccount.Scheme().AccountID(pk), nil
}

// MustAccountIDFromSeed is AccountIDFromSeed for static seeds. It panics on failure.
func MustAccountIDFromSeed(seed string) types.AccountID {
	acc, err := AccountIDFromSeed(seed)
	if err != nil {
		panic(fmt.Errorf("static values are valid: %w", err))
	}
	return acc
}

// AuthorityKeysFromSeed derives stash, controller and session keys of one
// validator candidate. The stash comes from seed//stash, everything else from
// seed under the key's own role.
func AuthorityKeysFromSeed(seed string) (types.AuthorityKeys, error) {
	var (
		keys types.AuthorityKeys
		err  error
	)

	if keys.Stash, err = AccountIDFromSeed(seed + StashSuffix); err != nil {
		return types.AuthorityKeys{}, err
	}
	if keys.Controller, err = AccountIDFromSeed(seed); err != nil {
		return types.AuthorityKeys{}, err
	}

	sessionKeys := []struct {
		role Role
		dst  *types.PublicKey
	}{
		{RoleGrandpa, &keys.Grandpa},
		{RoleBabe, &keys.Babe},
		{RoleImOnline, &keys.ImOnline},
		{RoleAuthorityDiscovery, &keys.AuthorityDiscovery},
	}
	for _, sk := range sessionKeys {
		if *sk.dst, err = PublicFromSeed(seed, sk.role); err != nil {
			return types.AuthorityKeys{}, err
		}
	}

	return keys, nil
}

// MustAuthorityKeysFromSeed is AuthorityKeysFromSeed for static seeds. It panics on failure.
func MustAuthorityKeysFromSeed(seed string) types.AuthorityKeys {
	keys, err := AuthorityKeysFromSeed(seed)
	if err != nil {
		panic(fmt.Errorf("static values are valid: %w", err))
	}
	return keys
}
