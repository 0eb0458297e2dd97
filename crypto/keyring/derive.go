package keyring

import (
	"crypto/ed25519"
	"crypto/sha512"
	"strings"
	"sync"

	errorsmod "cosmossdk.io/errors"
	schnorrkel "github.com/ChainSafe/go-schnorrkel"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/pbkdf2"

	"github.com/baron-chain/coinnet-bc/types"
)

const (
	seedLength       = 32
	pbkdf2Rounds     = 2048
	ed25519HDKDLabel = "Ed25519HDKD"
)

var (
	devSeedOnce sync.Once
	devSeed     [seedLength]byte
	devSeedErr  error
)

// Keypair is the public half of a derived key plus the seed it was expanded
// from. Seed is nil when the path ends in a soft sr25519 junction.
type Keypair struct {
	Scheme Scheme
	Public types.PublicKey
	Seed   []byte
}

// AccountID returns the account owned by the keypair.
func (kp Keypair) AccountID() types.AccountID {
	return kp.Scheme.AccountID(kp.Public)
}

// Derive parses suri and derives a key of the given scheme along its path.
func Derive(suri string, scheme Scheme) (Keypair, error) {
	parsed, err := ParseSecretURI(suri)
	if err != nil {
		return Keypair{}, err
	}

	seed, err := seedFromPhrase(parsed.Phrase, parsed.Password)
	if err != nil {
		return Keypair{}, err
	}

	switch scheme {
	case Sr25519:
		return deriveSr25519(seed, parsed.Junctions)
	case Ed25519:
		return deriveEd25519(seed, parsed.Junctions)
	default:
		return Keypair{}, errorsmod.Wrapf(ErrUnknownScheme, "%d", scheme)
	}
}

// seedFromPhrase returns the 32-byte mini secret for a mnemonic or a 0x hex seed.
// Mnemonics go through BIP-39 entropy and PBKDF2-HMAC-SHA512 salted with
// "mnemonic" plus the password, as Substrate wallets do.
func seedFromPhrase(phrase, password string) ([seedLength]byte, error) {
	var seed [seedLength]byte

	if strings.HasPrefix(phrase, "0x") {
		bz, err := hexutil.Decode(phrase)
		if err != nil || len(bz) != seedLength {
			return seed, errorsmod.Wrap(ErrInvalidPhrase, "hex seed must be 32 bytes")
		}
		copy(seed[:], bz)
		return seed, nil
	}

	if phrase == DevPhrase && password == "" {
		devSeedOnce.Do(func() {
			devSeed, devSeedErr = seedFromMnemonic(DevPhrase, "")
		})
		return devSeed, devSeedErr
	}
	return seedFromMnemonic(phrase, password)
}

func seedFromMnemonic(mnemonic, password string) ([seedLength]byte, error) {
	var seed [seedLength]byte

	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return seed, errorsmod.Wrap(ErrInvalidPhrase, err.Error())
	}

	key := pbkdf2.Key(entropy, []byte("mnemonic"+password), pbkdf2Rounds, 64, sha512.New)
	copy(seed[:], key[:seedLength])
	return seed, nil
}

func deriveSr25519(seed [seedLength]byte, junctions []Junction) (Keypair, error) {
	msk, err := schnorrkel.NewMiniSecretKeyFromRaw(seed)
	if err != nil {
		return Keypair{}, errorsmod.Wrap(ErrDerivation, err.Error())
	}

	current := seed[:]
	sk := msk.ExpandEd25519()
	for _, j := range junctions {
		if j.Hard {
			child, _, err := sk.HardDeriveMiniSecretKey([]byte{}, j.ChainCode)
			if err != nil {
				return Keypair{}, errorsmod.Wrap(ErrDerivation, err.Error())
			}
			childSeed := child.Encode()
			current = childSeed[:]
			sk = child.ExpandEd25519()
			continue
		}

		ek, err := schnorrkel.DeriveKeySimple(sk, []byte{}, j.ChainCode)
		if err != nil {
			return Keypair{}, errorsmod.Wrap(ErrDerivation, err.Error())
		}
		if sk, err = ek.Secret(); err != nil {
			return Keypair{}, errorsmod.Wrap(ErrDerivation, err.Error())
		}
		current = nil
	}

	pub, err := sk.Public()
	if err != nil {
		return Keypair{}, errorsmod.Wrap(ErrDerivation, err.Error())
	}

	return Keypair{
		Scheme: Sr25519,
		Public: types.PublicKey(pub.Encode()),
		Seed:   current,
	}, nil
}

func deriveEd25519(seed [seedLength]byte, junctions []Junction) (Keypair, error) {
	for _, j := range junctions {
		if !j.Hard {
			return Keypair{}, errorsmod.Wrap(ErrDerivation, "ed25519 supports hard junctions only")
		}

		preimage := encodeString(ed25519HDKDLabel)
		preimage = append(preimage, seed[:]...)
		preimage = append(preimage, j.ChainCode[:]...)
		seed = blake2b.Sum256(preimage)
	}

	priv := ed25519.NewKeyFromSeed(seed[:])
	pub, err := types.PublicKeyFromBytes(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return Keypair{}, errorsmod.Wrap(ErrDerivation, err.Error())
	}

	return Keypair{
		Scheme: Ed25519,
		Public: pub,
		Seed:   append([]byte{}, seed[:]...),
	}, nil
}
