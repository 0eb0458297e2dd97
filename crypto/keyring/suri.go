package keyring

import (
	"encoding/binary"
	"regexp"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"golang.org/x/crypto/blake2b"
)

// DevPhrase is the well-known mnemonic behind the development accounts.
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

// ChainCodeLength is the size of a junction chain code.
const ChainCodeLength = 32

var (
	suriPattern     = regexp.MustCompile(`^([\w ]+)?((?://?[^/]+)*)(?:///(.*))?$`)
	junctionPattern = regexp.MustCompile(`/(/?[^/]+)`)
)

// Junction is one step of a derivation path.
type Junction struct {
	ChainCode [ChainCodeLength]byte
	Hard      bool
}

// SecretURI is a parsed `phrase//hard/soft///password` string.
type SecretURI struct {
	Phrase    string
	Junctions []Junction
	Password  string
}

// ParseSecretURI splits suri into its phrase, derivation path and password.
// An empty phrase selects DevPhrase.
func ParseSecretURI(suri string) (SecretURI, error) {
	m := suriPattern.FindStringSubmatch(suri)
	if m == nil {
		return SecretURI{}, errorsmod.Wrapf(ErrInvalidSecretURI, "%q", suri)
	}

	parsed := SecretURI{
		Phrase:   strings.TrimSpace(m[1]),
		Password: m[3],
	}
	if parsed.Phrase == "" {
		parsed.Phrase = DevPhrase
	}

	for _, jm := range junctionPattern.FindAllStringSubmatch(m[2], -1) {
		code := jm[1]
		hard := strings.HasPrefix(code, "/")
		if hard {
			code = code[1:]
		}
		parsed.Junctions = append(parsed.Junctions, NewJunction(code, hard))
	}

	return parsed, nil
}

// NewJunction builds the chain code for a path element. Numeric elements are
// encoded as little-endian u64, everything else as a length-prefixed string;
// encodings longer than a chain code are hashed with blake2b-256.
func NewJunction(code string, hard bool) Junction {
	var encoded []byte
	if n, err := strconv.ParseUint(code, 10, 64); err == nil {
		encoded = make([]byte, 8)
		binary.LittleEndian.PutUint64(encoded, n)
	} else {
		encoded = encodeString(code)
	}

	j := Junction{Hard: hard}
	if len(encoded) > ChainCodeLength {
		j.ChainCode = blake2b.Sum256(encoded)
	} else {
		copy(j.ChainCode[:], encoded)
	}
	return j
}

// encodeString prefixes s with its compact-encoded length.
func encodeString(s string) []byte {
	return append(compactLength(uint64(len(s))), s...)
}

func compactLength(n uint64) []byte {
	switch {
	case n < 1<<6:
		return []byte{byte(n << 2)}
	case n < 1<<14:
		bz := make([]byte, 2)
		binary.LittleEndian.PutUint16(bz, uint16(n<<2)|0x01)
		return bz
	case n < 1<<30:
		bz := make([]byte, 4)
		binary.LittleEndian.PutUint32(bz, uint32(n<<2)|0x02)
		return bz
	default:
		bz := make([]byte, 8)
		binary.LittleEndian.PutUint64(bz, n)
		for len(bz) > 4 && bz[len(bz)-1] == 0 {
			bz = bz[:len(bz)-1]
		}
		return append([]byte{byte(len(bz)-4)<<2 | 0x03}, bz...)
	}
}
