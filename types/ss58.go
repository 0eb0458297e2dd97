package types

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// MaxSS58Prefix is the largest network prefix SS58 can encode.
	MaxSS58Prefix      uint16 = 16383
	ss58ChecksumLength        = 2
)

var ss58Preimage = []byte("SS58PRE")

// SS58Encode renders a 32-byte payload as an SS58 address for the given network prefix.
func SS58Encode(payload []byte, prefix uint16) string {
	var buf bytes.Buffer
	buf.Write(ss58PrefixBytes(prefix))
	buf.Write(payload)

	checksum := ss58Checksum(buf.Bytes())
	buf.Write(checksum[:ss58ChecksumLength])

	return base58.Encode(buf.Bytes())
}

// SS58Decode parses an SS58 address and returns its payload and network prefix.
func SS58Decode(address string) ([]byte, uint16, error) {
	data := base58.Decode(address)
	if len(data) < 2 {
		return nil, 0, errorsmod.Wrapf(ErrInvalidAddress, "%q is too short", address)
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case data[0] < 64:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] < 128:
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0x3f
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return nil, 0, errorsmod.Wrapf(ErrInvalidAddress, "%q has a reserved prefix", address)
	}

	if len(data) != prefixLen+PublicKeyLength+ss58ChecksumLength {
		return nil, 0, errorsmod.Wrapf(ErrInvalidAddress, "%q has length %d", address, len(data))
	}

	body := data[:len(data)-ss58ChecksumLength]
	checksum := ss58Checksum(body)
	if !bytes.Equal(checksum[:ss58ChecksumLength], data[len(body):]) {
		return nil, 0, errorsmod.Wrapf(ErrInvalidAddress, "%q has a bad checksum", address)
	}

	return body[prefixLen:], prefix, nil
}

func ss58PrefixBytes(prefix uint16) []byte {
	if prefix < 64 {
		return []byte{byte(prefix)}
	}
	first := byte((prefix&0x00fc)>>2) | 0x40
	second := byte(prefix>>8) | byte(prefix&0x03)<<6
	return []byte{first, second}
}

func ss58Checksum(body []byte) [blake2b.Size]byte {
	return blake2b.Sum512(append(append([]byte{}, ss58Preimage...), body...))
}
