package charge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// DIDPrefix is the scheme prefix of account DIDs in the identity service.
const DIDPrefix = "did:ddc:"

// AccountDID returns the DID of the account the identity service derives
// from its script hash.
func AccountDID(acc util.Uint160) string {
	return DIDPrefix + base58.Encode(acc.BytesBE())
}

// ParseDID extracts the account script hash from its DID.
func ParseDID(did string) (util.Uint160, error) {
	raw, ok := strings.CutPrefix(did, DIDPrefix)
	if !ok {
		return util.Uint160{}, errors.New("missing " + DIDPrefix + " prefix")
	}

	data, err := base58.Decode(raw)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid base58: %w", err)
	}

	acc, err := util.Uint160DecodeBytesBE(data)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid account script hash: %w", err)
	}

	return acc, nil
}

// NewRequestID returns a random non-zero identifier for a payment
// request, suitable as the requestID argument of Pay.
func NewRequestID() uint32 {
	for {
		if id := uuid.New().ID(); id != 0 {
			return id
		}
	}
}
