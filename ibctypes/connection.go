package ibctypes

import (
	"time"

	commitmenttypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"
	conntypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"
)

// Version mirrors the connection version negotiated during the handshake.
type Version struct {
	Identifier string
	Features   []string
}

// ConnectionCounterparty is the counterparty half of a ConnectionEnd.
//
// ConnectionID is "" before the counterparty chain has assigned one, the same
// sentinel ibc-go itself uses instead of an Option type.
type ConnectionCounterparty struct {
	ClientID     string
	ConnectionID string
	Prefix       commitmenttypes.MerklePrefix
}

// ConnectionEnd is the source-of-truth connection record queried from a
// chain. DelayPeriod == 0 means packets over this connection are never
// deferred by AdmissionPolicy; DelayPeriod > 0 means they always are.
type ConnectionEnd struct {
	ClientID     string
	Counterparty ConnectionCounterparty
	Versions     []Version
	DelayPeriod  time.Duration
	State        conntypes.State
}

// PrincipalVersion returns the connection's first negotiated version, or
// false if none has been negotiated yet. The OpenAck builder always takes
// this first entry rather than picking among multiple compatible versions.
func (c ConnectionEnd) PrincipalVersion() (Version, bool) {
	if len(c.Versions) == 0 {
		return Version{}, false
	}
	return c.Versions[0], true
}
