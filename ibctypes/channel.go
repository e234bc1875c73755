package ibctypes

import (
	chantypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
)

// ChannelCounterparty is the counterparty half of a ChannelEnd. ChannelID is
// "" before the counterparty has assigned one.
type ChannelCounterparty struct {
	PortID    string
	ChannelID string
}

// ChannelEnd is the source-of-truth channel record queried from a chain.
// ConnectionHops is never empty for a channel that has completed OpenInit;
// ConnectionHops[0] is always the principal connection AdmissionPolicy
// resolves delay from.
type ChannelEnd struct {
	State          chantypes.State
	Ordering       chantypes.Order
	Counterparty   ChannelCounterparty
	ConnectionHops []string
	Version        string
}

// PrincipalConnectionID returns ConnectionHops[0], or false if the channel
// end has no connection hops (a malformed or not-yet-initialized channel).
func (c ChannelEnd) PrincipalConnectionID() (string, bool) {
	if len(c.ConnectionHops) == 0 {
		return "", false
	}
	return c.ConnectionHops[0], true
}
