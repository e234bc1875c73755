// Package ibctypes holds the value types the translator passes between a
// ChainPort, the ABCI event decoder, and the message builders: heights,
// connection/channel ends, packets, proof sets and outbound messages. None
// of these types carry behavior beyond what the translator itself needs;
// chain-specific encodings live in the concrete ChainPort implementations.
package ibctypes

import "fmt"

// Height is the (revision_number, revision_height) pair IBC uses to order
// points in a chain's history. The zero value denotes "absent".
type Height struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// NewHeight builds a Height from its two components.
func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return Height{RevisionNumber: revisionNumber, RevisionHeight: revisionHeight}
}

// ZeroHeight is the canonical "absent" height.
func ZeroHeight() Height {
	return Height{}
}

// IsZero reports whether h is the absent height (0,0).
func (h Height) IsZero() bool {
	return h.RevisionNumber == 0 && h.RevisionHeight == 0
}

// LT reports whether h sorts strictly before other under the lexicographic
// (revision_number, revision_height) order.
func (h Height) LT(other Height) bool {
	if h.RevisionNumber != other.RevisionNumber {
		return h.RevisionNumber < other.RevisionNumber
	}
	return h.RevisionHeight < other.RevisionHeight
}

// GT reports whether h sorts strictly after other.
func (h Height) GT(other Height) bool {
	return other.LT(h)
}

func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.RevisionNumber, h.RevisionHeight)
}
