// Package chainport declares the abstract chain interface the translator
// consumes. It is split out of package translator the way the real
// cosmos/relayer project splits its ChainProvider interface into its own
// relayer/provider sub-package: the translator must never import a concrete
// chain backend (Tendermint full node, substrate parachain, ...), only this
// interface.
package chainport

import (
	"context"

	"github.com/cosmos/ibc-translator/ibctypes"
)

// ChainPort is the read surface every chain backend must implement. Every
// query is height-parameterized and returns its value together with the
// merkle proof of that value and the height at which the proof was taken.
// The proof height is usually one above the event height, but ChainPort
// implementations choose it, not callers.
type ChainPort interface {
	// QueryConnectionEnd returns the connection end at h together with its
	// commitment proof and the height that proof was taken at.
	QueryConnectionEnd(ctx context.Context, h ibctypes.Height, connectionID string) (ibctypes.ConnectionEnd, []byte, ibctypes.Height, error)

	// QueryChannelEnd returns the channel end at h together with its
	// commitment proof and the height that proof was taken at.
	QueryChannelEnd(ctx context.Context, h ibctypes.Height, portID, channelID string) (ibctypes.ChannelEnd, []byte, ibctypes.Height, error)

	// QueryClientState returns the client state at h together with its
	// commitment proof and the height that proof was taken at.
	QueryClientState(ctx context.Context, h ibctypes.Height, clientID string) (ibctypes.ClientState, []byte, ibctypes.Height, error)

	// QueryClientConsensus returns the consensus state stored under clientID
	// at consensusHeight, as observed at h, together with its commitment
	// proof and the height that proof was taken at.
	QueryClientConsensus(ctx context.Context, h ibctypes.Height, clientID string, consensusHeight ibctypes.Height) (ibctypes.ConsensusState, []byte, ibctypes.Height, error)

	// QueryPacketCommitment returns the packet commitment bytes at h
	// together with its proof and the height that proof was taken at.
	QueryPacketCommitment(ctx context.Context, h ibctypes.Height, portID, channelID string, sequence uint64) ([]byte, []byte, ibctypes.Height, error)

	// QueryPacketAcknowledgement returns the packet acknowledgement
	// commitment bytes at h together with its proof and the height that
	// proof was taken at.
	QueryPacketAcknowledgement(ctx context.Context, h ibctypes.Height, portID, channelID string, sequence uint64) ([]byte, []byte, ibctypes.Height, error)

	// QueryHostConsensusStateProof asks this chain, acting as the sink, for
	// a proof that its own host consensus state is consistent with the
	// given client state. It returns nil iff this chain's ClientType is
	// Tendermint — Tendermint clients never require this proof.
	QueryHostConsensusStateProof(ctx context.Context, clientState ibctypes.ClientState) ([]byte, error)

	// AccountID returns the signer identity this chain signs outbound
	// messages with.
	AccountID() string

	// ClientType returns the string tag of light client this chain is
	// tracked with on its counterparty (e.g. "07-tendermint", "08-wasm").
	ClientType() string

	// ConnectionPrefix returns this chain's commitment prefix, used when
	// constructing the counterparty view of a connection.
	ConnectionPrefix() []byte
}
