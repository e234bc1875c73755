package translator

import (
	"context"
	"strings"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	gogoproto "github.com/cosmos/gogoproto/proto"
	commitmenttypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"
	conntypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"

	"github.com/cosmos/ibc-translator/chainport"
	"github.com/cosmos/ibc-translator/ibctypes"
)

// isTendermintClientType mirrors the single branch that concentrates all
// chain-heterogeneity handling in the host-consensus-proof rule: a
// Tendermint sink never needs one, anything else (wasm-wrapped substrate
// clients included) does.
func isTendermintClientType(clientType string) bool {
	return strings.Contains(clientType, "tendermint")
}

func queryHostConsensusStateProof(ctx context.Context, sink chainport.ChainPort, clientState ibctypes.ClientState) ([]byte, error) {
	if isTendermintClientType(sink.ClientType()) {
		return nil, nil
	}
	return sink.QueryHostConsensusStateProof(ctx, clientState)
}

func toAny(cs ibctypes.ClientState) *codectypes.Any {
	return &codectypes.Any{TypeUrl: cs.TypeURL, Value: cs.Value}
}

func toConnVersions(versions []ibctypes.Version) []*conntypes.Version {
	out := make([]*conntypes.Version, len(versions))
	for i, v := range versions {
		out[i] = &conntypes.Version{Identifier: v.Identifier, Features: v.Features}
	}
	return out
}

func toConnVersion(v ibctypes.Version) *conntypes.Version {
	return &conntypes.Version{Identifier: v.Identifier, Features: v.Features}
}

// BuildConnectionOpenTry turns an OpenInitConnection event into a
// MsgConnectionOpenTry addressed to the counterparty chain.
func BuildConnectionOpenTry(ctx context.Context, event ibctypes.IbcEvent, source, sink chainport.ChainPort) (*ibctypes.OutboundMessage, error) {
	attrs := event.Connection
	if attrs == nil || attrs.ConnectionID == "" {
		return nil, nil
	}

	connectionEnd, connProof, proofHeight, err := source.QueryConnectionEnd(ctx, event.Height, attrs.ConnectionID)
	if err != nil {
		return nil, err
	}

	clientState, clientStateProof, _, err := source.QueryClientState(ctx, event.Height, attrs.ClientID)
	if err != nil {
		return nil, err
	}

	_, consensusProof, _, err := source.QueryClientConsensus(ctx, event.Height, attrs.ClientID, clientState.LatestHeight)
	if err != nil {
		return nil, err
	}

	hostConsensusProof, err := queryHostConsensusStateProof(ctx, sink, clientState)
	if err != nil {
		return nil, err
	}

	proofs := ibctypes.ProofSet{
		Commitment:       connProof,
		ClientStateProof: clientStateProof,
		Consensus:        &ibctypes.ConsensusProof{Proof: consensusProof, Height: clientState.LatestHeight},
		ProofHeight:      proofHeight,
	}
	if err := validateProofSet(proofs); err != nil {
		return nil, err
	}

	msg := conntypes.MsgConnectionOpenTry{
		ClientId:    connectionEnd.Counterparty.ClientID,
		ClientState: toAny(clientState),
		Counterparty: conntypes.Counterparty{
			ClientId:     attrs.ClientID,
			ConnectionId: attrs.ConnectionID,
			Prefix:       commitmenttypes.MerklePrefix{KeyPrefix: source.ConnectionPrefix()},
		},
		DelayPeriod:             uint64(connectionEnd.DelayPeriod.Nanoseconds()),
		CounterpartyVersions:    toConnVersions(connectionEnd.Versions),
		ProofHeight:             toClientHeight(proofs.ProofHeight),
		ProofInit:               proofs.Commitment,
		ProofClient:             proofs.ClientStateProof,
		ProofConsensus:          proofs.Consensus.Proof,
		ConsensusHeight:         toClientHeight(proofs.Consensus.Height),
		Signer:                  sink.AccountID(),
		HostConsensusStateProof: hostConsensusProof,
	}

	value, err := gogoproto.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	return &ibctypes.OutboundMessage{TypeURL: ibctypes.TypeURLMsgConnectionOpenTry, Value: value}, nil
}

// BuildConnectionOpenAck turns an OpenTryConnection event into a
// MsgConnectionOpenAck addressed to the counterparty chain. It always takes
// connectionEnd.Versions[0] as the negotiated version rather than
// disambiguating among several compatible versions.
func BuildConnectionOpenAck(ctx context.Context, event ibctypes.IbcEvent, source, sink chainport.ChainPort) (*ibctypes.OutboundMessage, error) {
	attrs := event.Connection
	if attrs == nil || attrs.ConnectionID == "" {
		return nil, nil
	}

	connectionEnd, connProof, proofHeight, err := source.QueryConnectionEnd(ctx, event.Height, attrs.ConnectionID)
	if err != nil {
		return nil, err
	}

	counterpartyConnectionID := connectionEnd.Counterparty.ConnectionID
	if counterpartyConnectionID == "" {
		return nil, ErrMissingCounterpartyConnectionID
	}

	version, ok := connectionEnd.PrincipalVersion()
	if !ok {
		return nil, ErrNoConnectionVersion
	}

	clientState, clientStateProof, _, err := source.QueryClientState(ctx, event.Height, attrs.ClientID)
	if err != nil {
		return nil, err
	}

	_, consensusProof, _, err := source.QueryClientConsensus(ctx, event.Height, attrs.ClientID, clientState.LatestHeight)
	if err != nil {
		return nil, err
	}

	hostConsensusProof, err := queryHostConsensusStateProof(ctx, sink, clientState)
	if err != nil {
		return nil, err
	}

	proofs := ibctypes.ProofSet{
		Commitment:       connProof,
		ClientStateProof: clientStateProof,
		Consensus:        &ibctypes.ConsensusProof{Proof: consensusProof, Height: clientState.LatestHeight},
		ProofHeight:      proofHeight,
	}
	if err := validateProofSet(proofs); err != nil {
		return nil, err
	}

	msg := conntypes.MsgConnectionOpenAck{
		ConnectionId:             counterpartyConnectionID,
		CounterpartyConnectionId: attrs.ConnectionID,
		Version:                  toConnVersion(version),
		ClientState:              toAny(clientState),
		ProofHeight:              toClientHeight(proofs.ProofHeight),
		ProofTry:                 proofs.Commitment,
		ProofClient:              proofs.ClientStateProof,
		ProofConsensus:           proofs.Consensus.Proof,
		ConsensusHeight:          toClientHeight(proofs.Consensus.Height),
		Signer:                   sink.AccountID(),
		HostConsensusStateProof:  hostConsensusProof,
	}

	value, err := gogoproto.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	return &ibctypes.OutboundMessage{TypeURL: ibctypes.TypeURLMsgConnectionOpenAck, Value: value}, nil
}

// BuildConnectionOpenConfirm turns an OpenAckConnection event into a
// MsgConnectionOpenConfirm addressed to the counterparty chain. Only the
// connection proof is required.
func BuildConnectionOpenConfirm(ctx context.Context, event ibctypes.IbcEvent, source, sink chainport.ChainPort) (*ibctypes.OutboundMessage, error) {
	attrs := event.Connection
	if attrs == nil || attrs.ConnectionID == "" {
		return nil, nil
	}

	connectionEnd, connProof, proofHeight, err := source.QueryConnectionEnd(ctx, event.Height, attrs.ConnectionID)
	if err != nil {
		return nil, err
	}

	counterpartyConnectionID := connectionEnd.Counterparty.ConnectionID
	if counterpartyConnectionID == "" {
		return nil, ErrMissingCounterpartyConnectionID
	}

	proofs := ibctypes.ProofSet{Commitment: connProof, ProofHeight: proofHeight}
	if err := validateProofSet(proofs); err != nil {
		return nil, err
	}

	msg := conntypes.MsgConnectionOpenConfirm{
		ConnectionId: counterpartyConnectionID,
		ProofAck:     proofs.Commitment,
		ProofHeight:  toClientHeight(proofs.ProofHeight),
		Signer:       sink.AccountID(),
	}

	value, err := gogoproto.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	return &ibctypes.OutboundMessage{TypeURL: ibctypes.TypeURLMsgConnectionOpenConfirm, Value: value}, nil
}
