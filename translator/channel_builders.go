package translator

import (
	"context"

	gogoproto "github.com/cosmos/gogoproto/proto"
	chantypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/cosmos/ibc-translator/chainport"
	"github.com/cosmos/ibc-translator/ibctypes"
)

// BuildChannelOpenTry turns an OpenInitChannel event into a
// MsgChannelOpenTry addressed to the counterparty chain.
func BuildChannelOpenTry(ctx context.Context, event ibctypes.IbcEvent, source, sink chainport.ChainPort) (*ibctypes.OutboundMessage, error) {
	attrs := event.Channel
	if attrs == nil || attrs.ChannelID == "" {
		return nil, nil
	}

	channelEnd, chanProof, proofHeight, err := source.QueryChannelEnd(ctx, event.Height, attrs.PortID, attrs.ChannelID)
	if err != nil {
		return nil, err
	}

	connectionEnd, _, _, err := source.QueryConnectionEnd(ctx, event.Height, attrs.ConnectionID)
	if err != nil {
		return nil, err
	}
	counterpartyConnectionID := connectionEnd.Counterparty.ConnectionID
	if counterpartyConnectionID == "" {
		return nil, ErrMissingCounterpartyConnectionID
	}

	proofs := ibctypes.ProofSet{Commitment: chanProof, ProofHeight: proofHeight}
	if err := validateProofSet(proofs); err != nil {
		return nil, err
	}

	msg := chantypes.MsgChannelOpenTry{
		PortId: attrs.CounterpartyPortID,
		Channel: chantypes.Channel{
			State:    chantypes.TRYOPEN,
			Ordering: channelEnd.Ordering,
			Counterparty: chantypes.Counterparty{
				PortId:    attrs.PortID,
				ChannelId: attrs.ChannelID,
			},
			ConnectionHops: []string{counterpartyConnectionID},
			Version:        channelEnd.Version,
		},
		CounterpartyVersion: channelEnd.Version,
		ProofInit:           proofs.Commitment,
		ProofHeight:         toClientHeight(proofs.ProofHeight),
		Signer:              sink.AccountID(),
	}

	value, err := gogoproto.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	return &ibctypes.OutboundMessage{TypeURL: ibctypes.TypeURLMsgChannelOpenTry, Value: value}, nil
}

// BuildChannelOpenAck turns an OpenTryChannel event into a
// MsgChannelOpenAck addressed to the counterparty chain.
func BuildChannelOpenAck(ctx context.Context, event ibctypes.IbcEvent, source, sink chainport.ChainPort) (*ibctypes.OutboundMessage, error) {
	attrs := event.Channel
	if attrs == nil || attrs.ChannelID == "" {
		return nil, nil
	}
	if attrs.CounterpartyChannelID == "" {
		return nil, ErrMissingChannelID
	}

	channelEnd, chanProof, proofHeight, err := source.QueryChannelEnd(ctx, event.Height, attrs.PortID, attrs.ChannelID)
	if err != nil {
		return nil, err
	}

	proofs := ibctypes.ProofSet{Commitment: chanProof, ProofHeight: proofHeight}
	if err := validateProofSet(proofs); err != nil {
		return nil, err
	}

	msg := chantypes.MsgChannelOpenAck{
		PortId:                attrs.CounterpartyPortID,
		ChannelId:             attrs.CounterpartyChannelID,
		CounterpartyChannelId: attrs.ChannelID,
		CounterpartyVersion:   channelEnd.Version,
		ProofTry:              proofs.Commitment,
		ProofHeight:           toClientHeight(proofs.ProofHeight),
		Signer:                sink.AccountID(),
	}

	value, err := gogoproto.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	return &ibctypes.OutboundMessage{TypeURL: ibctypes.TypeURLMsgChannelOpenAck, Value: value}, nil
}

// BuildChannelOpenConfirm turns an OpenAckChannel event into a
// MsgChannelOpenConfirm addressed to the counterparty chain.
func BuildChannelOpenConfirm(ctx context.Context, event ibctypes.IbcEvent, source, sink chainport.ChainPort) (*ibctypes.OutboundMessage, error) {
	attrs := event.Channel
	if attrs == nil || attrs.ChannelID == "" {
		return nil, nil
	}
	if attrs.CounterpartyChannelID == "" {
		return nil, ErrMissingChannelID
	}

	_, chanProof, proofHeight, err := source.QueryChannelEnd(ctx, event.Height, attrs.PortID, attrs.ChannelID)
	if err != nil {
		return nil, err
	}

	proofs := ibctypes.ProofSet{Commitment: chanProof, ProofHeight: proofHeight}
	if err := validateProofSet(proofs); err != nil {
		return nil, err
	}

	msg := chantypes.MsgChannelOpenConfirm{
		PortId:      attrs.CounterpartyPortID,
		ChannelId:   attrs.CounterpartyChannelID,
		ProofAck:    proofs.Commitment,
		ProofHeight: toClientHeight(proofs.ProofHeight),
		Signer:      sink.AccountID(),
	}

	value, err := gogoproto.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	return &ibctypes.OutboundMessage{TypeURL: ibctypes.TypeURLMsgChannelOpenConfirm, Value: value}, nil
}

// BuildChannelCloseConfirm turns a CloseInitChannel event into a
// MsgChannelCloseConfirm addressed to the counterparty chain.
func BuildChannelCloseConfirm(ctx context.Context, event ibctypes.IbcEvent, source, sink chainport.ChainPort) (*ibctypes.OutboundMessage, error) {
	attrs := event.Channel
	if attrs == nil || attrs.ChannelID == "" {
		return nil, nil
	}
	if attrs.CounterpartyChannelID == "" {
		return nil, ErrMissingChannelID
	}

	_, chanProof, proofHeight, err := source.QueryChannelEnd(ctx, event.Height, attrs.PortID, attrs.ChannelID)
	if err != nil {
		return nil, err
	}

	proofs := ibctypes.ProofSet{Commitment: chanProof, ProofHeight: proofHeight}
	if err := validateProofSet(proofs); err != nil {
		return nil, err
	}

	msg := chantypes.MsgChannelCloseConfirm{
		PortId:      attrs.CounterpartyPortID,
		ChannelId:   attrs.CounterpartyChannelID,
		ProofInit:   proofs.Commitment,
		ProofHeight: toClientHeight(proofs.ProofHeight),
		Signer:      sink.AccountID(),
	}

	value, err := gogoproto.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	return &ibctypes.OutboundMessage{TypeURL: ibctypes.TypeURLMsgChannelCloseConfirm, Value: value}, nil
}
