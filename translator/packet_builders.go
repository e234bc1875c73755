package translator

import (
	"context"

	gogoproto "github.com/cosmos/gogoproto/proto"
	chantypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/cosmos/ibc-translator/chainport"
	"github.com/cosmos/ibc-translator/ibctypes"
)

func toChanPacket(p ibctypes.Packet) chantypes.Packet {
	return chantypes.Packet{
		Sequence:           p.Sequence,
		SourcePort:         p.SourcePort,
		SourceChannel:      p.SourceChannel,
		DestinationPort:    p.DestinationPort,
		DestinationChannel: p.DestinationChannel,
		Data:               p.Data,
		TimeoutHeight:      toClientHeight(p.TimeoutHeight),
		TimeoutTimestamp:   p.TimeoutTimestamp,
	}
}

// BuildRecvPacket turns a SendPacket event into a MsgRecvPacket addressed to
// the counterparty chain. It admits through policy against the channel the
// packet was sent on, since that is where the connection's delay period and
// the packet's own timeout apply.
func BuildRecvPacket(ctx context.Context, event ibctypes.IbcEvent, source, sink chainport.ChainPort, policy AdmissionPolicy) (*ibctypes.OutboundMessage, error) {
	attrs := event.Packet
	if attrs == nil {
		return nil, nil
	}
	packet := attrs.Packet

	admit, err := policy.Check(ctx, source, event.Height, packet.SourcePort, packet.SourceChannel, packet, true)
	if err != nil {
		return nil, err
	}
	if !admit {
		return nil, nil
	}

	_, commitmentProof, proofHeight, err := source.QueryPacketCommitment(ctx, event.Height, packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if err != nil {
		return nil, err
	}

	proofs := ibctypes.ProofSet{Commitment: commitmentProof, ProofHeight: proofHeight}
	if err := validateProofSet(proofs); err != nil {
		return nil, err
	}

	msg := chantypes.MsgRecvPacket{
		Packet:          toChanPacket(packet),
		ProofCommitment: proofs.Commitment,
		ProofHeight:     toClientHeight(proofs.ProofHeight),
		Signer:          sink.AccountID(),
	}

	value, err := gogoproto.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	return &ibctypes.OutboundMessage{TypeURL: ibctypes.TypeURLMsgRecvPacket, Value: value}, nil
}

// BuildAcknowledgement turns a WriteAcknowledgement event into a
// MsgAcknowledgement addressed to the counterparty chain. The
// acknowledgement bytes come from the event itself, never from a query —
// the event is the only place they're ever emitted. It admits through
// policy against the channel the packet was received on, since the event
// occurred on the destination chain.
func BuildAcknowledgement(ctx context.Context, event ibctypes.IbcEvent, source, sink chainport.ChainPort, policy AdmissionPolicy) (*ibctypes.OutboundMessage, error) {
	attrs := event.Packet
	if attrs == nil {
		return nil, nil
	}
	packet := attrs.Packet

	admit, err := policy.Check(ctx, source, event.Height, packet.DestinationPort, packet.DestinationChannel, packet, false)
	if err != nil {
		return nil, err
	}
	if !admit {
		return nil, nil
	}

	_, ackProof, proofHeight, err := source.QueryPacketAcknowledgement(ctx, event.Height, packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	if err != nil {
		return nil, err
	}

	proofs := ibctypes.ProofSet{Commitment: ackProof, ProofHeight: proofHeight}
	if err := validateProofSet(proofs); err != nil {
		return nil, err
	}

	msg := chantypes.MsgAcknowledgement{
		Packet:          toChanPacket(packet),
		Acknowledgement: attrs.Acknowledgement,
		ProofAcked:      proofs.Commitment,
		ProofHeight:     toClientHeight(proofs.ProofHeight),
		Signer:          sink.AccountID(),
	}

	value, err := gogoproto.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	return &ibctypes.OutboundMessage{TypeURL: ibctypes.TypeURLMsgAcknowledgement, Value: value}, nil
}
