// Package abci decodes raw Tendermint ABCI events into the translator's
// typed IbcEvent union. Each extractor scans an event's attributes once,
// matches the well-known keys for its kind, and tolerates anything else.
package abci

import (
	"encoding/hex"
	"strconv"
	"strings"

	abcitypes "github.com/cometbft/cometbft/abci/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cosmos/ibc-translator/ibctypes"
)

// logger is a package-level leaf logger, for one-shot parsing helpers, as
// opposed to the lifecycle logging a long-lived component like Translator
// carries on an injected *zap.Logger.
var logger zerolog.Logger = log.With().Str("component", "abci-decoder").Logger()

// Decode parses a single raw ABCI event into an IbcEvent. fallback is used
// whenever the event's own "height" attribute is absent or parses to the
// zero height.
func Decode(event abcitypes.Event, fallback ibctypes.Height) (ibctypes.IbcEvent, error) {
	kind, ok := eventKindByABCIType[event.Type]
	if !ok {
		return ibctypes.IbcEvent{}, unsupportedEventErr(event.Type)
	}

	switch {
	case kind == ibctypes.KindPushWasmCode:
		return decodeWasmCodeEvent(kind, event, fallback)
	case kind.IsClientEvent():
		return decodeClientEvent(kind, event, fallback)
	case kind.IsConnectionEvent():
		return decodeConnectionEvent(kind, event, fallback)
	case kind.IsPacketEvent():
		return decodePacketEvent(kind, event, fallback)
	case kind.IsChannelEvent():
		return decodeChannelEvent(kind, event, fallback)
	default:
		return ibctypes.IbcEvent{}, unsupportedEventErr(event.Type)
	}
}

func attrMap(event abcitypes.Event) map[string]string {
	m := make(map[string]string, len(event.Attributes))
	for _, a := range event.Attributes {
		m[a.Key] = a.Value
	}
	return m
}

func resolveHeight(attrs map[string]string, fallback ibctypes.Height) ibctypes.Height {
	raw, ok := attrs[AttributeKeyHeight]
	if !ok {
		return fallback
	}
	h, err := parseHeight(raw)
	if err != nil || h.IsZero() {
		return fallback
	}
	return h
}

func parseHeight(s string) (ibctypes.Height, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return ibctypes.Height{}, decodeErr("height", strconv.ErrSyntax)
	}
	rn, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return ibctypes.Height{}, decodeErr("height revision_number", err)
	}
	rh, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return ibctypes.Height{}, decodeErr("height revision_height", err)
	}
	return ibctypes.NewHeight(rn, rh), nil
}

func decodeClientEvent(kind ibctypes.Kind, event abcitypes.Event, fallback ibctypes.Height) (ibctypes.IbcEvent, error) {
	attrs := attrMap(event)
	height := resolveHeight(attrs, fallback)

	client := &ibctypes.ClientAttributes{
		ClientID:   attrs[AttributeKeyClientID],
		ClientType: attrs[AttributeKeyClientType],
	}

	if raw, ok := attrs[AttributeKeyConsensusHeight]; ok {
		ch, err := parseHeight(raw)
		if err != nil {
			return ibctypes.IbcEvent{}, decodeErr("consensus_height", err)
		}
		client.ConsensusHeight = ch
	}

	if kind == ibctypes.KindUpdateClient {
		if raw, ok := attrs[AttributeKeyHeader]; ok {
			decoded, err := hex.DecodeString(raw)
			if err != nil {
				return ibctypes.IbcEvent{}, errWrapMalformedHeader(err)
			}
			client.Header = decoded
		}
	}

	return ibctypes.IbcEvent{Kind: kind, Height: height, Client: client}, nil
}

func decodeWasmCodeEvent(kind ibctypes.Kind, event abcitypes.Event, fallback ibctypes.Height) (ibctypes.IbcEvent, error) {
	attrs := attrMap(event)
	height := resolveHeight(attrs, fallback)

	raw, ok := attrs[AttributeKeyCodeID]
	if !ok {
		return ibctypes.IbcEvent{}, missingFieldErr(AttributeKeyCodeID)
	}
	codeID, err := hex.DecodeString(raw)
	if err != nil {
		return ibctypes.IbcEvent{}, decodeErr("code_id", err)
	}

	return ibctypes.IbcEvent{
		Kind:     kind,
		Height:   height,
		WasmCode: &ibctypes.WasmCodeAttributes{CodeID: codeID},
	}, nil
}

func decodeConnectionEvent(kind ibctypes.Kind, event abcitypes.Event, fallback ibctypes.Height) (ibctypes.IbcEvent, error) {
	attrs := attrMap(event)
	height := resolveHeight(attrs, fallback)

	conn := &ibctypes.ConnectionAttributes{
		ConnectionID:             attrs[AttributeKeyConnectionID],
		ClientID:                 attrs[AttributeKeyClientID],
		CounterpartyConnectionID: attrs[AttributeKeyCounterpartyConnectionID],
		CounterpartyClientID:     attrs[AttributeKeyCounterpartyClientID],
	}

	return ibctypes.IbcEvent{Kind: kind, Height: height, Connection: conn}, nil
}

func decodeChannelEvent(kind ibctypes.Kind, event abcitypes.Event, fallback ibctypes.Height) (ibctypes.IbcEvent, error) {
	attrs := attrMap(event)
	height := resolveHeight(attrs, fallback)

	channel := &ibctypes.ChannelAttributes{
		PortID:                attrs[AttributeKeyPortID],
		ChannelID:             attrs[AttributeKeyChannelID],
		ConnectionID:          attrs[AttributeKeyConnectionID],
		CounterpartyPortID:    attrs[AttributeKeyCounterpartyPortID],
		CounterpartyChannelID: attrs[AttributeKeyCounterpartyChannelID],
	}

	return ibctypes.IbcEvent{Kind: kind, Height: height, Channel: channel}, nil
}

func decodePacketEvent(kind ibctypes.Kind, event abcitypes.Event, fallback ibctypes.Height) (ibctypes.IbcEvent, error) {
	attrs := attrMap(event)
	height := resolveHeight(attrs, fallback)

	packet := ibctypes.Packet{
		SourcePort:         attrs[AttributeKeyPacketSrcPort],
		SourceChannel:      attrs[AttributeKeyPacketSrcChannel],
		DestinationPort:    attrs[AttributeKeyPacketDstPort],
		DestinationChannel: attrs[AttributeKeyPacketDstChannel],
		Data:               []byte(attrs[AttributeKeyPacketData]),
	}

	if raw, ok := attrs[AttributeKeyPacketSequence]; ok {
		seq, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return ibctypes.IbcEvent{}, decodeErr("packet_sequence", err)
		}
		packet.Sequence = seq
	}

	if raw, ok := attrs[AttributeKeyPacketTimeoutHeight]; ok {
		th, err := parseTimeoutHeight(raw)
		if err != nil {
			return ibctypes.IbcEvent{}, err
		}
		packet.TimeoutHeight = th
	}

	if raw, ok := attrs[AttributeKeyPacketTimeoutTimestamp]; ok {
		ts, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return ibctypes.IbcEvent{}, decodeErr("packet_timeout_timestamp", err)
		}
		packet.TimeoutTimestamp = ts
	}

	attributes := &ibctypes.PacketEventAttributes{Packet: packet}
	if raw, ok := attrs[AttributeKeyPacketAck]; ok {
		attributes.Acknowledgement = []byte(raw)
	}

	logger.Debug().Str("kind", kind.String()).Int("known_attrs", len(attrs)).
		Int("raw_attrs", len(event.Attributes)).Msg("decoded packet event")

	return ibctypes.IbcEvent{Kind: kind, Height: height, Packet: attributes}, nil
}

// parseTimeoutHeight implements the ibc-go quirk where the literal string
// "0", which is not a "revision-height" pair, means "no height timeout" and
// yields the zero Height — any other unparseable value is
// InvalidTimeoutHeight.
func parseTimeoutHeight(s string) (ibctypes.Height, error) {
	if s == "0" {
		return ibctypes.ZeroHeight(), nil
	}
	h, err := parseHeight(s)
	if err != nil {
		return ibctypes.Height{}, errorsmodWrapInvalidTimeoutHeight(s)
	}
	return h, nil
}
