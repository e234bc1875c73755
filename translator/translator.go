package translator

import (
	"context"

	"go.uber.org/zap"

	"github.com/cosmos/ibc-translator/chainport"
	"github.com/cosmos/ibc-translator/ibctypes"
)

// Translator converts a batch of source-chain IBC events, in order, into the
// sink-chain messages that carry them forward. It holds no per-call state:
// a single Translator is reused across every batch on a given (source, sink)
// pair.
type Translator struct {
	Source  chainport.ChainPort
	Sink    chainport.ChainPort
	Mode    ibctypes.Mode
	Logger  *zap.Logger
	Policy  AdmissionPolicy
}

// HasPacketEvents reports whether any of kinds is a packet-lifecycle event —
// used upstream to decide whether a height needs a packet-data backfill
// query before Translate is called.
func HasPacketEvents(kinds []ibctypes.Kind) bool {
	for _, k := range kinds {
		if k.IsPacketEvent() {
			return true
		}
	}
	return false
}

// Translate converts events into outbound messages, one at a time and in
// order. An event kind with no builder (client lifecycle events,
// OpenConfirmConnection, OpenConfirmChannel, CloseConfirmChannel, and the
// remaining packet-lifecycle events) yields no message and is skipped. A
// builder error aborts the whole batch: Translate never returns a partial
// result alongside an error.
func (t *Translator) Translate(ctx context.Context, events []ibctypes.IbcEvent) ([]ibctypes.OutboundMessage, error) {
	var out []ibctypes.OutboundMessage
	for _, event := range events {
		msg, err := t.buildOne(ctx, event)
		if err != nil {
			if t.Logger != nil {
				t.Logger.Warn("failed to build outbound message",
					zap.String("kind", event.Kind.String()),
					zap.Error(err),
				)
			}
			return nil, err
		}
		if msg != nil {
			out = append(out, *msg)
		}
	}
	return out, nil
}

func (t *Translator) buildOne(ctx context.Context, event ibctypes.IbcEvent) (*ibctypes.OutboundMessage, error) {
	switch event.Kind {
	case ibctypes.KindOpenInitConnection:
		return BuildConnectionOpenTry(ctx, event, t.Source, t.Sink)
	case ibctypes.KindOpenTryConnection:
		return BuildConnectionOpenAck(ctx, event, t.Source, t.Sink)
	case ibctypes.KindOpenAckConnection:
		return BuildConnectionOpenConfirm(ctx, event, t.Source, t.Sink)
	case ibctypes.KindOpenInitChannel:
		return BuildChannelOpenTry(ctx, event, t.Source, t.Sink)
	case ibctypes.KindOpenTryChannel:
		return BuildChannelOpenAck(ctx, event, t.Source, t.Sink)
	case ibctypes.KindOpenAckChannel:
		return BuildChannelOpenConfirm(ctx, event, t.Source, t.Sink)
	case ibctypes.KindCloseInitChannel:
		return BuildChannelCloseConfirm(ctx, event, t.Source, t.Sink)
	case ibctypes.KindSendPacket:
		return BuildRecvPacket(ctx, event, t.Source, t.Sink, t.Policy)
	case ibctypes.KindWriteAcknowledgement:
		return BuildAcknowledgement(ctx, event, t.Source, t.Sink, t.Policy)
	default:
		return nil, nil
	}
}
