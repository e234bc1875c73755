package translator

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/cosmos/ibc-translator/chainport"
	"github.com/cosmos/ibc-translator/ibctypes"
)

// packetRelayEnabled is a process-wide, test-only gate. Production code must
// never call SetPacketRelayEnabledForTesting; the flag defaults to enabled
// so AdmissionPolicy behaves as if the gate didn't exist outside of tests.
var packetRelayEnabled atomic.Bool

func init() {
	packetRelayEnabled.Store(true)
}

// SetPacketRelayEnabledForTesting flips the process-wide relay gate. It
// exists solely so tests can exercise AdmissionPolicy's gate-1 behavior;
// it must never be called from production code.
func SetPacketRelayEnabledForTesting(enabled bool) {
	packetRelayEnabled.Store(enabled)
}

// AdmissionPolicy decides whether a SendPacket or WriteAcknowledgement event
// yields a message now, is deferred, or is dropped. It never returns an
// error for deferral or drop — those are successful outcomes with no
// message.
type AdmissionPolicy struct {
	Logger *zap.Logger
}

// admissionOutcome records why Check did or didn't admit a packet, purely
// for logging — it never changes what the caller does with the result.
type admissionOutcome int

const (
	admitted admissionOutcome = iota
	deferredByDelay
	droppedByTimeout
	skippedByRelayGate
)

// Check applies three gates, in order, against the channel identified by
// (portID, channelID) on source, as observed at height: the process-wide
// relay-enabled gate, the channel's connection delay period, and (when
// requireTimeoutCheck is set) whether the packet can ever time out.
// requireTimeoutCheck must be true for SendPacket and false for
// WriteAcknowledgement (the timeout gate is SendPacket-only).
func (p AdmissionPolicy) Check(
	ctx context.Context,
	source chainport.ChainPort,
	height ibctypes.Height,
	portID, channelID string,
	packet ibctypes.Packet,
	requireTimeoutCheck bool,
) (bool, error) {
	if !packetRelayEnabled.Load() {
		p.log(skippedByRelayGate, packet.Sequence)
		return false, nil
	}

	channelEnd, _, _, err := source.QueryChannelEnd(ctx, height, portID, channelID)
	if err != nil {
		return false, err
	}

	connectionID, ok := channelEnd.PrincipalConnectionID()
	if !ok {
		return false, missingFieldErr("channel end connection_hops")
	}

	connectionEnd, _, _, err := source.QueryConnectionEnd(ctx, height, connectionID)
	if err != nil {
		return false, err
	}

	if connectionEnd.DelayPeriod > 0 {
		p.log(deferredByDelay, packet.Sequence)
		return false, nil
	}

	if requireTimeoutCheck && !packet.HasTimeout() {
		p.log(droppedByTimeout, packet.Sequence)
		return false, nil
	}

	p.log(admitted, packet.Sequence)
	return true, nil
}

func (p AdmissionPolicy) log(outcome admissionOutcome, sequence uint64) {
	if p.Logger == nil {
		return
	}
	switch outcome {
	case deferredByDelay:
		p.Logger.Debug("deferring packet relay, connection has nonzero delay period", zap.Uint64("sequence", sequence))
	case droppedByTimeout:
		p.Logger.Warn("dropping packet relay, packet has no timeout and can never be relayed", zap.Uint64("sequence", sequence))
	case skippedByRelayGate:
		p.Logger.Debug("skipping packet relay, packet relay disabled", zap.Uint64("sequence", sequence))
	case admitted:
		p.Logger.Debug("admitting packet for relay", zap.Uint64("sequence", sequence))
	}
}
