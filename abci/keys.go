package abci

import "github.com/cosmos/ibc-translator/ibctypes"

// Canonical ABCI event attribute keys. These are the stable wire names a
// Tendermint-style IBC module emits; the decoder scans for them once per
// event and ignores anything it doesn't recognize.
const (
	AttributeKeyClientID         = "client_id"
	AttributeKeyClientType       = "client_type"
	AttributeKeyConsensusHeight  = "consensus_height"
	AttributeKeyHeight           = "height"
	AttributeKeyHeader           = "header"
	AttributeKeyCodeID           = "code_id"

	AttributeKeyConnectionID             = "connection_id"
	AttributeKeyCounterpartyConnectionID = "counterparty_connection_id"
	AttributeKeyCounterpartyClientID     = "counterparty_client_id"

	AttributeKeyPortID                = "port_id"
	AttributeKeyChannelID             = "channel_id"
	AttributeKeyCounterpartyPortID    = "counterparty_port_id"
	AttributeKeyCounterpartyChannelID = "counterparty_channel_id"

	AttributeKeyPacketSrcPort         = "packet_src_port"
	AttributeKeyPacketSrcChannel      = "packet_src_channel"
	AttributeKeyPacketDstPort         = "packet_dst_port"
	AttributeKeyPacketDstChannel      = "packet_dst_channel"
	AttributeKeyPacketSequence        = "packet_sequence"
	AttributeKeyPacketTimeoutHeight   = "packet_timeout_height"
	AttributeKeyPacketTimeoutTimestamp = "packet_timeout_timestamp"
	AttributeKeyPacketData            = "packet_data"
	AttributeKeyPacketAck             = "packet_ack"
)

// eventKindByABCIType maps the raw ABCI event "kind" string to the
// translator's closed Kind enum. Unknown keys are simply absent from this
// map — Decode reports UnsupportedAbciEvent for anything not listed here.
var eventKindByABCIType = map[string]ibctypes.Kind{
	"create_client":           ibctypes.KindCreateClient,
	"update_client":           ibctypes.KindUpdateClient,
	"upgrade_client":          ibctypes.KindUpgradeClient,
	"client_misbehaviour":     ibctypes.KindClientMisbehaviour,
	"push_wasm_code":          ibctypes.KindPushWasmCode,
	"connection_open_init":    ibctypes.KindOpenInitConnection,
	"connection_open_try":     ibctypes.KindOpenTryConnection,
	"connection_open_ack":     ibctypes.KindOpenAckConnection,
	"connection_open_confirm": ibctypes.KindOpenConfirmConnection,
	"channel_open_init":       ibctypes.KindOpenInitChannel,
	"channel_open_try":        ibctypes.KindOpenTryChannel,
	"channel_open_ack":        ibctypes.KindOpenAckChannel,
	"channel_open_confirm":    ibctypes.KindOpenConfirmChannel,
	"channel_close_init":      ibctypes.KindCloseInitChannel,
	"channel_close_confirm":   ibctypes.KindCloseConfirmChannel,
	"send_packet":             ibctypes.KindSendPacket,
	"recv_packet":             ibctypes.KindReceivePacket,
	"write_acknowledgement":   ibctypes.KindWriteAcknowledgement,
	"acknowledge_packet":      ibctypes.KindAcknowledgePacket,
	"timeout":                 ibctypes.KindTimeoutPacket,
	"timeout_on_close":        ibctypes.KindTimeoutOnClosePacket,
}
