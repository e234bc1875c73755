package ibctypes

// OutboundMessage is the opaque result of a MessageBuilder: a canonical IBC
// message type URL paired with its proto-encoded bytes. The translator
// never re-opens a message it produced.
type OutboundMessage struct {
	TypeURL string
	Value   []byte
}

// Canonical type URLs for every message kind a MessageBuilder can produce.
// These are bit-exact with the wire identifiers ibc-go registers for its
// core IBC messages.
const (
	TypeURLMsgConnectionOpenTry     = "/ibc.core.connection.v1.MsgConnectionOpenTry"
	TypeURLMsgConnectionOpenAck     = "/ibc.core.connection.v1.MsgConnectionOpenAck"
	TypeURLMsgConnectionOpenConfirm = "/ibc.core.connection.v1.MsgConnectionOpenConfirm"
	TypeURLMsgChannelOpenTry        = "/ibc.core.channel.v1.MsgChannelOpenTry"
	TypeURLMsgChannelOpenAck        = "/ibc.core.channel.v1.MsgChannelOpenAck"
	TypeURLMsgChannelOpenConfirm    = "/ibc.core.channel.v1.MsgChannelOpenConfirm"
	TypeURLMsgChannelCloseConfirm   = "/ibc.core.channel.v1.MsgChannelCloseConfirm"
	TypeURLMsgRecvPacket            = "/ibc.core.channel.v1.MsgRecvPacket"
	TypeURLMsgAcknowledgement       = "/ibc.core.channel.v1.MsgAcknowledgement"
)
