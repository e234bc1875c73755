package ibctypes

// Kind identifies which of the closed set of IBC event variants an IbcEvent
// carries. It is the tag of the tagged union; exactly one of IbcEvent's
// attribute pointers is non-nil for a given Kind.
type Kind int

const (
	KindCreateClient Kind = iota
	KindUpdateClient
	KindUpgradeClient
	KindClientMisbehaviour
	KindPushWasmCode
	KindOpenInitConnection
	KindOpenTryConnection
	KindOpenAckConnection
	KindOpenConfirmConnection
	KindOpenInitChannel
	KindOpenTryChannel
	KindOpenAckChannel
	KindOpenConfirmChannel
	KindCloseInitChannel
	KindCloseConfirmChannel
	KindSendPacket
	KindReceivePacket
	KindWriteAcknowledgement
	KindAcknowledgePacket
	KindTimeoutPacket
	KindTimeoutOnClosePacket
)

var kindNames = map[Kind]string{
	KindCreateClient:         "create_client",
	KindUpdateClient:         "update_client",
	KindUpgradeClient:        "upgrade_client",
	KindClientMisbehaviour:   "client_misbehaviour",
	KindPushWasmCode:         "push_wasm_code",
	KindOpenInitConnection:   "connection_open_init",
	KindOpenTryConnection:    "connection_open_try",
	KindOpenAckConnection:    "connection_open_ack",
	KindOpenConfirmConnection: "connection_open_confirm",
	KindOpenInitChannel:      "channel_open_init",
	KindOpenTryChannel:       "channel_open_try",
	KindOpenAckChannel:       "channel_open_ack",
	KindOpenConfirmChannel:   "channel_open_confirm",
	KindCloseInitChannel:     "channel_close_init",
	KindCloseConfirmChannel:  "channel_close_confirm",
	KindSendPacket:           "send_packet",
	KindReceivePacket:        "recv_packet",
	KindWriteAcknowledgement: "write_acknowledgement",
	KindAcknowledgePacket:    "acknowledge_packet",
	KindTimeoutPacket:        "timeout",
	KindTimeoutOnClosePacket: "timeout_on_close",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsClientEvent reports whether k is one of the client-lifecycle variants.
func (k Kind) IsClientEvent() bool {
	switch k {
	case KindCreateClient, KindUpdateClient, KindUpgradeClient, KindClientMisbehaviour, KindPushWasmCode:
		return true
	default:
		return false
	}
}

// IsConnectionEvent reports whether k is one of the connection-handshake
// variants.
func (k Kind) IsConnectionEvent() bool {
	switch k {
	case KindOpenInitConnection, KindOpenTryConnection, KindOpenAckConnection, KindOpenConfirmConnection:
		return true
	default:
		return false
	}
}

// IsChannelEvent reports whether k is a channel-handshake or packet-lifecycle
// variant — mirroring the original relayer's grouping of packet events under
// "channel" events, since both are scoped to a (port, channel) pair.
func (k Kind) IsChannelEvent() bool {
	switch k {
	case KindOpenInitChannel, KindOpenTryChannel, KindOpenAckChannel, KindOpenConfirmChannel,
		KindCloseInitChannel, KindCloseConfirmChannel,
		KindSendPacket, KindReceivePacket, KindWriteAcknowledgement,
		KindAcknowledgePacket, KindTimeoutPacket, KindTimeoutOnClosePacket:
		return true
	default:
		return false
	}
}

// IsPacketEvent reports whether k carries packet data (a subset of the
// channel events).
func (k Kind) IsPacketEvent() bool {
	switch k {
	case KindSendPacket, KindReceivePacket, KindWriteAcknowledgement,
		KindAcknowledgePacket, KindTimeoutPacket, KindTimeoutOnClosePacket:
		return true
	default:
		return false
	}
}

// ClientAttributes are the event attributes carried by client-lifecycle
// events. Header is only ever set for KindUpdateClient, and only when the
// source ABCI event carried a well-formed "header" attribute.
type ClientAttributes struct {
	ClientID        string
	ClientType      string
	ConsensusHeight Height
	Header          []byte
}

// ConnectionAttributes are the event attributes carried by connection
// handshake events. ConnectionID and CounterpartyConnectionID are "" when
// not yet assigned.
type ConnectionAttributes struct {
	ConnectionID              string
	ClientID                  string
	CounterpartyConnectionID  string
	CounterpartyClientID      string
}

// ChannelAttributes are the event attributes carried by channel handshake
// events. ChannelID and CounterpartyChannelID are "" when not yet assigned.
type ChannelAttributes struct {
	PortID                string
	ChannelID             string
	ConnectionID          string
	CounterpartyPortID    string
	CounterpartyChannelID string
}

// PacketEventAttributes are the event attributes carried by packet lifecycle
// events. Acknowledgement is only meaningful for KindWriteAcknowledgement.
type PacketEventAttributes struct {
	Packet          Packet
	Acknowledgement []byte
}

// WasmCodeAttributes are the event attributes carried by KindPushWasmCode.
type WasmCodeAttributes struct {
	CodeID []byte
}

// IbcEvent is a tagged union over every event variant the translator
// consumes. Exactly one of the attribute pointers below is non-nil,
// selected by Kind.
type IbcEvent struct {
	Kind   Kind
	Height Height

	Client     *ClientAttributes
	Connection *ConnectionAttributes
	Channel    *ChannelAttributes
	Packet     *PacketEventAttributes
	WasmCode   *WasmCodeAttributes
}
