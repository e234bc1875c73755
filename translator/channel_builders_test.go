package translator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	chantypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/cosmos/ibc-translator/ibctypes"
	"github.com/cosmos/ibc-translator/translator/translatortest"
)

func TestBuildChannelOpenTry(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	source.Channels["transfer/channel-0"] = ibctypes.ChannelEnd{
		Ordering: chantypes.UNORDERED,
		Version:  "ics20-1",
	}
	source.Connections["connection-0"] = ibctypes.ConnectionEnd{
		Counterparty: ibctypes.ConnectionCounterparty{ConnectionID: "connection-1"},
	}

	event := ibctypes.IbcEvent{
		Kind:   ibctypes.KindOpenInitChannel,
		Height: ibctypes.NewHeight(1, 10),
		Channel: &ibctypes.ChannelAttributes{
			PortID:             "transfer",
			ChannelID:          "channel-0",
			ConnectionID:       "connection-0",
			CounterpartyPortID: "transfer",
		},
	}

	msg, err := BuildChannelOpenTry(context.Background(), event, source, sink)
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Equal(t, ibctypes.TypeURLMsgChannelOpenTry, msg.TypeURL)
}

func TestBuildChannelOpenAckRequiresCounterpartyChannelID(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	event := ibctypes.IbcEvent{
		Kind: ibctypes.KindOpenTryChannel,
		Channel: &ibctypes.ChannelAttributes{
			PortID:    "transfer",
			ChannelID: "channel-0",
		},
	}

	_, err := BuildChannelOpenAck(context.Background(), event, source, sink)
	require.ErrorIs(t, err, ErrMissingChannelID)
}

func TestBuildChannelOpenAck(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	source.Channels["transfer/channel-0"] = ibctypes.ChannelEnd{Version: "ics20-1"}

	event := ibctypes.IbcEvent{
		Kind:   ibctypes.KindOpenTryChannel,
		Height: ibctypes.NewHeight(1, 10),
		Channel: &ibctypes.ChannelAttributes{
			PortID:                "transfer",
			ChannelID:             "channel-0",
			CounterpartyPortID:    "transfer",
			CounterpartyChannelID: "channel-1",
		},
	}

	msg, err := BuildChannelOpenAck(context.Background(), event, source, sink)
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Equal(t, ibctypes.TypeURLMsgChannelOpenAck, msg.TypeURL)
}

func TestBuildChannelOpenConfirm(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	source.Channels["transfer/channel-0"] = ibctypes.ChannelEnd{}

	event := ibctypes.IbcEvent{
		Kind:   ibctypes.KindOpenAckChannel,
		Height: ibctypes.NewHeight(1, 10),
		Channel: &ibctypes.ChannelAttributes{
			PortID:                "transfer",
			ChannelID:             "channel-0",
			CounterpartyPortID:    "transfer",
			CounterpartyChannelID: "channel-1",
		},
	}

	msg, err := BuildChannelOpenConfirm(context.Background(), event, source, sink)
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Equal(t, ibctypes.TypeURLMsgChannelOpenConfirm, msg.TypeURL)
}

func TestBuildChannelCloseConfirm(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	source.Channels["transfer/channel-0"] = ibctypes.ChannelEnd{}

	event := ibctypes.IbcEvent{
		Kind:   ibctypes.KindCloseInitChannel,
		Height: ibctypes.NewHeight(1, 10),
		Channel: &ibctypes.ChannelAttributes{
			PortID:                "transfer",
			ChannelID:             "channel-0",
			CounterpartyPortID:    "transfer",
			CounterpartyChannelID: "channel-1",
		},
	}

	msg, err := BuildChannelCloseConfirm(context.Background(), event, source, sink)
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Equal(t, ibctypes.TypeURLMsgChannelCloseConfirm, msg.TypeURL)
}
