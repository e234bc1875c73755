package translator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-translator/ibctypes"
	"github.com/cosmos/ibc-translator/translator/translatortest"
)

func TestTranslateConnectionHandshake(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	source.Connections["connection-0"] = ibctypes.ConnectionEnd{
		ClientID:     "07-tendermint-0",
		Counterparty: ibctypes.ConnectionCounterparty{ClientID: "07-tendermint-1"},
		Versions:     []ibctypes.Version{{Identifier: "1"}},
	}
	source.ClientStates["07-tendermint-0"] = ibctypes.ClientState{
		TypeURL:      "/ibc.lightclients.tendermint.v1.ClientState",
		LatestHeight: ibctypes.NewHeight(1, 50),
	}
	source.ConsensusState["07-tendermint-0@1-50"] = ibctypes.ConsensusState{}

	tr := &Translator{Source: source, Sink: sink, Mode: ibctypes.ModeFull}

	events := []ibctypes.IbcEvent{
		{
			Kind:   ibctypes.KindOpenInitConnection,
			Height: ibctypes.NewHeight(1, 10),
			Connection: &ibctypes.ConnectionAttributes{
				ConnectionID: "connection-0",
				ClientID:     "07-tendermint-0",
			},
		},
	}

	msgs, err := tr.Translate(context.Background(), events)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, ibctypes.TypeURLMsgConnectionOpenTry, msgs[0].TypeURL)
}

func TestTranslateSkipsUnbuildableKinds(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")
	tr := &Translator{Source: source, Sink: sink}

	events := []ibctypes.IbcEvent{
		{Kind: ibctypes.KindCreateClient, Client: &ibctypes.ClientAttributes{ClientID: "07-tendermint-0"}},
		{Kind: ibctypes.KindUpdateClient, Client: &ibctypes.ClientAttributes{ClientID: "07-tendermint-0"}},
	}

	msgs, err := tr.Translate(context.Background(), events)
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestTranslateAbortsBatchOnFirstError(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")
	tr := &Translator{Source: source, Sink: sink}

	events := []ibctypes.IbcEvent{
		{
			Kind:   ibctypes.KindOpenAckConnection,
			Height: ibctypes.NewHeight(1, 10),
			Connection: &ibctypes.ConnectionAttributes{
				ConnectionID: "missing-connection",
			},
		},
	}

	msgs, err := tr.Translate(context.Background(), events)
	require.Error(t, err)
	require.Nil(t, msgs)
}

func TestHasPacketEvents(t *testing.T) {
	require.True(t, HasPacketEvents([]ibctypes.Kind{ibctypes.KindCreateClient, ibctypes.KindSendPacket}))
	require.False(t, HasPacketEvents([]ibctypes.Kind{ibctypes.KindCreateClient, ibctypes.KindOpenInitConnection}))
}
