package translator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-translator/ibctypes"
	"github.com/cosmos/ibc-translator/translator/translatortest"
)

func TestBuildConnectionOpenTry(t *testing.T) {
	source := translatortest.New("source-signer", "07-tendermint")
	sink := translatortest.New("sink-signer", "07-tendermint")

	source.Connections["connection-0"] = ibctypes.ConnectionEnd{
		ClientID: "07-tendermint-0",
		Counterparty: ibctypes.ConnectionCounterparty{
			ClientID: "07-tendermint-1",
		},
		Versions: []ibctypes.Version{{Identifier: "1", Features: []string{"ORDER_ORDERED", "ORDER_UNORDERED"}}},
	}
	source.ClientStates["07-tendermint-0"] = ibctypes.ClientState{
		TypeURL:      "/ibc.lightclients.tendermint.v1.ClientState",
		Value:        []byte("client-state"),
		LatestHeight: ibctypes.NewHeight(1, 50),
	}
	source.ConsensusState["07-tendermint-0@1-50"] = ibctypes.ConsensusState{TypeURL: "/ibc.lightclients.tendermint.v1.ConsensusState"}

	event := ibctypes.IbcEvent{
		Kind:   ibctypes.KindOpenInitConnection,
		Height: ibctypes.NewHeight(1, 10),
		Connection: &ibctypes.ConnectionAttributes{
			ConnectionID: "connection-0",
			ClientID:     "07-tendermint-0",
		},
	}

	msg, err := BuildConnectionOpenTry(context.Background(), event, source, sink)
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Equal(t, ibctypes.TypeURLMsgConnectionOpenTry, msg.TypeURL)
	require.NotEmpty(t, msg.Value)
}

func TestBuildConnectionOpenTrySkippedWithoutConnectionID(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	event := ibctypes.IbcEvent{
		Kind:       ibctypes.KindOpenInitConnection,
		Connection: &ibctypes.ConnectionAttributes{},
	}

	msg, err := BuildConnectionOpenTry(context.Background(), event, source, sink)
	require.NoError(t, err)
	require.Nil(t, msg)
}

func TestBuildConnectionOpenTryUsesHostConsensusProofForNonTendermintSink(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "08-wasm")

	source.Connections["connection-0"] = ibctypes.ConnectionEnd{
		ClientID:     "07-tendermint-0",
		Counterparty: ibctypes.ConnectionCounterparty{ClientID: "08-wasm-1"},
		Versions:     []ibctypes.Version{{Identifier: "1"}},
	}
	source.ClientStates["07-tendermint-0"] = ibctypes.ClientState{
		TypeURL:      "/ibc.lightclients.tendermint.v1.ClientState",
		LatestHeight: ibctypes.NewHeight(1, 50),
	}
	source.ConsensusState["07-tendermint-0@1-50"] = ibctypes.ConsensusState{TypeURL: "/ibc.lightclients.tendermint.v1.ConsensusState"}

	event := ibctypes.IbcEvent{
		Kind:   ibctypes.KindOpenInitConnection,
		Height: ibctypes.NewHeight(1, 10),
		Connection: &ibctypes.ConnectionAttributes{
			ConnectionID: "connection-0",
			ClientID:     "07-tendermint-0",
		},
	}

	msg, err := BuildConnectionOpenTry(context.Background(), event, source, sink)
	require.NoError(t, err)
	require.NotNil(t, msg)
}

func TestBuildConnectionOpenAckRequiresCounterpartyConnectionID(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	source.Connections["connection-0"] = ibctypes.ConnectionEnd{
		ClientID:     "07-tendermint-0",
		Counterparty: ibctypes.ConnectionCounterparty{},
		Versions:     []ibctypes.Version{{Identifier: "1"}},
	}

	event := ibctypes.IbcEvent{
		Kind:   ibctypes.KindOpenTryConnection,
		Height: ibctypes.NewHeight(1, 10),
		Connection: &ibctypes.ConnectionAttributes{
			ConnectionID: "connection-0",
			ClientID:     "07-tendermint-0",
		},
	}

	_, err := BuildConnectionOpenAck(context.Background(), event, source, sink)
	require.ErrorIs(t, err, ErrMissingCounterpartyConnectionID)
}

func TestBuildConnectionOpenAckRequiresNegotiatedVersion(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	source.Connections["connection-0"] = ibctypes.ConnectionEnd{
		ClientID:     "07-tendermint-0",
		Counterparty: ibctypes.ConnectionCounterparty{ConnectionID: "connection-1"},
		Versions:     nil,
	}

	event := ibctypes.IbcEvent{
		Kind:   ibctypes.KindOpenTryConnection,
		Height: ibctypes.NewHeight(1, 10),
		Connection: &ibctypes.ConnectionAttributes{
			ConnectionID: "connection-0",
			ClientID:     "07-tendermint-0",
		},
	}

	_, err := BuildConnectionOpenAck(context.Background(), event, source, sink)
	require.ErrorIs(t, err, ErrNoConnectionVersion)
}

func TestBuildConnectionOpenConfirm(t *testing.T) {
	source := translatortest.New("source", "07-tendermint")
	sink := translatortest.New("sink", "07-tendermint")

	source.Connections["connection-0"] = ibctypes.ConnectionEnd{
		ClientID:     "07-tendermint-0",
		Counterparty: ibctypes.ConnectionCounterparty{ConnectionID: "connection-1"},
	}

	event := ibctypes.IbcEvent{
		Kind:   ibctypes.KindOpenAckConnection,
		Height: ibctypes.NewHeight(1, 10),
		Connection: &ibctypes.ConnectionAttributes{
			ConnectionID: "connection-0",
		},
	}

	msg, err := BuildConnectionOpenConfirm(context.Background(), event, source, sink)
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Equal(t, ibctypes.TypeURLMsgConnectionOpenConfirm, msg.TypeURL)
}
