// Package translatortest provides a hand-written in-memory chainport.ChainPort
// fake for exercising translator builders and admission logic without a real
// chain backend.
package translatortest

import (
	"context"
	"fmt"

	gogoproto "github.com/cosmos/gogoproto/proto"
	ics23 "github.com/cosmos/ics23/go"

	"github.com/cosmos/ibc-translator/chainport"
	"github.com/cosmos/ibc-translator/ibctypes"
)

// fakeProof builds a well-formed (if not actually verifiable) ics23
// CommitmentProof so that ibctypes.ProofSet.ValidateShape accepts it,
// labeled by key so tests can tell proofs apart.
func fakeProof(key string) []byte {
	proof := &ics23.CommitmentProof{
		Proof: &ics23.CommitmentProof_Exist{
			Exist: &ics23.ExistenceProof{
				Key:   []byte(key),
				Value: []byte(key),
			},
		},
	}
	value, err := gogoproto.Marshal(proof)
	if err != nil {
		panic(err)
	}
	return value
}

// FakeChain is a ChainPort backed by plain maps, keyed by the identifiers a
// real chain would key its state by. Every query returns whatever the test
// stored in the matching map, plus a deterministic proof (built from its own
// key) and ProofHeight.
type FakeChain struct {
	Account          string
	Client           string
	Prefix           []byte
	ProofHeight      ibctypes.Height
	HostConsensusErr error

	Connections    map[string]ibctypes.ConnectionEnd
	Channels       map[string]ibctypes.ChannelEnd
	ClientStates   map[string]ibctypes.ClientState
	ConsensusState map[string]ibctypes.ConsensusState
	Commitments    map[string][]byte
	Acks           map[string][]byte
}

// New returns a FakeChain with every map initialized and empty.
func New(account, clientType string) *FakeChain {
	return &FakeChain{
		Account:        account,
		Client:         clientType,
		ProofHeight:    ibctypes.NewHeight(1, 100),
		Connections:    map[string]ibctypes.ConnectionEnd{},
		Channels:       map[string]ibctypes.ChannelEnd{},
		ClientStates:   map[string]ibctypes.ClientState{},
		ConsensusState: map[string]ibctypes.ConsensusState{},
		Commitments:    map[string][]byte{},
		Acks:           map[string][]byte{},
	}
}

func channelKey(portID, channelID string) string {
	return portID + "/" + channelID
}

func packetKey(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%s/%d", portID, channelID, sequence)
}

func (f *FakeChain) QueryConnectionEnd(_ context.Context, _ ibctypes.Height, connectionID string) (ibctypes.ConnectionEnd, []byte, ibctypes.Height, error) {
	end, ok := f.Connections[connectionID]
	if !ok {
		return ibctypes.ConnectionEnd{}, nil, ibctypes.Height{}, chainport.ErrNotFound
	}
	return end, fakeProof("connproof:" + connectionID), f.ProofHeight, nil
}

func (f *FakeChain) QueryChannelEnd(_ context.Context, _ ibctypes.Height, portID, channelID string) (ibctypes.ChannelEnd, []byte, ibctypes.Height, error) {
	key := channelKey(portID, channelID)
	end, ok := f.Channels[key]
	if !ok {
		return ibctypes.ChannelEnd{}, nil, ibctypes.Height{}, chainport.ErrNotFound
	}
	return end, fakeProof("chanproof:" + key), f.ProofHeight, nil
}

func (f *FakeChain) QueryClientState(_ context.Context, _ ibctypes.Height, clientID string) (ibctypes.ClientState, []byte, ibctypes.Height, error) {
	state, ok := f.ClientStates[clientID]
	if !ok {
		return ibctypes.ClientState{}, nil, ibctypes.Height{}, chainport.ErrNotFound
	}
	return state, fakeProof("clientproof:" + clientID), f.ProofHeight, nil
}

func (f *FakeChain) QueryClientConsensus(_ context.Context, _ ibctypes.Height, clientID string, consensusHeight ibctypes.Height) (ibctypes.ConsensusState, []byte, ibctypes.Height, error) {
	key := clientID + "@" + consensusHeight.String()
	state, ok := f.ConsensusState[key]
	if !ok {
		return ibctypes.ConsensusState{}, nil, ibctypes.Height{}, chainport.ErrNotFound
	}
	return state, fakeProof("consensusproof:" + key), f.ProofHeight, nil
}

func (f *FakeChain) QueryPacketCommitment(_ context.Context, _ ibctypes.Height, portID, channelID string, sequence uint64) ([]byte, []byte, ibctypes.Height, error) {
	key := packetKey(portID, channelID, sequence)
	commitment, ok := f.Commitments[key]
	if !ok {
		return nil, nil, ibctypes.Height{}, chainport.ErrNotFound
	}
	return commitment, fakeProof("commitmentproof:" + key), f.ProofHeight, nil
}

func (f *FakeChain) QueryPacketAcknowledgement(_ context.Context, _ ibctypes.Height, portID, channelID string, sequence uint64) ([]byte, []byte, ibctypes.Height, error) {
	key := packetKey(portID, channelID, sequence)
	ack, ok := f.Acks[key]
	if !ok {
		return nil, nil, ibctypes.Height{}, chainport.ErrNotFound
	}
	return ack, fakeProof("ackproof:" + key), f.ProofHeight, nil
}

func (f *FakeChain) QueryHostConsensusStateProof(_ context.Context, clientState ibctypes.ClientState) ([]byte, error) {
	if f.HostConsensusErr != nil {
		return nil, f.HostConsensusErr
	}
	return []byte("hostconsensusproof:" + clientState.TypeURL), nil
}

func (f *FakeChain) AccountID() string      { return f.Account }
func (f *FakeChain) ClientType() string     { return f.Client }
func (f *FakeChain) ConnectionPrefix() []byte { return f.Prefix }

var _ chainport.ChainPort = (*FakeChain)(nil)
