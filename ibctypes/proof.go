package ibctypes

import (
	gogoproto "github.com/cosmos/gogoproto/proto"
	ics23 "github.com/cosmos/ics23/go"
)

// ClientState is the opaque, chain-specific client state a ChainPort query
// returns. The translator never interprets its Value beyond LatestHeight,
// which it needs to pick the consensus height for consensus-proof queries.
type ClientState struct {
	TypeURL      string
	Value        []byte
	LatestHeight Height
}

// ConsensusState is the opaque, chain-specific consensus state a ChainPort
// query returns. The translator never reads its contents; only the proof
// bundled alongside it (see ConsensusProof) feeds into an outbound message.
type ConsensusState struct {
	TypeURL string
	Value   []byte
}

// ConsensusProof is the proof that a consensus state is stored under a
// client at a given height, plus the height it attests to.
type ConsensusProof struct {
	Proof  []byte
	Height Height
}

// ProofSet bundles the proofs a message builder needs for one outbound
// message. Which of the optional fields are populated is fixed per message
// kind; ProofHeight is always the height at which Commitment was queried on
// the source chain and is never zero.
type ProofSet struct {
	Commitment        []byte
	ClientStateProof  []byte
	Consensus         *ConsensusProof
	NextSequenceProof []byte
	ProofHeight       Height
}

// ValidateShape checks that every non-empty proof byte slice in the set
// decodes as a well-formed ics23 commitment proof. It is a structural check
// only — it never verifies membership, which stays the light client's job.
func (p ProofSet) ValidateShape() error {
	for _, proof := range [][]byte{p.Commitment, p.ClientStateProof, p.NextSequenceProof} {
		if len(proof) == 0 {
			continue
		}
		if err := checkCommitmentProofShape(proof); err != nil {
			return err
		}
	}
	if p.Consensus != nil && len(p.Consensus.Proof) > 0 {
		if err := checkCommitmentProofShape(p.Consensus.Proof); err != nil {
			return err
		}
	}
	return nil
}

func checkCommitmentProofShape(proof []byte) error {
	var decoded ics23.CommitmentProof
	return gogoproto.Unmarshal(proof, &decoded)
}
