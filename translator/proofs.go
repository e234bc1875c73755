package translator

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/ibc-translator/ibctypes"
)

// validateProofSet checks that every proof bundled in ps decodes as a
// well-formed ics23 commitment proof before it is ever marshaled into an
// outbound message.
func validateProofSet(ps ibctypes.ProofSet) error {
	if err := ps.ValidateShape(); err != nil {
		return errorsmod.Wrap(ErrDecodeError, err.Error())
	}
	return nil
}
