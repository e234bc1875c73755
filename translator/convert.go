package translator

import (
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"

	"github.com/cosmos/ibc-translator/ibctypes"
)

// toClientHeight converts the translator's own Height to the ibc-go wire
// Height embedded in every core IBC message.
func toClientHeight(h ibctypes.Height) clienttypes.Height {
	return clienttypes.NewHeight(h.RevisionNumber, h.RevisionHeight)
}
