package translator

import errorsmod "cosmossdk.io/errors"

const Codespace = "translator"

var (
	ErrMissingField                     = errorsmod.Register(Codespace, 2, "missing field")
	ErrMissingCounterpartyConnectionID = errorsmod.Register(Codespace, 3, "missing counterparty connection id")
	ErrMissingChannelID                 = errorsmod.Register(Codespace, 4, "missing channel id")
	ErrNoConnectionVersion              = errorsmod.Register(Codespace, 5, "connection has no negotiated version")
	ErrDecodeError                       = errorsmod.Register(Codespace, 6, "decode error")
)

func missingFieldErr(name string) error {
	return errorsmod.Wrap(ErrMissingField, name)
}
