package abci

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

const Codespace = "abci"

var (
	ErrMissingField        = errorsmod.Register(Codespace, 2, "missing field")
	ErrDecodeError          = errorsmod.Register(Codespace, 3, "decode error")
	ErrMalformedHeader      = errorsmod.Register(Codespace, 4, "malformed header attribute")
	ErrInvalidTimeoutHeight = errorsmod.Register(Codespace, 5, "invalid timeout height")
	ErrUnsupportedAbciEvent = errorsmod.Register(Codespace, 6, "unsupported abci event kind")
)

func missingFieldErr(name string) error {
	return errorsmod.Wrap(ErrMissingField, name)
}

func unsupportedEventErr(kind string) error {
	return errorsmod.Wrapf(ErrUnsupportedAbciEvent, "kind=%s", kind)
}

func decodeErr(what string, cause error) error {
	return errorsmod.Wrap(ErrDecodeError, fmt.Sprintf("%s: %v", what, cause))
}

func errWrapMalformedHeader(cause error) error {
	return errorsmod.Wrap(ErrMalformedHeader, cause.Error())
}

func errorsmodWrapInvalidTimeoutHeight(raw string) error {
	return errorsmod.Wrapf(ErrInvalidTimeoutHeight, "value=%q", raw)
}
