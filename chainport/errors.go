package chainport

import errorsmod "cosmossdk.io/errors"

// Codespace registers this package's error codes with cosmossdk.io/errors
// so callers can errors.Is-match across process and RPC boundaries, the way
// every cosmos-sdk and ibc-go module registers its own codespace.
const Codespace = "chainport"

var (
	// ErrQueryFailed wraps a transport/RPC failure on the querying chain.
	ErrQueryFailed = errorsmod.Register(Codespace, 2, "query failed")
	// ErrNotFound wraps a query that succeeded but returned no entity.
	ErrNotFound = errorsmod.Register(Codespace, 3, "entity not found")
)
