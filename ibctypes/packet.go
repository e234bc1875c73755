package ibctypes

// Packet is a single application-level data unit sent over a channel.
//
// TimeoutHeight zero means "no height timeout"; TimeoutTimestamp zero means
// "no timestamp timeout". A packet with both zero can never time out and is
// dropped by AdmissionPolicy before it is ever relayed (see
// translator.AdmissionPolicy).
type Packet struct {
	Sequence           uint64
	SourcePort         string
	SourceChannel      string
	DestinationPort    string
	DestinationChannel string
	Data               []byte
	TimeoutHeight      Height
	TimeoutTimestamp   uint64 // nanoseconds
}

// HasTimeout reports whether at least one of the two timeout mechanisms is
// set, i.e. whether the packet can ever be relayed.
func (p Packet) HasTimeout() bool {
	return !p.TimeoutHeight.IsZero() || p.TimeoutTimestamp != 0
}
