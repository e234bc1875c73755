package ibctypes

// Mode gates the optional, non-admission side queries a Translator may
// perform. Light suppresses channel-state consistency checks against the
// sink; it never changes which messages are emitted.
type Mode int

const (
	ModeFull Mode = iota
	ModeLight
)

func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "full"
}
