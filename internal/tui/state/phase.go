package state

// Phase is where the session flow currently stands.
type Phase int

const (
	Unchecked          Phase = iota // Before activation
	CheckingCredential              // Reading the stored credential
	LoggedOut                       // No credential; login flow shown
	FetchingUser                    // Identity fetch in flight
	FetchingColumns                 // Board fetch in flight
	FetchError                      // A fetch failed; alert shown or dismissed
	Rendered                        // Board rendered from the latest fetch
)

func (p Phase) String() string {
	switch p {
	case Unchecked:
		return "unchecked"
	case CheckingCredential:
		return "checking credential"
	case LoggedOut:
		return "logged out"
	case FetchingUser:
		return "fetching user"
	case FetchingColumns:
		return "fetching columns"
	case FetchError:
		return "fetch error"
	case Rendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// Busy reports whether a store or gateway call is outstanding in this phase
func (p Phase) Busy() bool {
	return p == CheckingCredential || p == FetchingUser || p == FetchingColumns
}
