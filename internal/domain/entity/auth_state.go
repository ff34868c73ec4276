package entity

// AuthStatus is the consumer-visible phase of the auth state.
type AuthStatus string

const (
	AuthStatusLoading         AuthStatus = "loading"
	AuthStatusAuthenticated   AuthStatus = "authenticated"
	AuthStatusUnauthenticated AuthStatus = "unauthenticated"
)

// AuthState is the process-wide view of the current session.
// Identity is nil when nobody is signed in or while Loading is true.
type AuthState struct {
	Identity *Identity `json:"identity"`
	Loading  bool      `json:"loading"`
}

// InitialAuthState is the state before the first auth notification arrives.
func InitialAuthState() AuthState {
	return AuthState{Loading: true}
}

// Status derives the phase from the two fields.
func (s AuthState) Status() AuthStatus {
	switch {
	case s.Loading:
		return AuthStatusLoading
	case s.Identity != nil:
		return AuthStatusAuthenticated
	default:
		return AuthStatusUnauthenticated
	}
}
