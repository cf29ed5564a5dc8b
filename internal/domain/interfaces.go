package domain

// Client talks to a Lemmy instance's HTTP API on behalf of one user.
type Client interface {
	// Login exchanges credentials for a session token.
	Login(username, password string) (Token, error)

	// SubscribedCommunities lists every community the token's user
	// follows, walking pagination until exhausted.
	SubscribedCommunities(token Token) ([]Community, error)

	// Resolve fills in the numeric community id.
	Resolve(token Token, c Community) (Community, error)

	// Subscribe follows one community, resolving it first if needed.
	Subscribe(token Token, c Community) error
}

// PasswordSource yields the password used to log in.
type PasswordSource interface {
	Password() (string, error)
}
