package client

// Profile is the minimal user info cached alongside the token.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the client's view of who is logged in. It is an explicit value
// passed around rather than global state, and is persisted through a Store.
type Session struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}
