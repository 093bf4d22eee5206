package types

import "fmt"

// redacted replaces secrets in log and display output.
const redacted = "****"

// AuthObject is the body for POST login/operatorLogin (username/password,
// cookie-based auth).
type AuthObject struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// Password2 and Email exist in the portal schema but are unused for
	// operator logins.
	Password2 string `json:"password2,omitempty"`
	Email     string `json:"email,omitempty"`
}

// NewAuthObject builds a username/password login body.
func NewAuthObject(username, password string) AuthObject {
	return AuthObject{Username: username, Password: password}
}

// String renders the object with the password redacted. The plain password
// is only ever written by MarshalJSON on the way to the portal.
func (a AuthObject) String() string {
	return fmt.Sprintf("AuthObject(%s, %s)", a.Username, redacted)
}
