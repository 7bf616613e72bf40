package profile

// Profile is the cached display identity of the signed-in user. It is
// advisory data for the header chip and greetings only; the session token is
// the sole authentication signal.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
