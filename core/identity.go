package core

// Identity names the author of a persisted snapshot version.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
