package registry

// User is a single registered account. Instances returned by Registry
// methods are copies; mutating them does not affect stored state.
type User struct {
	ID     int
	Name   string
	Email  string
	Active bool
}
