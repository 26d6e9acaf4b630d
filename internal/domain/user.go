package domain

// User is the owner identity as exposed by the external auth provider.
// Never stored in this service; fetched on demand for denormalisation
// into meeting responses and email signatures.
type User struct {
	UID            string
	Name           string
	Email          string
	ProfilePicture string
}
