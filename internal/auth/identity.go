package auth

// Profile represents a normalized external identity returned by an OAuth
// provider after a completed consent flow. It contains facts only, no
// decisions: mapping a Profile to an account is the resolver's job.
type Profile struct {
	Provider  string // e.g. "google", "github"
	SubjectID string // provider-scoped unique user identifier (sub)
	Email     string // email asserted by the provider; may be empty
	Login     string // provider-side handle, when the provider has one
	FirstName string
	LastName  string
	Avatar    string
}
