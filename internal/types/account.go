package types

// DefaultTheme is the theme assigned to new accounts.
const DefaultTheme = "light"

// Profile is the denormalized copy of identity fields stored with each
// account. It is written once at registration.
type Profile struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

// AccountRecord is the stored data for one registered user. Records are
// keyed by email address, case-sensitive and untrimmed by the store.
type AccountRecord struct {
	FullName string         `json:"fullName"`
	Password string         `json:"password"` // stored verbatim
	Profile  Profile        `json:"profile"`
	Resume   ResumeDocument `json:"resume"`
	Theme    string         `json:"theme"`
	Session  bool           `json:"session"` // true while this account is logged in
}

// NewAccountRecord builds the record written on successful registration:
// an empty resume, the default theme and no active session.
func NewAccountRecord(fullName, email, password string) *AccountRecord {
	return &AccountRecord{
		FullName: fullName,
		Password: password,
		Profile:  Profile{FullName: fullName, Email: email},
		Theme:    DefaultTheme,
	}
}

// Clone returns a deep copy of r.
func (r *AccountRecord) Clone() *AccountRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.Resume = r.Resume.Clone()
	return &c
}

// DisplayName is the label shown in the account menu: the profile name,
// then the profile email, then the account id.
func (r *AccountRecord) DisplayName(id string) string {
	if r == nil {
		return id
	}
	if r.Profile.FullName != "" {
		return r.Profile.FullName
	}
	if r.Profile.Email != "" {
		return r.Profile.Email
	}
	return id
}

// Greeting is the name shown in the page header: the registered full name,
// or the account id when the record has none.
func (r *AccountRecord) Greeting(id string) string {
	if r == nil || r.FullName == "" {
		return id
	}
	return r.FullName
}
