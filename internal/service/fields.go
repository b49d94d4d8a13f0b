package service

// FieldIDs names the form fields feedback is reported against. Front ends
// with different form layouts supply their own set.
type FieldIDs struct {
	RegFullName   string
	RegEmail      string
	RegPassword   string
	LoginEmail    string
	LoginPassword string
}

// DefaultFieldIDs returns the ids used by the registration and login forms.
func DefaultFieldIDs() FieldIDs {
	return FieldIDs{
		RegFullName:   "reg-fullname",
		RegEmail:      "reg-email",
		RegPassword:   "reg-password",
		LoginEmail:    "login-email",
		LoginPassword: "login-password",
	}
}

// User-facing messages.
const (
	MsgEmailTaken              = "This email is already registered"
	MsgInvalidCredentials      = "Invalid email or password"
	MsgRegistered              = "Registration successful! Please login."
	MsgLoggedIn                = "Login successful! Welcome back."
	MsgInvalidCredentialsToast = "Invalid credentials. Please try again."
	MsgLoggedOut               = "Logged out successfully"
	MsgInvalidEmail            = "Please enter a valid email address"
)
