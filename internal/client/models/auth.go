package models

// Degrees offered at signup.
var Degrees = []string{"BA", "MA", "BSc", "MSc", "BCom", "MCom", "BCA", "MCA"}

// Departments offered at signup.
var Departments = []string{"Tamil", "English", "Maths", "Accounts", "Computer Science", "Computer Application", "Data Science"}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=student teacher alumni"`
}

// SignupRequest is the signup payload. Optional profile fields are only
// sent when signing up.
type SignupRequest struct {
	Credentials
	Name           string `json:"name,omitempty" validate:"required"`
	AdditionalInfo string `json:"additionalInfo,omitempty" validate:"required"`
	Degree         string `json:"degree,omitempty" validate:"required"`
	Department     string `json:"department,omitempty" validate:"required"`
}

// AuthResponse is returned by both login and signup.
type AuthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile is the current user as reported by GET /api/user.
type Profile struct {
	ID             string `json:"_id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
	Degree         string `json:"degree,omitempty"`
	Department     string `json:"department,omitempty"`
}
