package models

const RoleIDAdmin = 1

// UserProfile holds the self-service account data for the logged-in user.
type UserProfile struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	RoleID    int    `json:"roleId"`
	RoleName  string `json:"roleName,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Admin reports whether the profile carries the admin role.
func (p UserProfile) Admin() bool {
	return p.RoleID == RoleIDAdmin
}

// ProfileInput is the payload sent on profile update. The password pair is
// only included when the user requests a change; the backend requires both.
type ProfileInput struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Bio             string `json:"bio,omitempty"`
	AvatarURL       string `json:"avatarUrl,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// LoginResponse is the auth endpoint's success body.
type LoginResponse struct {
	Token string `json:"token"`
}
