package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role,omitempty"`
	OrganizationID string `json:"organizationId,omitempty"`
}

type LoginResponse struct {
	Message     string `json:"message,omitempty"`
	Token       string `json:"token" validate:"required_without=AccessToken"`
	AccessToken string `json:"accessToken,omitempty"`
	User        *User  `json:"user,omitempty"`
}

// BearerToken returns whichever token field the backend filled.
func (r LoginResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

type AssignRoleRequest struct {
	UserID    string `json:"userId"`
	RoleID    string `json:"roleId"`
	IsDefault *bool  `json:"isDefault,omitempty"`
}

type Role struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type RoleList struct {
	Roles []Role `json:"roles" validate:"dive"`
}
