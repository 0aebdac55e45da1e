package auth

import (
	"context"
	"fmt"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

type Service struct {
	Client *httpclient.Client
}

func NewService(client *httpclient.Client) *Service {
	return &Service{Client: client}
}

// Login exchanges credentials for a bearer token. Storing the token is up to
// the caller.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResponse{}, ErrCredentialsRequired
	}
	var out LoginResponse
	if err := s.Client.Post(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return LoginResponse{}, fmt.Errorf("login: %w", err)
	}
	return out, nil
}

// AssignRole grants roleID to userID. isDefault is sent only when non-nil.
func (s *Service) AssignRole(ctx context.Context, userID, roleID string, isDefault *bool) (httpclient.Message, error) {
	if userID == "" || roleID == "" {
		return httpclient.Message{}, ErrUserRequired
	}
	var out httpclient.Message
	req := AssignRoleRequest{UserID: userID, RoleID: roleID, IsDefault: isDefault}
	if err := s.Client.Post(ctx, "/auth/assign-role", req, &out); err != nil {
		return httpclient.Message{}, fmt.Errorf("assign role: %w", err)
	}
	return out, nil
}

func (s *Service) ListRoles(ctx context.Context) ([]Role, error) {
	var out RoleList
	if err := s.Client.Get(ctx, "/roles", httpclient.Query{}, &out); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return out.Roles, nil
}
