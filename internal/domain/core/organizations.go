package core

import (
	"context"
	"fmt"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

func (s *Service) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var out []Organization
	if err := s.Client.Get(ctx, "/organizations", httpclient.Query{}, &out); err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return out, nil
}

func (s *Service) GetOrganization(ctx context.Context, id string) (Organization, error) {
	if strings.TrimSpace(id) == "" {
		return Organization{}, ErrOrganizationIDRequired
	}
	var out Organization
	if err := s.Client.Get(ctx, organizationPath(id), httpclient.Query{}, &out); err != nil {
		return Organization{}, fmt.Errorf("get organization %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) CreateOrganization(ctx context.Context, in OrganizationInput) (Organization, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Organization{}, ErrOrganizationName
	}
	var out Organization
	if err := s.Client.Post(ctx, "/organizations", in, &out); err != nil {
		return Organization{}, fmt.Errorf("create organization: %w", err)
	}
	return out, nil
}

// UpdateOrganization never sends the admin block; it is accepted at creation
// only.
func (s *Service) UpdateOrganization(ctx context.Context, id string, in OrganizationInput) (Organization, error) {
	if strings.TrimSpace(id) == "" {
		return Organization{}, ErrOrganizationIDRequired
	}
	in.Admin = nil
	var out Organization
	if err := s.Client.Put(ctx, organizationPath(id), httpclient.Query{}, in, &out); err != nil {
		return Organization{}, fmt.Errorf("update organization %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) DeleteOrganization(ctx context.Context, id string) (httpclient.Message, error) {
	if strings.TrimSpace(id) == "" {
		return httpclient.Message{}, ErrOrganizationIDRequired
	}
	var out httpclient.Message
	if err := s.Client.Delete(ctx, organizationPath(id), &out); err != nil {
		return httpclient.Message{}, fmt.Errorf("delete organization %s: %w", id, err)
	}
	return out, nil
}

func organizationPath(id string) string {
	return "/organizations/" + httpclient.PathSegment(id)
}
