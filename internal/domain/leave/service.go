package leave

import (
	"context"
	"fmt"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

const policyPath = "/leave-policy"

type Service struct {
	Client *httpclient.Client
}

func NewService(client *httpclient.Client) *Service {
	return &Service{Client: client}
}

func (s *Service) ListPolicies(ctx context.Context) ([]Policy, error) {
	var out []Policy
	if err := s.Client.Get(ctx, policyPath, httpclient.Query{}, &out); err != nil {
		return nil, fmt.Errorf("list leave policies: %w", err)
	}
	return out, nil
}

func (s *Service) GetPolicy(ctx context.Context, id string) (Policy, error) {
	if strings.TrimSpace(id) == "" {
		return Policy{}, ErrPolicyIDRequired
	}
	var out Policy
	if err := s.Client.Get(ctx, policyPath+"/"+httpclient.PathSegment(id), httpclient.Query{}, &out); err != nil {
		return Policy{}, fmt.Errorf("get leave policy %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) CreatePolicy(ctx context.Context, in PolicyInput) (Policy, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Policy{}, ErrPolicyNameRequired
	}
	var out Policy
	if err := s.Client.Post(ctx, policyPath, in, &out); err != nil {
		return Policy{}, fmt.Errorf("create leave policy: %w", err)
	}
	return out, nil
}

// UpdatePolicy changes policy metadata only. Leave types are edited one at a
// time with UpdateLeaveType.
func (s *Service) UpdatePolicy(ctx context.Context, id string, in PolicyMetadata) (Policy, error) {
	if strings.TrimSpace(id) == "" {
		return Policy{}, ErrPolicyIDRequired
	}
	var out Policy
	if err := s.Client.Put(ctx, policyPath+"/"+httpclient.PathSegment(id), httpclient.Query{}, in, &out); err != nil {
		return Policy{}, fmt.Errorf("update leave policy %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) UpdateLeaveType(ctx context.Context, policyID, leaveTypeID string, in LeaveType) (Policy, error) {
	if strings.TrimSpace(policyID) == "" {
		return Policy{}, ErrPolicyIDRequired
	}
	if strings.TrimSpace(leaveTypeID) == "" {
		return Policy{}, ErrLeaveTypeIDRequired
	}
	path := policyPath + "/" + httpclient.PathSegment(policyID) + "/leave-type/" + httpclient.PathSegment(leaveTypeID)
	var out Policy
	if err := s.Client.Put(ctx, path, httpclient.Query{}, in, &out); err != nil {
		return Policy{}, fmt.Errorf("update leave type %s of policy %s: %w", leaveTypeID, policyID, err)
	}
	return out, nil
}

func (s *Service) DeletePolicy(ctx context.Context, id string) (httpclient.Message, error) {
	if strings.TrimSpace(id) == "" {
		return httpclient.Message{}, ErrPolicyIDRequired
	}
	var out httpclient.Message
	if err := s.Client.Delete(ctx, policyPath+"/"+httpclient.PathSegment(id), &out); err != nil {
		return httpclient.Message{}, fmt.Errorf("delete leave policy %s: %w", id, err)
	}
	return out, nil
}
