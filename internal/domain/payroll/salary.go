package payroll

import (
	"context"
	"fmt"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

const salaryStructuresPath = "/salary-structures"

func (s *Service) ListSalaryStructures(ctx context.Context, page httpclient.PageOptions) (httpclient.Page[SalaryStructure], error) {
	var q httpclient.Query
	page.Apply(&q)

	var out httpclient.Page[SalaryStructure]
	if err := s.Client.Get(ctx, salaryStructuresPath, q, &out); err != nil {
		return httpclient.Page[SalaryStructure]{}, fmt.Errorf("list salary structures: %w", err)
	}
	return out, nil
}

// GetSalaryStructure looks a structure up by the employee it belongs to.
func (s *Service) GetSalaryStructure(ctx context.Context, employeeID string) (SalaryStructure, error) {
	if strings.TrimSpace(employeeID) == "" {
		return SalaryStructure{}, ErrEmployeeIDRequired
	}
	var out SalaryStructure
	if err := s.Client.Get(ctx, salaryStructuresPath+"/"+httpclient.PathSegment(employeeID), httpclient.Query{}, &out); err != nil {
		return SalaryStructure{}, fmt.Errorf("get salary structure of %s: %w", employeeID, err)
	}
	return out, nil
}

func (s *Service) CreateSalaryStructure(ctx context.Context, in SalaryStructureInput) (SalaryStructure, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return SalaryStructure{}, ErrEmployeeIDRequired
	}
	var out SalaryStructure
	if err := s.Client.Post(ctx, salaryStructuresPath, in, &out); err != nil {
		return SalaryStructure{}, fmt.Errorf("create salary structure: %w", err)
	}
	return out, nil
}

func (s *Service) UpdateSalaryStructure(ctx context.Context, id string, in SalaryStructureInput) (SalaryStructure, error) {
	if strings.TrimSpace(id) == "" {
		return SalaryStructure{}, ErrStructureIDRequired
	}
	var out SalaryStructure
	if err := s.Client.Put(ctx, salaryStructuresPath+"/"+httpclient.PathSegment(id), httpclient.Query{}, in, &out); err != nil {
		return SalaryStructure{}, fmt.Errorf("update salary structure %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) DeleteSalaryStructure(ctx context.Context, id string) (httpclient.Message, error) {
	if strings.TrimSpace(id) == "" {
		return httpclient.Message{}, ErrStructureIDRequired
	}
	var out httpclient.Message
	if err := s.Client.Delete(ctx, salaryStructuresPath+"/"+httpclient.PathSegment(id), &out); err != nil {
		return httpclient.Message{}, fmt.Errorf("delete salary structure %s: %w", id, err)
	}
	return out, nil
}
