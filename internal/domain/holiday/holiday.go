// Package holiday reads and records an organization's holiday calendar file.
package holiday

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

const calendarPath = "/holiday/holiday-calendar"

var (
	ErrOrganizationIDRequired = errors.New("organization id is required")
	ErrFileNameRequired       = errors.New("calendar file name is required")
)

// Calendar is empty apart from OrganizationID when the organization has no
// calendar file yet.
type Calendar struct {
	ID               string `json:"id,omitempty"`
	OrganizationID   string `json:"organizationId"`
	CalendarFileName string `json:"calendarFileName"`
	FileURL          string `json:"fileUrl,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

type saveBody struct {
	OrganizationID   string `json:"organizationId"`
	CalendarFileName string `json:"calendarFileName"`
}

type Service struct {
	Client *httpclient.Client
}

func NewService(client *httpclient.Client) *Service {
	return &Service{Client: client}
}

func (s *Service) Get(ctx context.Context, organizationID string) (Calendar, error) {
	if strings.TrimSpace(organizationID) == "" {
		return Calendar{}, ErrOrganizationIDRequired
	}
	var out Calendar
	if err := s.Client.Get(ctx, calendarPath+"/"+httpclient.PathSegment(organizationID), httpclient.Query{}, &out); err != nil {
		return Calendar{}, fmt.Errorf("get holiday calendar of %s: %w", organizationID, err)
	}
	// null or {} means no calendar has been saved yet.
	if out.OrganizationID == "" {
		out.OrganizationID = organizationID
	}
	return out, nil
}

// Save points the organization at an already uploaded calendar file.
func (s *Service) Save(ctx context.Context, organizationID, calendarFileName string) (Calendar, error) {
	if strings.TrimSpace(organizationID) == "" {
		return Calendar{}, ErrOrganizationIDRequired
	}
	if strings.TrimSpace(calendarFileName) == "" {
		return Calendar{}, ErrFileNameRequired
	}
	var out Calendar
	body := saveBody{OrganizationID: organizationID, CalendarFileName: calendarFileName}
	if err := s.Client.Post(ctx, calendarPath, body, &out); err != nil {
		return Calendar{}, fmt.Errorf("save holiday calendar of %s: %w", organizationID, err)
	}
	return out, nil
}
