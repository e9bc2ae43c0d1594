package domain

import (
	"strings"
	"time"
)

// Service is a catalog offering. Services are append-only.
type Service struct {
	ID              string
	Name            string
	Price           float64
	DurationMinutes int
	Icon            string
	CreatedAt       time.Time
}

// ResolvedIcon returns the display icon for the service
func (s *Service) ResolvedIcon() Icon {
	return ResolveIcon(s.Icon)
}

// Validate checks the fields required to add a service to the catalog
func (s *Service) Validate() error {
	verr := NewValidationError()

	if len([]rune(strings.TrimSpace(s.Name))) < MinServiceNameLength {
		verr.Add("name", "service name must be at least 2 characters")
	}
	if s.Price <= 0 {
		verr.Add("price", "price must be positive")
	}
	if s.DurationMinutes <= 0 {
		verr.Add("duration", "duration must be a positive number of minutes")
	}
	if !IsKnownIcon(s.Icon) {
		verr.Add("icon", "icon must be one of "+strings.Join(IconTokens(), ", "))
	}

	return verr.ErrOrNil()
}

// Catalog indexes services by id for resolving booking references
type Catalog map[string]Service

// NewCatalog builds a lookup from a service list
func NewCatalog(services []Service) Catalog {
	c := make(Catalog, len(services))
	for _, s := range services {
		c[s.ID] = s
	}
	return c
}

// ServiceSummary describes the services a booking references
type ServiceSummary struct {
	Names      []string
	Label      string
	TotalPrice float64
	Resolved   int
}

// Summarize resolves ids against the catalog. Unresolved ids contribute nothing;
// when none resolve the label is UnknownServiceName.
func (c Catalog) Summarize(ids []string) ServiceSummary {
	var sum ServiceSummary
	for _, id := range ids {
		s, ok := c[id]
		if !ok {
			continue
		}
		sum.Names = append(sum.Names, s.Name)
		sum.TotalPrice += s.Price
		sum.Resolved++
	}

	if sum.Resolved == 0 {
		sum.Label = UnknownServiceName
	} else {
		sum.Label = strings.Join(sum.Names, ", ")
	}
	return sum
}
