package site

import (
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
)

type Service struct {
	projects     []*Project
	services     []*OfferedService
	team         []*TeamMember
	testimonials []*Testimonial
}

func NewService() *Service {
	return &Service{
		projects:     projects,
		services:     offeredServices,
		team:         teamMembers,
		testimonials: testimonials,
	}
}

// getProjects returns every project, or only those in the given
// category when one is supplied.
func (s *Service) getProjects(category ProjectCategory) []*Project {
	if category == "" {
		return s.projects
	}

	filtered := make([]*Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

func (s *Service) getProject(projectID string) (*Project, error) {
	for _, p := range s.projects {
		if p.ProjectID == projectID {
			return p, nil
		}
	}

	return nil, servererrors.ErrProjectNotFound
}

func (s *Service) getServices() []*OfferedService {
	return s.services
}

func (s *Service) getTeam() []*TeamMember {
	return s.team
}

func (s *Service) getTestimonials() []*Testimonial {
	return s.testimonials
}
