package service

import (
	"context"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

const comingSoonNote = "This feature is currently under development and will be available soon."

// PlaceholderService renders the pages without records of their own.
type PlaceholderService struct{}

// NewPlaceholderService constructs the service.
func NewPlaceholderService() *PlaceholderService {
	return &PlaceholderService{}
}

// NotFound is shown for any path outside the route table.
func (s *PlaceholderService) NotFound(_ context.Context, q dto.PageQuery) (*dto.PageView, error) {
	return &dto.PageView{
		Key:         models.PageNotFound,
		Path:        q.Path,
		Title:       "404",
		Description: "Oops! Page not found",
		Actions: []dto.Action{
			{Key: "home", Label: "Return to Home", Method: "GET", Href: "/", Icon: "home"},
		},
	}, nil
}

// ComingSoon is the stand-in for a feature that has a sidebar entry but no
// page yet.
func (s *PlaceholderService) ComingSoon(title, description string) PageBuilder {
	return func(_ context.Context, q dto.PageQuery) (*dto.PageView, error) {
		return &dto.PageView{
			Key:         models.PageComingSoon,
			Path:        q.Path,
			Title:       title,
			Description: description,
			Sections: []dto.Section{
				{Key: "coming-soon", Icon: "construction", Empty: comingSoonNote},
			},
		}, nil
	}
}
