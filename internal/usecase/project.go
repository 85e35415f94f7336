package usecase

import (
	"context"

	"github.com/hashirsyed/portfolio-api/internal/domain"
)

type projectUsecase struct {
	projects []domain.ProjectListing
}

// NewProjectUsecase creates the read-only project listing usecase
func NewProjectUsecase() domain.ProjectUsecase {
	return &projectUsecase{projects: domain.Projects()}
}

func (uc *projectUsecase) ListProjects(_ context.Context) []domain.ProjectListing {
	return uc.projects
}
