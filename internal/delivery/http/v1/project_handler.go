package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hashirsyed/portfolio-api/internal/domain"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// NewProjectHandler registers the project listing route
func NewProjectHandler(public *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{
		projectUC: projectUC,
	}

	public.GET("/projects", handler.ListProjects)
}

// ListProjects godoc
// @Summary      List Portfolio Projects
// @Description  Return the static portfolio project listings.
// @Tags         projects
// @Produce      json
// @Success      200  {array}  domain.ProjectListing
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.projectUC.ListProjects(c.Request.Context()))
}
