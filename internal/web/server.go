// internal/web/server.go
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/jobtracker/internal/client"
	"github.com/javajoker/jobtracker/internal/handlers"
	"github.com/javajoker/jobtracker/internal/middleware"
	"github.com/javajoker/jobtracker/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const metricsNamespace = "job_tracker_web"

// API is the subset of the API client the pages need.
type API interface {
	List(ctx context.Context, opts client.ListOptions) ([]models.Application, error)
	Get(ctx context.Context, id int64) (*models.Application, error)
	Create(ctx context.Context, payload client.Payload) (*models.Application, error)
	Update(ctx context.Context, id int64, payload client.Payload) (*models.Application, error)
	Delete(ctx context.Context, id int64) error
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
}

// Initialize builds the engine serving the HTML pages.
func Initialize(api API) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	h := NewPageHandler(api)
	metrics := middleware.NewMetrics(metricsNamespace)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/applications")
	})

	applications := r.Group("/applications")
	{
		applications.GET("", h.Index)
		applications.POST("", h.Create)
		applications.GET("/new", h.New)
		applications.GET("/:id", h.Show)
		applications.GET("/:id/edit", h.Edit)
		applications.POST("/:id", h.Update)
		applications.POST("/:id/delete", h.Delete)
	}

	r.NoRoute(h.notFound)

	return r, nil
}
