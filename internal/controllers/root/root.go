package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/setoran/backend/internal/httputil"
	"github.com/setoran/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs       string `json:"docs" example:"https://example.com/api/docs/index.html"`   // Swagger API documentation
	Healthz    string `json:"healthz" example:"https://example.com/api/healthz"`        // Healthz endpoint
	Version    string `json:"version" example:"https://example.com/api/version"`        // Endpoint returning the version of the backend
	Metrics    string `json:"metrics" example:"https://example.com/api/metrics"`        // Endpoint returning Prometheus metrics
	Regions    string `json:"regions" example:"https://example.com/api/regions"`        // List endpoint for regions
	Categories string `json:"categories" example:"https://example.com/api/categories"`  // List endpoint for categories
	Sources    string `json:"sources" example:"https://example.com/api/sources"`        // List endpoint for sources
	Roles      string `json:"roles" example:"https://example.com/api/roles"`            // List endpoint for roles
	Users      string `json:"users" example:"https://example.com/api/users"`            // List endpoint for users
	Deposits   string `json:"deposits" example:"https://example.com/api/deposits"`      // List endpoint for deposits
	Report     string `json:"report" example:"https://example.com/api/deposits/report"` // Deposit report
	Export     string `json:"export" example:"https://example.com/api/deposits/export"` // Deposit report export
}

// RegisterRoutes registers the unauthenticated routes of the API root.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:       url + "/docs/index.html",
			Healthz:    url + "/healthz",
			Version:    url + "/version",
			Metrics:    url + "/metrics",
			Regions:    url + "/regions",
			Categories: url + "/categories",
			Sources:    url + "/sources",
			Roles:      url + "/roles",
			Users:      url + "/users",
			Deposits:   url + "/deposits",
			Report:     url + "/deposits/report",
			Export:     url + "/deposits/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
