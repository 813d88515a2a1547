package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/setoran/backend/internal/httputil"
	"github.com/setoran/backend/internal/models"
)

// version of the backend, set by RegisterVersionRoutes
var version = "0.0.0"

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version  string `json:"version" example:"1.4.0"`   // The running version of the backend
	Database string `json:"database" example:"sqlite"` // The database engine in use, sqlite or postgres
}

func RegisterVersionRoutes(r *gin.RouterGroup, v string) {
	version = v

	r.GET("", GetVersion)
	r.OPTIONS("", OptionsVersion)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and the database engine it runs on
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	database := ""
	if models.DB != nil {
		database = models.DB.Dialector.Name()
	}

	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version:  version,
			Database: database,
		},
	})
}
