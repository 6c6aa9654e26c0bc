// Package healthz reports if the API and its database are available.
package healthz

import (
	"net/http"
	"time"

	"github.com/SuHyeon515/wky-report/internal/httputil"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	OK bool `json:"ok" example:"true"`
}

type DBResponse struct {
	OK      bool      `json:"ok" example:"true"`
	Now     time.Time `json:"now" example:"2024-02-01T10:00:00Z"` // Current time of the database server
	Version string    `json:"version" example:"SQLite 3.44.0"`    // Database server version
}

type httpError struct {
	Error string `json:"error" example:"an error occurred on the server during your request"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/health [options]
// @Router			/db/ping [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns ok as long as the API is running
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Router			/health [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{OK: true})
}

// @Summary		Ping database
// @Description	Returns the time and version of the database server
// @Tags			General
// @Produce		json
// @Success		200	{object}	DBResponse
// @Failure		500	{object}	httpError
// @Router			/db/ping [get]
func GetDBPing(c *gin.Context) {
	now, version, err := models.ServerInfo(c.Request.Context(), models.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, DBResponse{
		OK:      true,
		Now:     now,
		Version: version,
	})
}
