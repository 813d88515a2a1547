package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/setoran/backend/internal/access"
	"github.com/setoran/backend/internal/httputil"
	"github.com/setoran/backend/internal/models"
)

// RegisterSourceRoutes registers the routes for sources with
// the RouterGroup that is passed.
func RegisterSourceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSourceList)
		r.GET("", GetSources)
		r.POST("", CreateSource)
	}

	// Source with ID
	{
		r.OPTIONS("/:id", OptionsSourceDetail)
		r.GET("/:id", GetSource)
		r.PUT("/:id", UpdateSource)
		r.DELETE("/:id", DeleteSource)
	}
}

// getSource loads the source with its category and allocations. Sources
// outside of the scope of the session are forbidden.
func getSource(c *gin.Context, s access.Session, id uuid.UUID) (models.Source, error) {
	var source models.Source
	err := requestDB(c).
		Scopes(s.Sources, models.WithAllocations).
		Preload("Category").
		First(&source, id).Error

	return source, hide(s, err)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sources
// @Success		204
// @Router			/sources [options]
func OptionsSourceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/sources/{id} [options]
func OptionsSourceDetail(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = getSource(c, s, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create source
// @Description	Creates a new source together with its allocations
// @Tags			Sources
// @Produce		json
// @Success		201		{object}	SourceResponse
// @Failure		400		{object}	SourceResponse
// @Failure		403		{object}	SourceResponse
// @Failure		500		{object}	SourceResponse
// @Param			source	body		SourceEditable	true	"Source"
// @Router			/sources [post]
func CreateSource(c *gin.Context) {
	s, err := admin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	var editable SourceEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	source, inputs := editable.model()
	err = models.SaveSource(requestDB(c), &source, inputs)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	source, err = getSource(c, s, source.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	data := newSource(c, source)
	c.JSON(http.StatusCreated, SourceResponse{Data: &data})
}

// @Summary		List sources
// @Description	Returns the sources visible to the caller ordered by name
// @Tags			Sources
// @Produce		json
// @Success		200		{object}	SourceListResponse
// @Failure		400		{object}	SourceListResponse
// @Failure		500		{object}	SourceListResponse
// @Param			name	query		string	false	"Filter by name with a shell style glob, e.g. 'Pajak*'"
// @Router			/sources [get]
func GetSources(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceListResponse{
			Error: &e,
		})
		return
	}

	var filter SourceQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SourceListResponse{
			Error: &e,
		})
		return
	}

	var sources []models.Source
	err = requestDB(c).
		Scopes(s.Sources, models.WithAllocations).
		Preload("Category").
		Order("name ASC").
		Find(&sources).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Source, 0)
	for _, source := range sources {
		if filter.matches(source) {
			data = append(data, newSource(c, source))
		}
	}

	c.JSON(http.StatusOK, SourceListResponse{Data: data})
}

// @Summary		Get source
// @Description	Returns a specific source
// @Tags			Sources
// @Produce		json
// @Success		200	{object}	SourceResponse
// @Failure		400	{object}	SourceResponse
// @Failure		403	{object}	SourceResponse
// @Failure		404	{object}	SourceResponse
// @Failure		500	{object}	SourceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/sources/{id} [get]
func GetSource(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	source, err := getSource(c, s, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	data := newSource(c, source)
	c.JSON(http.StatusOK, SourceResponse{Data: &data})
}

// @Summary		Update source
// @Description	Replaces a source and its allocations. Allocations that are not part of the request are removed.
// @Tags			Sources
// @Produce		json
// @Success		200		{object}	SourceResponse
// @Failure		400		{object}	SourceResponse
// @Failure		403		{object}	SourceResponse
// @Failure		404		{object}	SourceResponse
// @Failure		500		{object}	SourceResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			source	body		SourceEditable	true	"Source"
// @Router			/sources/{id} [put]
func UpdateSource(c *gin.Context) {
	s, err := admin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	var source models.Source
	err = requestDB(c).First(&source, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	var editable SourceEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	update, inputs := editable.model()
	source.Name = update.Name
	source.CategoryID = update.CategoryID

	err = models.SaveSource(requestDB(c), &source, inputs)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	source, err = getSource(c, s, source.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &e,
		})
		return
	}

	data := newSource(c, source)
	c.JSON(http.StatusOK, SourceResponse{Data: &data})
}

// @Summary		Delete source
// @Description	Deletes a source and its allocations. Sources that deposits or roles use cannot be deleted.
// @Tags			Sources
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/sources/{id} [delete]
func DeleteSource(c *gin.Context) {
	_, err := admin(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var source models.Source
	err = requestDB(c).First(&source, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requestDB(c).Delete(&source).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
