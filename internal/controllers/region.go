package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/setoran/backend/internal/httputil"
	"github.com/setoran/backend/internal/models"
)

// RegisterRegionRoutes registers the routes for regions with
// the RouterGroup that is passed.
func RegisterRegionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRegionList)
		r.GET("", GetRegions)
		r.POST("", CreateRegion)
	}

	// Region with ID
	{
		r.OPTIONS("/:id", OptionsRegionDetail)
		r.GET("/:id", GetRegion)
		r.PUT("/:id", UpdateRegion)
		r.DELETE("/:id", DeleteRegion)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Regions
// @Success		204
// @Router			/regions [options]
func OptionsRegionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Regions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/regions/{id} [options]
func OptionsRegionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requestDB(c).First(&models.Region{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create region
// @Description	Creates a new region
// @Tags			Regions
// @Produce		json
// @Success		201		{object}	RegionResponse
// @Failure		400		{object}	RegionResponse
// @Failure		403		{object}	RegionResponse
// @Failure		500		{object}	RegionResponse
// @Param			region	body		RegionEditable	true	"Region"
// @Router			/regions [post]
func CreateRegion(c *gin.Context) {
	_, err := admin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	var editable RegionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	region := editable.model()
	err = requestDB(c).Create(&region).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	data := newRegion(c, region)
	c.JSON(http.StatusCreated, RegionResponse{Data: &data})
}

// @Summary		List regions
// @Description	Returns all regions ordered by name
// @Tags			Regions
// @Produce		json
// @Success		200	{object}	RegionListResponse
// @Failure		500	{object}	RegionListResponse
// @Router			/regions [get]
func GetRegions(c *gin.Context) {
	var regions []models.Region
	err := requestDB(c).Order("name ASC").Find(&regions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Region, 0)
	for _, region := range regions {
		data = append(data, newRegion(c, region))
	}

	c.JSON(http.StatusOK, RegionListResponse{Data: data})
}

// @Summary		Get region
// @Description	Returns a specific region
// @Tags			Regions
// @Produce		json
// @Success		200	{object}	RegionResponse
// @Failure		400	{object}	RegionResponse
// @Failure		404	{object}	RegionResponse
// @Failure		500	{object}	RegionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/regions/{id} [get]
func GetRegion(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	var region models.Region
	err = requestDB(c).First(&region, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	data := newRegion(c, region)
	c.JSON(http.StatusOK, RegionResponse{Data: &data})
}

// @Summary		Update region
// @Description	Replaces the editable fields of a region
// @Tags			Regions
// @Produce		json
// @Success		200		{object}	RegionResponse
// @Failure		400		{object}	RegionResponse
// @Failure		403		{object}	RegionResponse
// @Failure		404		{object}	RegionResponse
// @Failure		500		{object}	RegionResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			region	body		RegionEditable	true	"Region"
// @Router			/regions/{id} [put]
func UpdateRegion(c *gin.Context) {
	_, err := admin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	var region models.Region
	err = requestDB(c).First(&region, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	var editable RegionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	region.Name = editable.Name
	err = requestDB(c).Save(&region).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegionResponse{
			Error: &e,
		})
		return
	}

	data := newRegion(c, region)
	c.JSON(http.StatusOK, RegionResponse{Data: &data})
}

// @Summary		Delete region
// @Description	Deletes a region. Regions that allocations use cannot be deleted.
// @Tags			Regions
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/regions/{id} [delete]
func DeleteRegion(c *gin.Context) {
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

	var region models.Region
	err = requestDB(c).First(&region, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requestDB(c).Delete(&region).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
