package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/setoran/backend/internal/access"
	"github.com/setoran/backend/internal/httputil"
	"github.com/setoran/backend/internal/models"
	"gorm.io/gorm/clause"
)

// RegisterRoleRoutes registers the routes for roles with
// the RouterGroup that is passed.
func RegisterRoleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRoleList)
		r.GET("", GetRoles)
		r.POST("", CreateRole)
	}

	// Role with ID
	{
		r.OPTIONS("/:id", OptionsRoleDetail)
		r.GET("/:id", GetRole)
		r.PUT("/:id", UpdateRole)
		r.DELETE("/:id", DeleteRole)
	}
}

// getRole loads the role with its source. Scoped sessions can only
// read the roles of their source.
func getRole(c *gin.Context, s access.Session, id uuid.UUID) (models.Role, error) {
	var role models.Role
	err := requestDB(c).
		Scopes(s.Roles).
		Preload("Source").
		First(&role, id).Error

	return role, hide(s, err)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Roles
// @Success		204
// @Router			/roles [options]
func OptionsRoleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Roles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/roles/{id} [options]
func OptionsRoleDetail(c *gin.Context) {
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

	_, err = getRole(c, s, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create role
// @Description	Creates a new role
// @Tags			Roles
// @Produce		json
// @Success		201		{object}	RoleResponse
// @Failure		400		{object}	RoleResponse
// @Failure		403		{object}	RoleResponse
// @Failure		500		{object}	RoleResponse
// @Param			role	body		RoleEditable	true	"Role"
// @Router			/roles [post]
func CreateRole(c *gin.Context) {
	s, err := admin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	var editable RoleEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	role := editable.model()
	err = requestDB(c).Omit(clause.Associations).Create(&role).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	role, err = getRole(c, s, role.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	data := newRole(c, role)
	c.JSON(http.StatusCreated, RoleResponse{Data: &data})
}

// @Summary		List roles
// @Description	Returns the roles visible to the caller ordered by name. Scoped callers only see the roles of their source.
// @Tags			Roles
// @Produce		json
// @Success		200	{object}	RoleListResponse
// @Failure		500	{object}	RoleListResponse
// @Router			/roles [get]
func GetRoles(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleListResponse{
			Error: &e,
		})
		return
	}

	var roles []models.Role
	err = requestDB(c).
		Scopes(s.Roles).
		Preload("Source").
		Order("name ASC").
		Find(&roles).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Role, 0)
	for _, role := range roles {
		data = append(data, newRole(c, role))
	}

	c.JSON(http.StatusOK, RoleListResponse{Data: data})
}

// @Summary		Get role
// @Description	Returns a specific role
// @Tags			Roles
// @Produce		json
// @Success		200	{object}	RoleResponse
// @Failure		400	{object}	RoleResponse
// @Failure		403	{object}	RoleResponse
// @Failure		404	{object}	RoleResponse
// @Failure		500	{object}	RoleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/roles/{id} [get]
func GetRole(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	role, err := getRole(c, s, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	data := newRole(c, role)
	c.JSON(http.StatusOK, RoleResponse{Data: &data})
}

// @Summary		Update role
// @Description	Replaces the editable fields of a role
// @Tags			Roles
// @Produce		json
// @Success		200		{object}	RoleResponse
// @Failure		400		{object}	RoleResponse
// @Failure		403		{object}	RoleResponse
// @Failure		404		{object}	RoleResponse
// @Failure		500		{object}	RoleResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			role	body		RoleEditable	true	"Role"
// @Router			/roles/{id} [put]
func UpdateRole(c *gin.Context) {
	s, err := admin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	var role models.Role
	err = requestDB(c).First(&role, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	var editable RoleEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	update := editable.model()
	role.Name = update.Name
	role.SourceID = update.SourceID

	err = requestDB(c).Omit(clause.Associations).Save(&role).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	role, err = getRole(c, s, role.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RoleResponse{
			Error: &e,
		})
		return
	}

	data := newRole(c, role)
	c.JSON(http.StatusOK, RoleResponse{Data: &data})
}

// @Summary		Delete role
// @Description	Deletes a role. Roles that users have cannot be deleted.
// @Tags			Roles
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/roles/{id} [delete]
func DeleteRole(c *gin.Context) {
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

	var role models.Role
	err = requestDB(c).First(&role, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requestDB(c).Delete(&role).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
