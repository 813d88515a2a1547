package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/setoran/backend/internal/access"
	"github.com/setoran/backend/internal/httputil"
	"github.com/setoran/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterDepositRoutes registers the routes for deposits with
// the RouterGroup that is passed.
func RegisterDepositRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDepositList)
		r.GET("", GetDeposits)
		r.POST("", CreateDeposit)
	}

	// Reports
	{
		r.OPTIONS("/report", OptionsReport)
		r.GET("/report", GetReport)
		r.OPTIONS("/years", OptionsReport)
		r.GET("/years", GetYears)
		r.OPTIONS("/summary", OptionsReport)
		r.GET("/summary", GetSummary)
		r.OPTIONS("/export", OptionsReport)
		r.GET("/export", GetExport)
	}

	// Deposit with ID
	{
		r.OPTIONS("/:id", OptionsDepositDetail)
		r.GET("/:id", GetDeposit)
		r.PUT("/:id", UpdateDeposit)
		r.DELETE("/:id", DeleteDeposit)
	}
}

// getDeposit loads the deposit with its source. Deposits of other sources
// are forbidden for scoped sessions.
func getDeposit(c *gin.Context, s access.Session, id uuid.UUID) (models.Deposit, error) {
	var deposit models.Deposit
	err := requestDB(c).
		Scopes(s.Deposits, models.WithSource).
		First(&deposit, id).Error
	if err != nil {
		return deposit, hide(s, err)
	}

	return deposit, access.Scope(s, access.Read, deposit.SourceID)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Deposits
// @Success		204
// @Router			/deposits [options]
func OptionsDepositList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Deposits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/deposits/{id} [options]
func OptionsDepositDetail(c *gin.Context) {
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

	_, err = getDeposit(c, s, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create deposit
// @Description	Creates a new deposit. Deposits of scoped callers are always created for their source.
// @Tags			Deposits
// @Produce		json
// @Success		201		{object}	DepositResponse
// @Failure		400		{object}	DepositResponse
// @Failure		403		{object}	DepositResponse
// @Failure		500		{object}	DepositResponse
// @Param			deposit	body		DepositEditable	true	"Deposit"
// @Router			/deposits [post]
func CreateDeposit(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	var editable DepositEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	deposit := editable.model()
	deposit.SourceID, err = access.AssignSource(s, deposit.SourceID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	err = requestDB(c).Omit(clause.Associations).Create(&deposit).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	deposit, err = getDeposit(c, s, deposit.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	data := newDeposit(c, s, deposit)
	c.JSON(http.StatusCreated, DepositResponse{Data: &data})
}

// @Summary		List deposits
// @Description	Returns the deposits visible to the caller ordered by year, month and creation
// @Tags			Deposits
// @Produce		json
// @Success		200		{object}	DepositListResponse
// @Failure		400		{object}	DepositListResponse
// @Failure		500		{object}	DepositListResponse
// @Param			month	query		int		false	"Filter by month"
// @Param			year	query		int		false	"Filter by year"
// @Param			source	query		string	false	"Filter by source ID"
// @Param			offset	query		uint	false	"The offset of the first Deposit returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of Deposits to return. Defaults to 50."
// @Router			/deposits [get]
func GetDeposits(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositListResponse{
			Error: &e,
		})
		return
	}

	var filter DepositQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DepositListResponse{
			Error: &e,
		})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	filtered := func(db *gorm.DB) *gorm.DB {
		return db.Scopes(s.Deposits).Where(&model, queryFields...)
	}

	var count int64
	err = requestDB(c).Model(&models.Deposit{}).Scopes(filtered).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositListResponse{
			Error: &e,
		})
		return
	}

	// Default to 50 Deposits and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	var deposits []models.Deposit
	err = requestDB(c).
		Scopes(filtered, models.DepositOrder, models.WithSource).
		Offset(int(filter.Offset)).
		Limit(limit).
		Find(&deposits).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Deposit, 0)
	for _, deposit := range s.Visible(deposits) {
		data = append(data, newDeposit(c, s, deposit))
	}

	c.JSON(http.StatusOK, DepositListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get deposit
// @Description	Returns a specific deposit
// @Tags			Deposits
// @Produce		json
// @Success		200	{object}	DepositResponse
// @Failure		400	{object}	DepositResponse
// @Failure		403	{object}	DepositResponse
// @Failure		404	{object}	DepositResponse
// @Failure		500	{object}	DepositResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/deposits/{id} [get]
func GetDeposit(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	deposit, err := getDeposit(c, s, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	data := newDeposit(c, s, deposit)
	c.JSON(http.StatusOK, DepositResponse{Data: &data})
}

// @Summary		Update deposit
// @Description	Replaces month, year, amount and note of a deposit. The source cannot be changed.
// @Tags			Deposits
// @Produce		json
// @Success		200		{object}	DepositResponse
// @Failure		400		{object}	DepositResponse
// @Failure		403		{object}	DepositResponse
// @Failure		404		{object}	DepositResponse
// @Failure		500		{object}	DepositResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			deposit	body		DepositEditable	true	"Deposit"
// @Router			/deposits/{id} [put]
func UpdateDeposit(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	deposit, err := getDeposit(c, s, uri.ID.UUID)
	if err == nil {
		err = access.Scope(s, access.Update, deposit.SourceID)
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	var editable DepositEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	err = models.UpdateDeposit(requestDB(c), &deposit, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	deposit, err = getDeposit(c, s, deposit.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	data := newDeposit(c, s, deposit)
	c.JSON(http.StatusOK, DepositResponse{Data: &data})
}

// @Summary		Delete deposit
// @Description	Deletes a deposit
// @Tags			Deposits
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/deposits/{id} [delete]
func DeleteDeposit(c *gin.Context) {
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

	deposit, err := getDeposit(c, s, uri.ID.UUID)
	if err == nil {
		err = access.Scope(s, access.Delete, deposit.SourceID)
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requestDB(c).Omit(clause.Associations).Delete(&deposit).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
