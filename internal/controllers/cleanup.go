package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/setoran/backend/internal/models"
	"gorm.io/gorm"
)

// @Summary		Delete everything
// @Description	Permanently deletes all resources
// @Tags			General
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/ [delete]
func Cleanup(c *gin.Context) {
	_, err := admin(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var params struct {
		Confirm string `form:"confirm"`
	}

	err = c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// The order is important here since there are foreign keys to consider!
	resources := []models.Model{
		models.Deposit{},
		models.User{},
		models.Role{},
		models.Allocation{},
		models.Source{},
		models.Category{},
		models.Region{},
	}

	err = models.Transaction(requestDB(c), func(tx *gorm.DB) error {
		for _, model := range resources {
			// Skip the reference checks of the BeforeDelete hooks
			err := tx.Session(&gorm.Session{SkipHooks: true}).Where("true").Delete(&model).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
