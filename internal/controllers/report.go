package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/setoran/backend/internal/access"
	"github.com/setoran/backend/internal/httputil"
	"github.com/setoran/backend/internal/models"
	"github.com/setoran/backend/internal/report"
	"github.com/setoran/backend/internal/types"
)

// exportFileName is the name of export files without the extension.
const exportFileName = "deposits_report"

var exportContentTypes = map[string]string{
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"csv":  "text/csv; charset=utf-8",
	"json": "application/json; charset=utf-8",
}

// visibleDeposits loads the deposits visible to the session in report order.
func visibleDeposits(c *gin.Context, s access.Session) ([]models.Deposit, error) {
	var deposits []models.Deposit
	err := requestDB(c).
		Scopes(s.Deposits, models.DepositOrder, models.WithSource).
		Find(&deposits).Error

	return deposits, err
}

// buildReport aggregates the visible deposits for the period in the query.
func buildReport(c *gin.Context, query ReportQuery) (report.Report, error) {
	s, err := session(c)
	if err != nil {
		return report.Report{}, err
	}

	filter, err := types.ParsePeriod(query.Month, query.Year)
	if err != nil {
		return report.Report{}, err
	}

	deposits, err := visibleDeposits(c, s)
	if err != nil {
		return report.Report{}, err
	}

	log.Debug().Str("request-id", requestid.Get(c)).Stringer("period", filter).Int("deposits", len(deposits)).Msg("report")
	return report.Aggregate(s, deposits, filter), nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/deposits/report [options]
// @Router			/deposits/years [options]
// @Router			/deposits/summary [options]
// @Router			/deposits/export [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Deposit report
// @Description	Returns the deposits visible to the caller with the amounts every region receives
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			month	query		int	false	"Month to report on"
// @Param			year	query		int	false	"Year to report on"
// @Router			/deposits/report [get]
func GetReport(c *gin.Context) {
	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &e,
		})
		return
	}

	r, err := buildReport(c, query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &e,
		})
		return
	}

	data := newReport(r)
	c.JSON(http.StatusOK, ReportResponse{Data: &data})
}

// @Summary		Deposit years
// @Description	Returns all years the caller can see deposits for
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	YearsResponse
// @Failure		500	{object}	YearsResponse
// @Router			/deposits/years [get]
func GetYears(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearsResponse{
			Error: &e,
		})
		return
	}

	deposits, err := visibleDeposits(c, s)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, YearsResponse{Data: report.Years(s, deposits)})
}

// @Summary		Monthly summary
// @Description	Returns the sum of the deposits the caller can see for every month of a year
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			year	query		int	true	"Year"
// @Router			/deposits/summary [get]
func GetSummary(c *gin.Context) {
	s, err := session(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	if c.Query("year") == "" {
		e := errYearNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &e,
		})
		return
	}

	period, err := types.ParsePeriod("", c.Query("year"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	deposits, err := visibleDeposits(c, s)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	data := make([]MonthTotal, 0, 12)
	for _, t := range report.MonthlyTotals(s, deposits, *period.Year) {
		data = append(data, MonthTotal{Month: t.Month, Amount: t.Amount})
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: data})
}

// @Summary		Export deposits
// @Description	Exports the deposit report as a file. The last row contains the total amount.
// @Tags			Reports
// @Produce		json
// @Produce		text/csv
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400		{object}	ExportResponse
// @Failure		500		{object}	ExportResponse
// @Param			month	query		int		false	"Month to export"
// @Param			year	query		int		false	"Year to export"
// @Param			format	query		string	false	"xlsx, csv or json. Defaults to xlsx"
// @Router			/deposits/export [get]
func GetExport(c *gin.Context) {
	var query ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExportResponse{
			Error: &e,
		})
		return
	}

	format := strings.ToLower(strings.TrimSpace(query.Format))
	if format == "" {
		format = "xlsx"
	}

	contentType, ok := exportContentTypes[format]
	if !ok {
		e := errExportFormat.Error()
		c.JSON(http.StatusBadRequest, ExportResponse{
			Error: &e,
		})
		return
	}

	r, err := buildReport(c, query.ReportQuery)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{
			Error: &e,
		})
		return
	}

	dataset := report.Project(r)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName+"."+format))

	if format == "json" {
		c.JSON(http.StatusOK, ExportResponse{
			Data: &ExportData{
				Header: dataset.Header,
				Rows:   dataset.Rows,
			},
		})
		return
	}

	var b bytes.Buffer
	if format == "csv" {
		err = dataset.WriteCSV(&b)
	} else {
		err = dataset.WriteXLSX(&b)
	}

	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Str("format", format).Msg("export")

		c.Header("Content-Disposition", "")
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, ExportResponse{
			Error: &e,
		})
		return
	}

	c.Data(http.StatusOK, contentType, b.Bytes())
}
