package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"paper-letter/dto"
	"paper-letter/services"
)

// DailyReader is the slice of the read service the public API needs.
type DailyReader interface {
	ListFields(ctx context.Context) ([]dto.FieldDTO, error)
	GetDaily(ctx context.Context, slug string, date time.Time) (*dto.DailyPaperDTO, error)
}

// ListFieldsHandler godoc
// @Summary      List fields
// @Description  List every registered subject field
// @Tags         fields
// @Produce      json
// @Success      200  {array}  dto.FieldDTO
// @Router       /fields [get]
func ListFieldsHandler(svc DailyReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := svc.ListFields(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, fields)
	}
}

// GetDailyHandler godoc
// @Summary      Get the daily paper bundle
// @Description  The selected paper plus summaries, quiz and prereading for one field and date
// @Tags         daily
// @Param        field  query  string  true   "Field slug"
// @Param        date   query  string  false  "Date (YYYY-MM-DD, defaults to today UTC)"
// @Produce      json
// @Success      200  {object}  dto.DailyPaperDTO
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /daily [get]
func GetDailyHandler(svc DailyReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Query("field")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "field is required"})
			return
		}

		date := time.Now().UTC()
		if dateStr := c.Query("date"); dateStr != "" {
			parsed, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
				return
			}
			date = parsed
		}

		d, err := svc.GetDaily(c.Request.Context(), slug, date)
		if errors.Is(err, services.ErrFieldNotFound) || errors.Is(err, services.ErrDailyPaperNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, d)
	}
}
