package controllers

import (
	"net/http"

	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

// ImportWeightCSV accepts a multipart `file` upload, or a raw CSV body
// when no multipart form is present.
func ImportWeightCSV(c *gin.Context) {
	uid := c.GetUint("userID")

	reader := c.Request.Body
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not open upload"})
			return
		}
		defer f.Close()
		reader = f
	}

	res, err := services.ImportWeightCSV(uid, reader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}
