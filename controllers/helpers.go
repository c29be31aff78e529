package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// dateRange reads from/to query params (YYYY-MM-DD), defaulting to the
// trailing 30 days. `to` is exclusive end-of-day.
func dateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if s := c.Query("from"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, err
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, err
		}
		to = t.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func intQuery(c *gin.Context, name string, def int) int {
	if s := c.Query(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
