package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type rankRequest struct {
	Tickers []string `json:"tickers" binding:"required"`
	Capital float64  `json:"capital"`
}

func (server *Server) rank(c *gin.Context) {
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if len(req.Tickers) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": "Error JSON binding, please check your JSON input"})
		return
	}
	if req.Capital < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": "Capital cannot be negative"})
		return
	}

	riskFreeRate := server.rates.RiskFreeRate(c)
	table, failures := server.ranker.ComputeRankedTable(c, req.Tickers, riskFreeRate, req.Capital)

	failed := make([]string, 0, len(failures))
	for symbol := range failures {
		failed = append(failed, symbol)
	}
	sort.Strings(failed)

	c.JSON(http.StatusOK, gin.H{"risk_free_rate": riskFreeRate, "results": table, "failed": failed})
}
