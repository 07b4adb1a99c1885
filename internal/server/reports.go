package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ProfitLossReport(c *gin.Context) {
	resp, err := s.reportsSvc.ProfitLoss(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) BalanceSheetReport(c *gin.Context) {
	resp, err := s.reportsSvc.BalanceSheet(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) PartnerLedgerReport(c *gin.Context) {
	resp, err := s.reportsSvc.PartnerLedger(c.Request.Context(), c.Query("contactId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DashboardSummaryReport(c *gin.Context) {
	resp, err := s.reportsSvc.DashboardSummary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) StockAccountReport(c *gin.Context) {
	resp, err := s.reportsSvc.StockAccount(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
