package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
)

func (s *Server) CreatePayment(c *gin.Context) {
	var req settlementdomain.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.settlementSvc.CreatePayment(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListPayments(c *gin.Context) {
	resp, err := s.settlementSvc.ListPayments(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetPaymentByID(c *gin.Context) {
	resp, err := s.settlementSvc.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) CreateReceipt(c *gin.Context) {
	var req settlementdomain.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.settlementSvc.CreateReceipt(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListReceipts(c *gin.Context) {
	resp, err := s.settlementSvc.ListReceipts(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetReceiptByID(c *gin.Context) {
	resp, err := s.settlementSvc.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DownloadReceiptPDF(c *gin.Context) {
	receipt, err := s.settlementSvc.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.pdfProvider.RenderReceipt(c.Request.Context(), receipt)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	body, err := io.ReadAll(doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="RCT-%d.pdf"`, receipt.ID))
	c.Data(http.StatusOK, "application/pdf", body)
}
