package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
)

func (s *Server) CreateVendorBill(c *gin.Context) {
	var req billingdomain.CreateVendorBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.billingSvc.CreateVendorBill(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListVendorBills(c *gin.Context) {
	resp, err := s.billingSvc.ListVendorBills(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetVendorBillByID(c *gin.Context) {
	resp, err := s.billingSvc.GetVendorBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) CreateCustomerInvoice(c *gin.Context) {
	var req billingdomain.CreateCustomerInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.billingSvc.CreateCustomerInvoice(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListCustomerInvoices(c *gin.Context) {
	resp, err := s.billingSvc.ListCustomerInvoices(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetCustomerInvoiceByID(c *gin.Context) {
	resp, err := s.billingSvc.GetCustomerInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DownloadCustomerInvoicePDF(c *gin.Context) {
	invoice, err := s.billingSvc.GetCustomerInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.pdfProvider.RenderInvoice(c.Request.Context(), invoice)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	body, err := io.ReadAll(doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="INV-%d.pdf"`, invoice.ID))
	c.Data(http.StatusOK, "application/pdf", body)
}
