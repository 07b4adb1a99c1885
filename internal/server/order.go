package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
)

func (s *Server) CreatePurchaseOrder(c *gin.Context) {
	var req orderdomain.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.CreatePurchaseOrder(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListPurchaseOrders(c *gin.Context) {
	resp, err := s.orderSvc.ListPurchaseOrders(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetPurchaseOrderByID(c *gin.Context) {
	resp, err := s.orderSvc.GetPurchaseOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdatePurchaseOrder(c *gin.Context) {
	var req orderdomain.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = c.Param("id")

	resp, err := s.orderSvc.UpdatePurchaseOrder(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DeletePurchaseOrder(c *gin.Context) {
	if err := s.orderSvc.DeletePurchaseOrder(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) CreateSalesOrder(c *gin.Context) {
	var req orderdomain.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.CreateSalesOrder(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListSalesOrders(c *gin.Context) {
	resp, err := s.orderSvc.ListSalesOrders(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetSalesOrderByID(c *gin.Context) {
	resp, err := s.orderSvc.GetSalesOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateSalesOrder(c *gin.Context) {
	var req orderdomain.UpdateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = c.Param("id")

	resp, err := s.orderSvc.UpdateSalesOrder(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DeleteSalesOrder(c *gin.Context) {
	if err := s.orderSvc.DeleteSalesOrder(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
