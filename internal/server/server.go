package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shivbooks/books/internal/account"
	accountdomain "github.com/shivbooks/books/internal/account/domain"
	"github.com/shivbooks/books/internal/auth"
	"github.com/shivbooks/books/internal/billing"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	"github.com/shivbooks/books/internal/config"
	"github.com/shivbooks/books/internal/contact"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	obslogger "github.com/shivbooks/books/internal/observability/logger"
	obsmetrics "github.com/shivbooks/books/internal/observability/metrics"
	"github.com/shivbooks/books/internal/order"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	"github.com/shivbooks/books/internal/product"
	productdomain "github.com/shivbooks/books/internal/product/domain"
	"github.com/shivbooks/books/internal/providers/pdf"
	"github.com/shivbooks/books/internal/reports"
	reportsdomain "github.com/shivbooks/books/internal/reports/domain"
	"github.com/shivbooks/books/internal/settlement"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
	"github.com/shivbooks/books/internal/tax"
	taxdomain "github.com/shivbooks/books/internal/tax/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	auth.Module,
	contact.Module,
	product.Module,
	tax.Module,
	account.Module,
	order.Module,
	billing.Module,
	settlement.Module,
	reports.Module,
	pdf.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	verifier      auth.TokenVerifier
	contactSvc    contactdomain.Service
	productSvc    productdomain.Service
	taxSvc        taxdomain.Service
	accountSvc    accountdomain.Service
	orderSvc      orderdomain.Service
	billingSvc    billingdomain.Service
	settlementSvc settlementdomain.Service
	reportsSvc    reportsdomain.Service
	pdfProvider   pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	Verifier      auth.TokenVerifier
	ContactSvc    contactdomain.Service
	ProductSvc    productdomain.Service
	TaxSvc        taxdomain.Service
	AccountSvc    accountdomain.Service
	OrderSvc      orderdomain.Service
	BillingSvc    billingdomain.Service
	SettlementSvc settlementdomain.Service
	ReportsSvc    reportsdomain.Service
	PDFProvider   pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		verifier:      p.Verifier,
		contactSvc:    p.ContactSvc,
		productSvc:    p.ProductSvc,
		taxSvc:        p.TaxSvc,
		accountSvc:    p.AccountSvc,
		orderSvc:      p.OrderSvc,
		billingSvc:    p.BillingSvc,
		settlementSvc: p.SettlementSvc,
		reportsSvc:    p.ReportsSvc,
		pdfProvider:   p.PDFProvider,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.TokenRequired())

	// -------- Contacts --------
	api.GET("/contacts", s.ListContacts)
	api.POST("/contacts", s.CreateContact)
	api.GET("/contacts/:id", s.GetContactByID)
	api.PUT("/contacts/:id", s.UpdateContact)
	api.DELETE("/contacts/:id", s.DeleteContact)

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProductByID)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	// -------- Taxes --------
	api.GET("/taxes", s.ListTaxes)
	api.POST("/taxes", s.CreateTax)
	api.GET("/taxes/:id", s.GetTaxByID)
	api.PUT("/taxes/:id", s.UpdateTax)
	api.DELETE("/taxes/:id", s.DeleteTax)

	// -------- Chart of Accounts --------
	api.GET("/accounts", s.ListAccounts)
	api.POST("/accounts", s.CreateAccount)
	api.GET("/accounts/:id", s.GetAccountByID)
	api.PUT("/accounts/:id", s.UpdateAccount)
	api.DELETE("/accounts/:id", s.DeleteAccount)

	// -------- Orders --------
	api.GET("/purchase-orders", s.ListPurchaseOrders)
	api.POST("/purchase-orders", s.CreatePurchaseOrder)
	api.GET("/purchase-orders/:id", s.GetPurchaseOrderByID)
	api.PUT("/purchase-orders/:id", s.UpdatePurchaseOrder)
	api.DELETE("/purchase-orders/:id", s.DeletePurchaseOrder)

	api.GET("/sales-orders", s.ListSalesOrders)
	api.POST("/sales-orders", s.CreateSalesOrder)
	api.GET("/sales-orders/:id", s.GetSalesOrderByID)
	api.PUT("/sales-orders/:id", s.UpdateSalesOrder)
	api.DELETE("/sales-orders/:id", s.DeleteSalesOrder)

	// -------- Billing --------
	api.GET("/vendor-bills", s.ListVendorBills)
	api.POST("/vendor-bills", s.CreateVendorBill)
	api.GET("/vendor-bills/:id", s.GetVendorBillByID)

	api.GET("/customer-invoices", s.ListCustomerInvoices)
	api.POST("/customer-invoices", s.CreateCustomerInvoice)
	api.GET("/customer-invoices/:id", s.GetCustomerInvoiceByID)
	api.GET("/customer-invoices/:id/pdf", s.DownloadCustomerInvoicePDF)

	// -------- Settlements --------
	api.GET("/payments", s.ListPayments)
	api.POST("/payments", s.CreatePayment)
	api.GET("/payments/:id", s.GetPaymentByID)

	api.GET("/receipts", s.ListReceipts)
	api.POST("/receipts", s.CreateReceipt)
	api.GET("/receipts/:id", s.GetReceiptByID)
	api.GET("/receipts/:id/pdf", s.DownloadReceiptPDF)

	// -------- Reports --------
	api.GET("/reports/profit-loss", s.ProfitLossReport)
	api.GET("/reports/balance-sheet", s.BalanceSheetReport)
	api.GET("/reports/partner-ledger", s.PartnerLedgerReport)
	api.GET("/reports/dashboard-summary", s.DashboardSummaryReport)
	api.GET("/reports/stock-account", s.StockAccountReport)
}
