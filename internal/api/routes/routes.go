// internal/api/routes/routes.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/api/handlers"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/api/middleware"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/socket"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/store"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/ticket"
)

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route.
func SetupRouter(
	docStore store.DocumentStore,
	ledger *ticket.Ledger,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	// CORS mở cho frontend
	router.Use(cors.Default())
	router.Use(middleware.RequestID())

	// Khởi tạo các handlers
	facilityHandler := &handlers.FacilityHandler{Store: docStore, Hub: wsHub}
	ticketHandler := &handlers.TicketHandler{Ledger: ledger, Hub: wsHub}
	uploadHandler := &handlers.UploadHandler{Store: docStore}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	// Health check và mô tả API
	router.GET("/", handlers.Index)
	// Route cho WebSocket
	router.GET("/ws", webSocketHandler.ServeWs)

	api := router.Group("/api")
	{
		// Facility management (CRUD + query)
		facilities := api.Group("/facilities")
		{
			facilities.GET("", facilityHandler.GetAllFacilities)
			facilities.POST("", facilityHandler.CreateFacility)
			facilities.GET("/stats", facilityHandler.GetStats)
			facilities.GET("/search", facilityHandler.SearchFacilities)
			facilities.GET("/:id", facilityHandler.GetFacilityByID)
			facilities.PUT("/:id", facilityHandler.UpdateFacility)
			facilities.DELETE("/:id", facilityHandler.DeleteFacility)
		}

		// Sub-resource chỉ đọc của facility
		api.GET("/contacts/:id", facilityHandler.GetContacts)
		api.GET("/emergency/:id", facilityHandler.GetEmergencyProcedures)

		// Import / export CSV
		api.POST("/upload/csv", uploadHandler.UploadCSV)
		api.GET("/template", uploadHandler.GetTemplate)
		api.GET("/export/csv", uploadHandler.ExportCSV)
		api.GET("/export/contacts", uploadHandler.ExportContacts)

		// Ticket bảo trì
		tickets := api.Group("/tickets")
		{
			tickets.GET("", ticketHandler.GetTickets)
			tickets.POST("", ticketHandler.CreateTicket)
			tickets.GET("/stats", ticketHandler.GetTicketStats)
			tickets.GET("/:id", ticketHandler.GetTicket)
			tickets.PUT("/:id", ticketHandler.UpdateTicket)
		}
	}

	return router
}
