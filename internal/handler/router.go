package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campushub/internal/models"
)

// Handlers bundles every HTTP surface of the portal.
type Handlers struct {
	Shell         *ShellHandler
	Pages         *PageHandler
	Forms         *FormHandler
	Actions       *ActionHandler
	Notifications *NotificationHandler
	Exports       *ExportHandler
	Metrics       *MetricsHandler
	Web           *WebHandler
}

// Register mounts the JSON API under apiPrefix and the rendered portal at the root.
func Register(r *gin.Engine, apiPrefix string, h Handlers) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(apiPrefix)
	api.GET("/shell", h.Shell.Get)
	api.POST("/shell/sidebar/toggle", h.Shell.Toggle)
	api.POST("/shell/sidebar/close", h.Shell.Close)
	api.POST("/shell/navigate", h.Shell.Navigate)
	api.GET("/pages", h.Pages.Get)

	api.POST("/assignments/submissions", h.Forms.SubmitAssignment)
	api.POST("/complaints", h.Forms.RaiseComplaint)
	api.POST("/groups", h.Forms.CreateGroup)
	api.POST("/groups/messages", h.Forms.SendMessage)
	api.POST("/hostel/gatepasses", h.Forms.ApplyGatepass)
	api.POST("/hostel/gym", h.Forms.SubscribeGym)
	api.POST("/leave/applications", h.Forms.ApplyLeave)
	api.POST("/leave/on-duty", h.Forms.ApplyOnDuty)
	api.POST("/wifi/requests", h.Forms.RequestWiFi)

	api.POST("/events/:id/like", h.Actions.LikeEvent)
	api.POST("/events/:id/share", h.Actions.ShareEvent)
	api.POST("/connect/:kind/:id/connect", h.Actions.Connect)
	api.POST("/connect/:kind/:id/message", h.Actions.Message)

	api.GET("/notifications", h.Notifications.List)
	api.GET("/notifications/stream", h.Notifications.Stream)

	api.POST("/marks/reports", h.Exports.MarksReport)
	api.POST("/leave/hall-tickets/:id/download", h.Exports.HallTicket)
	api.POST("/wifi/requests/:id/certificate", h.Exports.WiFiCertificate)
	api.GET("/exports/:token", h.Exports.Download)

	r.StaticFS("/static", StaticFS())
	for _, route := range models.RouteTable() {
		r.GET(route.Path, h.Web.Page)
	}
	r.NoRoute(h.Web.NotFound)

	r.POST("/shell/sidebar/toggle", h.Web.ToggleSidebar)
	r.POST("/shell/sidebar/close", h.Web.CloseSidebar)
	r.POST("/shell/navigate", h.Web.Navigate)

	r.POST("/assignments/submit", h.Web.SubmitAssignment)
	r.POST("/complaints/new", h.Web.RaiseComplaint)
	r.POST("/groups/new", h.Web.CreateGroup)
	r.POST("/groups/messages", h.Web.SendMessage)
	r.POST("/hostel/gatepass", h.Web.ApplyGatepass)
	r.POST("/hostel/gym", h.Web.SubscribeGym)
	r.POST("/leave/apply", h.Web.ApplyLeave)
	r.POST("/leave/on-duty", h.Web.ApplyOnDuty)
	r.POST("/wifi/request", h.Web.RequestWiFi)

	r.POST("/events/:id/like", h.Web.LikeEvent)
	r.POST("/events/:id/share", h.Web.ShareEvent)
	r.POST("/connect/:kind/:id/connect", h.Web.Connect)
	r.POST("/connect/:kind/:id/message", h.Web.Message)

	r.POST("/marks/reports", h.Web.MarksReport)
	r.POST("/leave/hall-tickets/:id/download", h.Web.HallTicket)
	r.POST("/wifi/requests/:id/certificate", h.Web.WiFiCertificate)
}
