package dto

import "github.com/noah-isme/campushub/internal/models"

// NavItem is a sidebar entry.
type NavItem struct {
	Title  string `json:"title"`
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// ShellView is the persistent chrome around every page.
type ShellView struct {
	Brand           string         `json:"brand"`
	Path            string         `json:"path"`
	Page            models.PageKey `json:"page"`
	Profile         models.Profile `json:"profile"`
	Nav             []NavItem      `json:"nav"`
	SidebarOpen     bool           `json:"sidebarOpen"`
	BackdropVisible bool           `json:"backdropVisible"`
}

// NavigateRequest selects a sidebar entry.
type NavigateRequest struct {
	Path string `form:"path" json:"path"`
}

// PortalView bundles everything needed to draw one screen.
type PortalView struct {
	Shell         *ShellView            `json:"shell"`
	Page          *PageView             `json:"page"`
	Notifications []models.Notification `json:"notifications"`
	Status        int                   `json:"-"`
	CacheHit      bool                  `json:"-"`
}
