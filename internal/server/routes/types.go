package routes

import (
	"thoughtaken/internal/api/handlers"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Video   *handlers.VideoHandler
	Gallery *handlers.GalleryHandler
	Health  *handlers.HealthHandler
}
