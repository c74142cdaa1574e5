package controller

import (
	"gig-marketplace-api/internal/notifier"
	"gig-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, hub *notifier.Hub, jwtSecret []byte) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	auth := newAuthMiddleware(jwtSecret)

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, validate, jwtSecret, auth)
	newGigRoutesHandler(api, services, validate, auth)
	newBidRoutesHandler(api, services, validate, auth)
	newWsRoutesHandler(api, hub, auth)
}
