package routers

import (
	"clinichours-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHoursRoutes(router chi.Router, hoursController *controllers.HoursController) {
	router.Get("/", hoursController.ListAvailableHours)
}
