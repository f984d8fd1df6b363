package routers

import (
	"fmt"
	"time"

	"clinichours-service/internal/app/config"
	"clinichours-service/internal/app/delivery/http/controllers"
	"clinichours-service/internal/app/delivery/http/middlewares"
	"clinichours-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRuleRoutes(router chi.Router, internalConfig *config.InternalConfig, ruleController *controllers.RuleController) {
	createLimiter := middlewares.NewRateLimiter(
		internalConfig.App.CreateRuleMaxRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.CreateRuleBlockTimeInMinutes)*time.Minute,
	)

	router.With(createLimiter.Limit).Post("/", ruleController.CreateRule)
	router.Get("/", ruleController.ListRules)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamRuleID), ruleController.FindRuleByID)
	router.Delete(fmt.Sprintf("/{%s}", constvars.URLParamRuleID), ruleController.DeleteRuleByID)
}
