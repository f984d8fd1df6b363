package contracts

import (
	"context"

	"clinichours-service/internal/app/models"
	"clinichours-service/internal/pkg/dto/requests"
	"clinichours-service/internal/pkg/dto/responses"
)

type RuleUsecase interface {
	CreateRule(ctx context.Context, request *requests.CreateRule) (*responses.Rule, error)
	ListRules(ctx context.Context) ([]responses.Rule, error)
	FindRuleByID(ctx context.Context, ruleID string) (*responses.Rule, error)
	DeleteRuleByID(ctx context.Context, ruleID string) error
}

// RuleRepository abstracts rule record storage. Enumeration order of FindAll
// is not guaranteed. FindByID returns nil without an error when no rule has
// the given id. Insert must fail rather than overwrite an existing id.
type RuleRepository interface {
	FindAll(ctx context.Context) ([]models.Rule, error)
	FindByID(ctx context.Context, ruleID string) (*models.Rule, error)
	Insert(ctx context.Context, rule *models.Rule) error
	DeleteByID(ctx context.Context, ruleID string) (bool, error)
}
