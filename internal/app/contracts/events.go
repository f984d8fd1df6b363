package contracts

import (
	"context"

	"clinichours-service/internal/app/models"
)

// RuleEventPublisher announces rule lifecycle changes so downstream
// consumers (cache warmers, audit trails) can react. Publishing is
// best-effort; the mutation that triggered the event never depends on it.
type RuleEventPublisher interface {
	PublishRuleCreated(ctx context.Context, rule *models.Rule) error
	PublishRuleDeleted(ctx context.Context, ruleID string) error
}
