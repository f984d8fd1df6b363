package rules

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinichours-service/internal/app/config"
	"clinichours-service/internal/app/contracts"
	"clinichours-service/internal/app/models"
	"clinichours-service/internal/pkg/constvars"
	"clinichours-service/internal/pkg/dto/requests"
	"clinichours-service/internal/pkg/dto/responses"
	"clinichours-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ruleUsecase struct {
	RuleRepository  contracts.RuleRepository
	RedisRepository contracts.RedisRepository
	LockerService   contracts.LockerService
	EventPublisher  contracts.RuleEventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	ruleUsecaseInstance contracts.RuleUsecase
	onceRuleUsecase     sync.Once
)

func NewRuleUsecase(
	ruleRepository contracts.RuleRepository,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.RuleEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RuleUsecase {
	onceRuleUsecase.Do(func() {
		instance := &ruleUsecase{
			RuleRepository:  ruleRepository,
			RedisRepository: redisRepository,
			LockerService:   lockerService,
			EventPublisher:  eventPublisher,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
		ruleUsecaseInstance = instance
	})
	return ruleUsecaseInstance
}

// CreateRule validates the candidate, checks it against the stored rule set
// and persists it. Conflict checking and the write happen under a
// repository-wide lock so two concurrent creates cannot both pass the check
// against the same pre-write snapshot.
func (uc *ruleUsecase) CreateRule(ctx context.Context, request *requests.CreateRule) (*responses.Rule, error) {
	rule, err := BuildRuleFromRequest(request)
	if err != nil {
		return nil, err
	}

	lockValue, err := uc.acquireCreateLock(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, constvars.RedisKeyCreateRuleLock, lockValue); unlockErr != nil {
			uc.Log.Error("ruleUsecase.CreateRule error releasing create lock",
				zap.Error(unlockErr),
			)
		}
	}()

	existing, err := uc.RuleRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if conflict := FindConflict(rule, existing); conflict != nil {
		intervalsJSON, marshalErr := json.Marshal(models.ConvertIntervalsIntoResponse(conflict.Intervals))
		if marshalErr != nil {
			return nil, exceptions.ErrCannotMarshalJSON(marshalErr)
		}
		return nil, exceptions.ErrRuleConflict(nil, conflict.ID, string(intervalsJSON))
	}

	rule.ID = uuid.NewString()
	if err := uc.RuleRepository.Insert(ctx, rule); err != nil {
		return nil, err
	}

	uc.invalidateHoursCache(ctx)

	if err := uc.EventPublisher.PublishRuleCreated(ctx, rule); err != nil {
		uc.Log.Error("ruleUsecase.CreateRule error publishing rule created event",
			zap.String(constvars.LoggingRuleIDKey, rule.ID),
			zap.Error(err),
		)
	}

	return rule.ConvertIntoResponse(), nil
}

func (uc *ruleUsecase) ListRules(ctx context.Context) ([]responses.Rule, error) {
	rules, err := uc.RuleRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Rule, 0, len(rules))
	for i := range rules {
		response = append(response, *rules[i].ConvertIntoResponse())
	}
	return response, nil
}

func (uc *ruleUsecase) FindRuleByID(ctx context.Context, ruleID string) (*responses.Rule, error) {
	rule, err := uc.RuleRepository.FindByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, exceptions.ErrRuleNotFound(nil)
	}
	return rule.ConvertIntoResponse(), nil
}

func (uc *ruleUsecase) DeleteRuleByID(ctx context.Context, ruleID string) error {
	deleted, err := uc.RuleRepository.DeleteByID(ctx, ruleID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrRuleNotFound(nil)
	}

	uc.invalidateHoursCache(ctx)

	if err := uc.EventPublisher.PublishRuleDeleted(ctx, ruleID); err != nil {
		uc.Log.Error("ruleUsecase.DeleteRuleByID error publishing rule deleted event",
			zap.String(constvars.LoggingRuleIDKey, ruleID),
			zap.Error(err),
		)
	}

	return nil
}

func (uc *ruleUsecase) acquireCreateLock(ctx context.Context) (string, error) {
	expiration := time.Duration(uc.InternalConfig.App.CreateLockExpirationInSeconds) * time.Second
	retryDelay := time.Duration(uc.InternalConfig.App.CreateLockRetryDelayInMillis) * time.Millisecond

	for attempt := 0; attempt < uc.InternalConfig.App.CreateLockMaxAttempts; attempt++ {
		acquired, lockValue, err := uc.LockerService.TryLock(ctx, constvars.RedisKeyCreateRuleLock, expiration)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}

		select {
		case <-ctx.Done():
			return "", exceptions.ErrServerDeadlineExceeded(ctx.Err())
		case <-time.After(retryDelay):
		}
	}
	return "", exceptions.ErrRuleStoreBusy(fmt.Errorf("lock not acquired after %d attempts", uc.InternalConfig.App.CreateLockMaxAttempts))
}

// invalidateHoursCache drops every cached hours range. Failures are logged
// and swallowed: the cache entries expire on their own TTL.
func (uc *ruleUsecase) invalidateHoursCache(ctx context.Context) {
	keys, err := uc.RedisRepository.GetSetMembers(ctx, constvars.RedisKeyHoursCacheKeySet)
	if err != nil {
		uc.Log.Error("ruleUsecase.invalidateHoursCache error reading cache key set",
			zap.Error(err),
		)
		return
	}
	for _, key := range keys {
		if err := uc.RedisRepository.Delete(ctx, key); err != nil {
			uc.Log.Error("ruleUsecase.invalidateHoursCache error deleting cache entry",
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyHoursCacheKeySet); err != nil {
		uc.Log.Error("ruleUsecase.invalidateHoursCache error deleting cache key set",
			zap.Error(err),
		)
	}
}
