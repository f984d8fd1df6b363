package hours

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinichours-service/internal/app/contracts"
	"clinichours-service/internal/pkg/constvars"
	"clinichours-service/internal/pkg/datetime"
	"clinichours-service/internal/pkg/dto/requests"
	"clinichours-service/internal/pkg/dto/responses"
	"clinichours-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type hoursUsecase struct {
	RuleRepository  contracts.RuleRepository
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

var (
	hoursUsecaseInstance contracts.HoursUsecase
	onceHoursUsecase     sync.Once
)

func NewHoursUsecase(
	ruleRepository contracts.RuleRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.HoursUsecase {
	onceHoursUsecase.Do(func() {
		instance := &hoursUsecase{
			RuleRepository:  ruleRepository,
			RedisRepository: redisRepository,
			Log:             logger,
		}
		hoursUsecaseInstance = instance
	})
	return hoursUsecaseInstance
}

func (uc *hoursUsecase) ListAvailableHours(ctx context.Context, request *requests.ListAvailableHours) ([]responses.DayAvailability, error) {
	rangeStart, err := datetime.ParseDay(request.Start)
	if err != nil {
		return nil, exceptions.ErrInvalidInterval(err)
	}
	rangeEnd, err := datetime.ParseDay(request.End)
	if err != nil {
		return nil, exceptions.ErrInvalidInterval(err)
	}
	if rangeStart.After(rangeEnd) {
		return nil, exceptions.ErrInvalidRange(nil)
	}

	cacheKey := fmt.Sprintf("%s%s:%s", constvars.RedisKeyHoursCachePrefix, request.Start, request.End)
	if cached := uc.readCachedAvailability(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	rules, err := uc.RuleRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	availability := ExpandAvailableHours(rangeStart, rangeEnd, rules)
	response := make([]responses.DayAvailability, 0, len(availability))
	for i := range availability {
		response = append(response, availability[i].ConvertIntoResponse())
	}

	uc.writeCachedAvailability(ctx, cacheKey, response)

	return response, nil
}

// readCachedAvailability returns nil on any cache miss or failure; the
// caller then recomputes from the repository.
func (uc *hoursUsecase) readCachedAvailability(ctx context.Context, cacheKey string) []responses.DayAvailability {
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Error("hoursUsecase.ListAvailableHours error reading hours cache",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
		return nil
	}
	if cached == "" {
		return nil
	}

	var response []responses.DayAvailability
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		uc.Log.Error("hoursUsecase.ListAvailableHours error decoding cached hours",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
		return nil
	}
	return response
}

// writeCachedAvailability hands the response to the repository as-is;
// Set marshals it once, so the read path decodes plain JSON.
func (uc *hoursUsecase) writeCachedAvailability(ctx context.Context, cacheKey string, response []responses.DayAvailability) {
	expiration := time.Duration(constvars.HoursCacheExpirationInSec) * time.Second
	if err := uc.RedisRepository.Set(ctx, cacheKey, response, expiration); err != nil {
		uc.Log.Error("hoursUsecase.ListAvailableHours error writing hours cache",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
		return
	}
	if err := uc.RedisRepository.AddToSet(ctx, constvars.RedisKeyHoursCacheKeySet, cacheKey); err != nil {
		uc.Log.Error("hoursUsecase.ListAvailableHours error registering hours cache key",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
}
