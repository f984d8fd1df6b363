package contracts

import (
	"context"

	"clinichours-service/internal/pkg/dto/requests"
	"clinichours-service/internal/pkg/dto/responses"
)

type HoursUsecase interface {
	ListAvailableHours(ctx context.Context, request *requests.ListAvailableHours) ([]responses.DayAvailability, error)
}
