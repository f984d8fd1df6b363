package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"clinichours-service/internal/app/contracts"
	"clinichours-service/internal/pkg/constvars"
	"clinichours-service/internal/pkg/dto/requests"
	"clinichours-service/internal/pkg/exceptions"
	"clinichours-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HoursController struct {
	Log          *zap.Logger
	HoursUsecase contracts.HoursUsecase
}

var (
	hoursControllerInstance *HoursController
	onceHoursController     sync.Once
)

func NewHoursController(logger *zap.Logger, hoursUsecase contracts.HoursUsecase) *HoursController {
	onceHoursController.Do(func() {
		instance := &HoursController{
			Log:          logger,
			HoursUsecase: hoursUsecase,
		}
		hoursControllerInstance = instance
	})
	return hoursControllerInstance
}

func (ctrl *HoursController) ListAvailableHours(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("HoursController.ListAvailableHours requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := &requests.ListAvailableHours{
		Start: r.URL.Query().Get(constvars.URLQueryParamStart),
		End:   r.URL.Query().Get(constvars.URLQueryParamEnd),
	}
	ctrl.Log.Info("HoursController.ListAvailableHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRangeStartKey, request.Start),
		zap.String(constvars.LoggingRangeEndKey, request.End),
	)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("HoursController.ListAvailableHours validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidInterval(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.HoursUsecase.ListAvailableHours(ctx, request)
	if err != nil {
		ctrl.Log.Error("HoursController.ListAvailableHours error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HoursController.ListAvailableHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAvailableHoursSuccessMessage, response)
}
