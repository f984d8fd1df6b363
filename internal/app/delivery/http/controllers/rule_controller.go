package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"clinichours-service/internal/app/contracts"
	"clinichours-service/internal/pkg/constvars"
	"clinichours-service/internal/pkg/dto/requests"
	"clinichours-service/internal/pkg/exceptions"
	"clinichours-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RuleController struct {
	Log         *zap.Logger
	RuleUsecase contracts.RuleUsecase
}

var (
	ruleControllerInstance *RuleController
	onceRuleController     sync.Once
)

func NewRuleController(logger *zap.Logger, ruleUsecase contracts.RuleUsecase) *RuleController {
	onceRuleController.Do(func() {
		instance := &RuleController{
			Log:         logger,
			RuleUsecase: ruleUsecase,
		}
		ruleControllerInstance = instance
	})
	return ruleControllerInstance
}

func (ctrl *RuleController) CreateRule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RuleController.CreateRule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("RuleController.CreateRule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateRule)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("RuleController.CreateRule error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// A missing rule_type is the same client mistake as an unknown one.
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RuleController.CreateRule validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidRuleType(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RuleUsecase.CreateRule(ctx, request)
	if err != nil {
		ctrl.Log.Error("RuleController.CreateRule error from usecase",
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

	ctrl.Log.Info("RuleController.CreateRule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRuleIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRuleSuccessMessage, response)
}

func (ctrl *RuleController) ListRules(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RuleController.ListRules requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("RuleController.ListRules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RuleUsecase.ListRules(ctx)
	if err != nil {
		ctrl.Log.Error("RuleController.ListRules error from usecase",
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

	ctrl.Log.Info("RuleController.ListRules succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListRulesSuccessMessage, response)
}

func (ctrl *RuleController) FindRuleByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RuleController.FindRuleByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ruleID := chi.URLParam(r, constvars.URLParamRuleID)
	ctrl.Log.Info("RuleController.FindRuleByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRuleIDKey, ruleID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RuleUsecase.FindRuleByID(ctx, ruleID)
	if err != nil {
		ctrl.Log.Error("RuleController.FindRuleByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRuleIDKey, ruleID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RuleController.FindRuleByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRuleIDKey, ruleID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindRuleSuccessMessage, response)
}

func (ctrl *RuleController) DeleteRuleByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RuleController.DeleteRuleByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ruleID := chi.URLParam(r, constvars.URLParamRuleID)
	ctrl.Log.Info("RuleController.DeleteRuleByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRuleIDKey, ruleID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.RuleUsecase.DeleteRuleByID(ctx, ruleID)
	if err != nil {
		ctrl.Log.Error("RuleController.DeleteRuleByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRuleIDKey, ruleID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RuleController.DeleteRuleByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRuleIDKey, ruleID),
	)
	message := fmt.Sprintf(constvars.DeleteRuleSuccessMessageFormat, ruleID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, nil)
}
