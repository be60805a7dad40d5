// Package handler holds the Gin handlers for the matching API. Handlers only
// bind/validate requests and map service errors onto the response envelope;
// all matching semantics live in internal/service.
package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/agent-match/internal/model"
	"github.com/d60-Lab/agent-match/internal/repository"
	"github.com/d60-Lab/agent-match/internal/service"
)

// Handler carries the service dependencies of every endpoint.
type Handler struct {
	recommendSvc service.RecommendService
	publishSvc   service.PublishService
	actionSvc    service.ActionService
	routerSvc    service.RouterService
	reply        service.ReplyGenerator
	board        repository.BoardRepository
	actions      repository.ActionRepository
}

// New wires the handler set and registers custom binding validators.
func New(
	recommendSvc service.RecommendService,
	publishSvc service.PublishService,
	actionSvc service.ActionService,
	routerSvc service.RouterService,
	reply service.ReplyGenerator,
	board repository.BoardRepository,
	actions repository.ActionRepository,
) *Handler {
	registerValidators()
	return &Handler{
		recommendSvc: recommendSvc,
		publishSvc:   publishSvc,
		actionSvc:    actionSvc,
		routerSvc:    routerSvc,
		reply:        reply,
		board:        board,
		actions:      actions,
	}
}

// registerValidators adds the "matchmode" rule used by request bindings.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("matchmode", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", model.ModeFind, model.ModePublish:
			return true
		}
		return false
	})
}
