package queries

import (
	"context"

	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"

	"gorm.io/gorm"
)

type GetActorQueryHandler struct {
	db         *gorm.DB
	controller *lifecycle.Controller
}

func NewGetActorQueryHandler(db *gorm.DB, controller *lifecycle.Controller) GetActorQueryHandler {
	return GetActorQueryHandler{db: db, controller: controller}
}

func (h GetActorQueryHandler) Handle(ctx context.Context, query GetActorQuery) (ActorView, error) {
	if err := query.Validate(); err != nil {
		return ActorView{}, err
	}

	requester, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return ActorView{}, err
	}

	target, err := loadActor(ctx, h.db, query.TargetID())
	if err != nil {
		return ActorView{}, err
	}

	if err = h.controller.Authorize(requester, access.UserResource(target), access.View); err != nil {
		return ActorView{}, err
	}
	return newActorView(target), nil
}
