// Package actorrepo maps actors onto the actors table.
package actorrepo

import (
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ActorDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name     string     `gorm:"size:100;not null"`
	Role     string     `gorm:"size:32;not null"`
	BranchID *uuid.UUID `gorm:"type:uuid"`
}

func (ActorDTO) TableName() string {
	return "actors"
}

func fromDomain(a *actor.Actor) ActorDTO {
	return ActorDTO{
		ID:       a.ID().Raw(),
		Name:     a.Name(),
		Role:     a.Role().String(),
		BranchID: kernel.RawPtr(a.BranchID()),
	}
}

func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDPtrFrom(dto.BranchID)
	if err != nil {
		return nil, err
	}
	role, err := actor.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return actor.RestoreActor(id, dto.Name, role, branchID)
}
