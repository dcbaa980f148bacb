package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, p Punch) (Punch, error)
	GetByID(ctx context.Context, id string, companyID string) (Punch, error)
	List(ctx context.Context, companyID string, filter PunchFilter) ([]Punch, int64, error)
	ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]Punch, error)
	Update(ctx context.Context, id string, companyID string, req UpdatePunchRequest) (Punch, error)
	Delete(ctx context.Context, id string, companyID string) error
	DeleteByEmployeeAndRange(ctx context.Context, employeeID string, companyID string, from, to time.Time) error
}

type PunchService interface {
	Create(ctx context.Context, req CreatePunchRequest) (PunchResponse, error)
	GetByID(ctx context.Context, id string) (PunchResponse, error)
	List(ctx context.Context, filter PunchFilter) (ListPunchResponse, error)
	Update(ctx context.Context, req UpdatePunchRequest) (PunchResponse, error)
	Delete(ctx context.Context, id string) error
	BatchReplace(ctx context.Context, req BatchReplaceRequest) ([]PunchResponse, error)
}
