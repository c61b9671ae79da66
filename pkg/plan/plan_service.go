package plan

import (
	"Panel-API/domain"
	"Panel-API/internal/utils"
	"Panel-API/pkg/user"
	"context"

	"github.com/go-playground/validator/v10"
)

type (
	// Suspender is told about every entitlement change. Suspend must not block.
	Suspender interface {
		Suspend(userID string)
	}

	PlanService interface {
		SetPlan(ctx context.Context, req domain.SetPlanRequest) error
		SetResources(ctx context.Context, req domain.SetResourcesRequest) error
	}

	planService struct {
		planRepository PlanRepository
		userRepository user.UserRepository
		suspender      Suspender
		settings       utils.Settings
		validator      *validator.Validate
	}
)

func NewPlanService(
	planRepository PlanRepository,
	userRepository user.UserRepository,
	suspender Suspender,
	settings utils.Settings,
	validator *validator.Validate,
) PlanService {
	return &planService{
		planRepository: planRepository,
		userRepository: userRepository,
		suspender:      suspender,
		settings:       settings,
		validator:      validator,
	}
}

// ResolvePackage returns the quotas of the assigned package, falling back to the catalog default.
// A name missing from the catalog resolves to an all-zero package.
func ResolvePackage(settings utils.Settings, name string, assigned bool) domain.Resources {
	if !assigned {
		name = settings.Packages.Default
	}
	pkg, ok := settings.LookupPackage(name)
	if !ok {
		return domain.Resources{}
	}
	return domain.Resources{RAM: pkg.RAM, Disk: pkg.Disk, CPU: pkg.CPU, Servers: pkg.Servers}
}

func (s *planService) checkUser(ctx context.Context, id *string) error {
	if id == nil {
		return domain.ErrMissingID
	}
	exists, err := s.userRepository.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrInvalidID
	}
	return nil
}

func (s *planService) SetPlan(ctx context.Context, req domain.SetPlanRequest) error {
	if err := s.checkUser(ctx, req.ID); err != nil {
		return err
	}
	userID := *req.ID

	if req.Package == nil {
		if err := s.planRepository.DeletePackage(ctx, userID); err != nil {
			return err
		}
		s.suspender.Suspend(userID)
		return nil
	}

	if !utils.KnownPackage(s.settings, *req.Package) {
		return domain.ErrInvalidPackage
	}
	if err := s.planRepository.SetPackage(ctx, userID, *req.Package); err != nil {
		return err
	}
	s.suspender.Suspend(userID)
	return nil
}

// SetResources overwrites the supplied fields of the user's override and keeps the rest.
func (s *planService) SetResources(ctx context.Context, req domain.SetResourcesRequest) error {
	if err := s.checkUser(ctx, req.ID); err != nil {
		return err
	}
	userID := *req.ID

	if !req.HasAny() {
		return domain.ErrMissingVariables
	}

	extra, err := s.planRepository.GetExtra(ctx, userID)
	if err != nil {
		return err
	}

	fields := []struct {
		value  *float64
		target *float64
		err    error
	}{
		{req.RAM, &extra.RAM, domain.ErrRAMSize},
		{req.Disk, &extra.Disk, domain.ErrDiskSize},
		{req.CPU, &extra.CPU, domain.ErrCPUSize},
		{req.Servers, &extra.Servers, domain.ErrServerSize},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if !utils.ValidQuantity(s.validator, *f.value) {
			return f.err
		}
		*f.target = *f.value
	}

	if extra.IsZero() {
		err = s.planRepository.DeleteExtra(ctx, userID)
	} else {
		err = s.planRepository.SetExtra(ctx, userID, extra)
	}
	if err != nil {
		return err
	}

	s.suspender.Suspend(userID)
	return nil
}
