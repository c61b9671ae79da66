package account

import (
	"Panel-API/domain"
	"Panel-API/internal/utils"
	"Panel-API/pkg/coin"
	"Panel-API/pkg/panel"
	"Panel-API/pkg/plan"
	"Panel-API/pkg/user"
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2/log"
)

type (
	AccountService interface {
		GetUserInfo(ctx context.Context, userID string) (*domain.UserInfoResponse, error)
	}

	accountService struct {
		userRepository user.UserRepository
		coinRepository coin.CoinRepository
		planRepository plan.PlanRepository
		panelClient    panel.Client
		settings       utils.Settings
	}
)

func NewAccountService(
	userRepository user.UserRepository,
	coinRepository coin.CoinRepository,
	planRepository plan.PlanRepository,
	panelClient panel.Client,
	settings utils.Settings,
) AccountService {
	return &accountService{
		userRepository: userRepository,
		coinRepository: coinRepository,
		planRepository: planRepository,
		panelClient:    panelClient,
		settings:       settings,
	}
}

func (s *accountService) GetUserInfo(ctx context.Context, userID string) (*domain.UserInfoResponse, error) {
	if userID == "" {
		return nil, domain.ErrMissingID
	}

	panelID, found, err := s.userRepository.GetPanelID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrInvalidID
	}

	name, assigned, err := s.planRepository.GetPackage(ctx, userID)
	if err != nil {
		return nil, err
	}
	pkg := domain.PackageInfo{
		Name:      name,
		Resources: plan.ResolvePackage(s.settings, name, assigned),
	}

	userInfo, err := s.panelClient.GetUser(ctx, panelID)
	if err != nil {
		if errors.Is(err, panel.ErrNotFound) {
			log.Errorf("user %s (panel id %s) was not found on the panel", userID, panelID)
			return nil, domain.ErrUserNotOnPanel
		}
		return nil, err
	}

	var coins *float64
	if s.settings.Coins.Enabled {
		balance, err := s.coinRepository.GetUserBalance(ctx, userID)
		if err != nil {
			return nil, err
		}
		coins = &balance
	}

	extra, err := s.planRepository.GetExtra(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.UserInfoResponse{
		Status:   domain.StatusSuccess,
		Coins:    coins,
		Package:  pkg,
		Extra:    extra,
		UserInfo: json.RawMessage(userInfo),
	}, nil
}
