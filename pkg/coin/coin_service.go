package coin

import (
	"Panel-API/domain"
	"Panel-API/internal/utils"
	"Panel-API/pkg/user"
	"context"

	"github.com/go-playground/validator/v10"
)

type (
	CoinService interface {
		SetCoins(ctx context.Context, req domain.SetCoinsRequest) error
	}

	coinService struct {
		coinRepository CoinRepository
		userRepository user.UserRepository
		validator      *validator.Validate
	}
)

func NewCoinService(coinRepository CoinRepository, userRepository user.UserRepository, validator *validator.Validate) CoinService {
	return &coinService{
		coinRepository: coinRepository,
		userRepository: userRepository,
		validator:      validator,
	}
}

// SetCoins overwrites a user's balance. A zero balance is stored as no balance at all.
func (s *coinService) SetCoins(ctx context.Context, req domain.SetCoinsRequest) error {
	if req.ID == nil {
		return domain.ErrIDNotString
	}

	exists, err := s.userRepository.Exists(ctx, *req.ID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrInvalidID
	}

	if req.Coins == nil {
		return domain.ErrCoinsNotNumber
	}
	coins := *req.Coins
	if !utils.ValidQuantity(s.validator, coins) {
		return domain.ErrCoinsOutOfRange
	}

	if coins == 0 {
		return s.coinRepository.DeleteUserBalance(ctx, *req.ID)
	}
	return s.coinRepository.SetUserBalance(ctx, *req.ID, coins)
}
