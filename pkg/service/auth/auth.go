// Package auth implements phone-number login with one-time-code verification
// and JWT issuance. The transfer engine and the query facade trust the
// account id carried by the verified token, never request payload fields.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/davipay/wallet/pkg/config"
	"github.com/davipay/wallet/pkg/domain"
	"github.com/davipay/wallet/pkg/repository"
)

// Service handles login, OTP verification and token issuance.
type Service struct {
	uow             repository.UnitOfWork
	cfg             *config.Auth
	startingBalance decimal.Decimal
	logger          *slog.Logger
}

// New creates an auth Service.
func New(
	uow repository.UnitOfWork,
	cfg *config.Auth,
	wallet *config.Wallet,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:             uow,
		cfg:             cfg,
		startingBalance: wallet.StartingBalance,
		logger:          logger,
	}
}

// Login provisions the account for the given phone number if it does not
// exist yet, crediting the starting balance, and triggers the (pretend) OTP
// dispatch. Existing accounts are left untouched.
func (s *Service) Login(ctx context.Context, phone string) error {
	log := s.logger.With("celular", MaskPhone(phone))

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		_, err = accounts.GetByPhone(ctx, phone)
		if err == nil {
			log.Info("login", "status", "existing_user")
			return nil
		}
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}

		err = accounts.Create(ctx, domain.NewAccount(phone, s.startingBalance))
		if errors.Is(err, domain.ErrDuplicatePhone) {
			// Lost a provisioning race; the account exists now, which is all
			// login promises.
			log.Info("login", "status", "existing_user")
			return nil
		}
		if err != nil {
			return err
		}
		log.Info("login", "status", "created")
		return nil
	})
	if err != nil {
		log.Error("login failed", "error", err)
	}
	return err
}

// VerifyOTP checks the one-time code for the phone number and returns a
// signed bearer token. The code is compared before any store access.
func (s *Service) VerifyOTP(ctx context.Context, phone, otp string) (token string, err error) {
	log := s.logger.With("celular", MaskPhone(phone))

	if otp != s.cfg.OtpCode {
		log.Warn("otp_validation", "status", "failed", "reason", "invalid_otp")
		return "", domain.ErrInvalidOTP
	}

	var account *domain.Account
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		account, err = accounts.GetByPhone(ctx, phone)
		return err
	})
	if err != nil {
		log.Warn("otp_validation", "status", "failed", "error", err)
		return "", err
	}

	token, err = s.GenerateToken(account)
	if err != nil {
		log.Error("otp_validation", "status", "error", "error", err)
		return "", err
	}
	log.Info("otp_validation", "status", "success", "userID", account.ID)
	return token, nil
}

// GenerateToken signs an HS256 JWT carrying the account id and phone number.
func (s *Service) GenerateToken(a *domain.Account) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = a.ID.String()
	claims["celular"] = a.Phone
	claims["exp"] = time.Now().Add(s.cfg.Jwt.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Jwt.Secret))
}

// MaskPhone hides the first six digits of a phone number for logging.
func MaskPhone(phone string) string {
	if len(phone) <= 6 {
		return "******"
	}
	return "******" + phone[6:]
}
