// Package testutils builds a fully wired test app over mocked persistence, so
// handler tests can drive the real routing, middleware and envelope code
// without a database.
package testutils

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/davipay/wallet/internal/fixtures/mocks"
	"github.com/davipay/wallet/pkg/config"
	"github.com/davipay/wallet/pkg/domain"
	"github.com/davipay/wallet/pkg/repository"
	"github.com/davipay/wallet/webapi"
	"github.com/davipay/wallet/webapi/common"
)

const testJwtSecret = "test-secret"

// AppTestSuite wires the real Fiber app over mocked repositories.
type AppTestSuite struct {
	suite.Suite
	App          *fiber.App
	Cfg          *config.App
	UOW          *mocks.MockUnitOfWork
	AccountRepo  *mocks.MockAccountRepository
	TransferRepo *mocks.MockTransferRepository
}

// SetupTest builds a fresh app and fresh mocks for every test.
func (s *AppTestSuite) SetupTest() {
	s.AccountRepo = mocks.NewMockAccountRepository(s.T())
	s.TransferRepo = mocks.NewMockTransferRepository(s.T())
	s.UOW = mocks.NewMockUnitOfWork(s.T())
	s.UOW.EXPECT().AccountRepository().Return(s.AccountRepo, nil).Maybe()
	s.UOW.EXPECT().TransferRepository().Return(s.TransferRepo, nil).Maybe()
	s.UOW.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(s.UOW)
		},
	).Maybe()

	s.Cfg = &config.App{
		Env:    "test",
		Server: &config.Server{Host: "localhost", Port: 3000},
		Log:    &config.Log{},
		DB:     &config.DB{},
		Auth: &config.Auth{
			Jwt:     &config.Jwt{Secret: testJwtSecret, Expiry: time.Hour},
			OtpCode: "123456",
		},
		Wallet:    &config.Wallet{StartingBalance: decimal.NewFromInt(100000)},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
	s.App = webapi.New(s.Cfg, s.UOW, slog.Default())
}

// MakeRequest performs a request against the app, optionally with a bearer
// token, and returns the response.
func (s *AppTestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// SignedToken issues a token for the account the way the auth service does.
func (s *AppTestSuite) SignedToken(account *domain.Account) string {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = account.ID.String()
	claims["celular"] = account.Phone
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	signed, err := token.SignedString([]byte(testJwtSecret))
	s.Require().NoError(err)
	return signed
}

// DecodeSuccess decodes the success envelope from the response body.
func (s *AppTestSuite) DecodeSuccess(resp *http.Response) common.Response {
	defer resp.Body.Close() //nolint: errcheck
	var out common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	s.Require().True(out.Success)
	return out
}

// DecodeError decodes the failure envelope from the response body.
func (s *AppTestSuite) DecodeError(resp *http.Response) common.ErrorResponse {
	defer resp.Body.Close() //nolint: errcheck
	var out common.ErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	s.Require().False(out.Success)
	return out
}
