package auth_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/davipay/wallet/pkg/domain"
	"github.com/davipay/wallet/webapi/testutils"
)

type AuthTestSuite struct {
	testutils.AppTestSuite
}

func (s *AuthTestSuite) TestLogin_CreatesAccount() {
	s.AccountRepo.EXPECT().GetByPhone(mock.Anything, "3001234567").
		Return(nil, domain.ErrAccountNotFound)
	s.AccountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	resp := s.MakeRequest("POST", "/login", `{"celular":"3001234567"}`, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	out := s.DecodeSuccess(resp)
	s.Equal("OTP enviado ****56", out.Message)
	data := out.Data.(map[string]any)
	s.Equal("3001234567", data["celular"])
}

func (s *AuthTestSuite) TestLogin_ExistingAccount() {
	existing := domain.NewAccount("3001234567", decimal.NewFromInt(500))
	s.AccountRepo.EXPECT().GetByPhone(mock.Anything, "3001234567").Return(existing, nil)

	resp := s.MakeRequest("POST", "/login", `{"celular":"3001234567"}`, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogin_BadPhone() {
	cases := []string{
		`{"celular":"123"}`,
		`{"celular":"30012345678"}`,
		`{"celular":"300123456a"}`,
		`{}`,
		`not json`,
	}
	for _, body := range cases {
		resp := s.MakeRequest("POST", "/login", body, "")
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)

		out := s.DecodeError(resp)
		s.Equal("VALIDATION_ERROR", out.Error.Code)
		s.Equal("Datos inválidos", out.Error.Message)
	}
	s.AccountRepo.AssertNotCalled(s.T(), "GetByPhone", mock.Anything, mock.Anything)
}

func (s *AuthTestSuite) TestVerifyOTP_Success() {
	account := domain.NewAccount("3001234567", decimal.NewFromInt(100000))
	s.AccountRepo.EXPECT().GetByPhone(mock.Anything, account.Phone).Return(account, nil)

	resp := s.MakeRequest("POST", "/otp", `{"celular":"3001234567","otp":"123456"}`, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	out := s.DecodeSuccess(resp)
	s.Equal("Autenticación exitosa", out.Message)
	data := out.Data.(map[string]any)
	s.Require().NotEmpty(data["token"])
}

func (s *AuthTestSuite) TestVerifyOTP_WrongCode() {
	resp := s.MakeRequest("POST", "/otp", `{"celular":"3001234567","otp":"654321"}`, "")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	out := s.DecodeError(resp)
	s.Equal("INVALID_OTP", out.Error.Code)
	s.Equal("OTP incorrecto", out.Error.Message)
}

func (s *AuthTestSuite) TestVerifyOTP_UnknownPhone() {
	s.AccountRepo.EXPECT().GetByPhone(mock.Anything, "3009999999").
		Return(nil, domain.ErrAccountNotFound)

	resp := s.MakeRequest("POST", "/otp", `{"celular":"3009999999","otp":"123456"}`, "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	out := s.DecodeError(resp)
	s.Equal("USER_NOT_FOUND", out.Error.Code)
	s.Equal("Usuario no encontrado", out.Error.Message)
}

func (s *AuthTestSuite) TestVerifyOTP_BadShape() {
	resp := s.MakeRequest("POST", "/otp", `{"celular":"3001234567","otp":"12"}`, "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	out := s.DecodeError(resp)
	s.Equal("VALIDATION_ERROR", out.Error.Code)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
