package webapi_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/davipay/wallet/webapi/testutils"
)

type AppTestSuite struct {
	testutils.AppTestSuite
}

func (s *AppTestSuite) TestHealth() {
	resp := s.MakeRequest("GET", "/health", "", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	out := s.DecodeSuccess(resp)
	s.Equal("The service is healthy", out.Message)
	data := out.Data.(map[string]any)
	s.Equal("ok", data["status"])
}

func (s *AppTestSuite) TestMetrics() {
	resp := s.MakeRequest("GET", "/metrics", "", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *AppTestSuite) TestUnknownRoute() {
	resp := s.MakeRequest("GET", "/nope", "", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	out := s.DecodeError(resp)
	s.Equal("NOT_FOUND", out.Error.Code)
}

func (s *AppTestSuite) TestMethodNotAllowed() {
	resp := s.MakeRequest("POST", "/health", "", "")
	s.Equal(fiber.StatusMethodNotAllowed, resp.StatusCode)

	out := s.DecodeError(resp)
	s.Equal("METHOD_NOT_ALLOWED", out.Error.Code)
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}
