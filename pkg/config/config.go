package config

import (
	"time"

	"github.com/shopspring/decimal"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"1h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
	// OtpCode is the static one-time code accepted by /otp. A real dispatch
	// channel is outside this service; the code is fixed per environment.
	OtpCode string `envconfig:"OTP_CODE" default:"123456"`
}

type Wallet struct {
	// StartingBalance is credited to every account on first login.
	StartingBalance decimal.Decimal `envconfig:"STARTING_BALANCE" default:"100000"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level  int    `envconfig:"LEVEL" default:"0"`
	Format string `envconfig:"FORMAT" default:"json"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	Wallet    *Wallet    `envconfig:"WALLET"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
