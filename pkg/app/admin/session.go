package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/jwt"
	"github.com/sirupsen/logrus"
)

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

//go:generate mockery --name=SessionCreator --dir=. --output=./mocks --filename=session_creator_mock.go --case=underscore --with-expecter
type SessionCreator interface {
	Create(ctx context.Context, password string) (*Session, error)
}

type sessionCreator struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
	password   []byte
}

// NewSessionCreator trades the shared admin password for a short-lived token.
// An empty configured password disables admin sessions.
func NewSessionCreator(logger *logrus.Logger, jwtManager jwt.Manager, password string) SessionCreator {
	return &sessionCreator{
		logger:     logger,
		jwtManager: jwtManager,
		password:   []byte(password),
	}
}

func (s *sessionCreator) Create(_ context.Context, password string) (*Session, error) {
	if len(s.password) == 0 {
		s.logger.Warn("admin session requested but no admin password is configured")
		return nil, domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(password)), s.password) != 1 {
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.jwtManager.CreateToken(jwt.AdminSubject)
	if err != nil {
		s.logger.WithError(err).Error("failed to sign admin token")
		return nil, fmt.Errorf("failed to create admin session: %w", err)
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}
