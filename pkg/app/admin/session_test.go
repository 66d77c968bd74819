package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/jwt"
	jwtMocks "github.com/NeuralTrust/ToolFinder/pkg/infra/jwt/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestSessionCreator_Success(t *testing.T) {
	manager := jwt.NewJwtManager("secret", 15*time.Minute)
	s := NewSessionCreator(quietLogger(), manager, "letmein")

	session, err := s.Create(context.Background(), " letmein ")

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))
	claims, err := manager.DecodeToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.AdminSubject, claims.Subject)
}

func TestSessionCreator_WrongPassword(t *testing.T) {
	manager := jwtMocks.NewManager(t)
	s := NewSessionCreator(quietLogger(), manager, "letmein")

	_, err := s.Create(context.Background(), "letmeout")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	manager.AssertNotCalled(t, "CreateToken", mock.Anything)
}

func TestSessionCreator_NoConfiguredPassword(t *testing.T) {
	s := NewSessionCreator(quietLogger(), jwtMocks.NewManager(t), "")

	_, err := s.Create(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionCreator_SigningError(t *testing.T) {
	manager := jwtMocks.NewManager(t)
	manager.EXPECT().CreateToken(jwt.AdminSubject).Return("", time.Time{}, errors.New("no key"))
	s := NewSessionCreator(quietLogger(), manager, "letmein")

	_, err := s.Create(context.Background(), "letmein")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}
