package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"easymed-booking/internal/availability"
	"easymed-booking/internal/converter"
	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/domain/entity"
	"easymed-booking/internal/domain/repository"
	"easymed-booking/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrTermsNotAccepted  = errors.New("terms and conditions not accepted")
	ErrTokenIssueFailure = errors.New("failed to issue client token")
)

// AuthUsecase drives the mock session. No credential is checked or stored.
type AuthUsecase interface {
	IssueClientToken(ctx context.Context) (*dto.ClientTokenResponse, error)
	Register(ctx context.Context, clientID uuid.UUID, req *dto.RegisterRequest) (*dto.SessionResponse, error)
	Login(ctx context.Context, clientID uuid.UUID, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, clientID uuid.UUID) error
	GetSession(ctx context.Context, clientID uuid.UUID) (*dto.SessionResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	store      repository.ClientStore
	registry   *availability.Registry
	jwtService *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	store repository.ClientStore,
	registry *availability.Registry,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:        log,
		store:      store,
		registry:   registry,
		jwtService: jwtService,
	}
}

func (u *authUsecase) IssueClientToken(ctx context.Context) (*dto.ClientTokenResponse, error) {
	clientID := uuid.New()
	token, _, err := u.jwtService.GenerateClientToken(clientID)
	if err != nil {
		u.log.Warnf("Failed to generate client token: %+v", err)
		return nil, ErrTokenIssueFailure
	}

	return &dto.ClientTokenResponse{
		ClientID:  clientID,
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetClientExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, clientID uuid.UUID, req *dto.RegisterRequest) (*dto.SessionResponse, error) {
	if !req.AgreeToTerms {
		return nil, ErrTermsNotAccepted
	}

	session := entity.ClientSession{
		UserType:  entity.UserType(req.UserType),
		UserEmail: req.Email,
		UserName:  strings.TrimSpace(req.FirstName + " " + req.LastName),
	}
	if err := u.saveSession(ctx, clientID, session); err != nil {
		return nil, err
	}

	u.log.Infof("Client %s registered as %s", clientID, session.UserType)
	return converter.SessionToResponse(session), nil
}

func (u *authUsecase) Login(ctx context.Context, clientID uuid.UUID, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	session := entity.ClientSession{
		UserType:  entity.UserType(req.UserType),
		UserEmail: req.Email,
		UserName:  entity.MockPatientName,
	}
	if session.UserType == entity.UserTypeDoctor {
		session.UserName = entity.MockDoctorName
	}
	if err := u.saveSession(ctx, clientID, session); err != nil {
		return nil, err
	}

	return converter.SessionToResponse(session), nil
}

// Logout drops every value stored for the client, favorites included, and its availability view.
func (u *authUsecase) Logout(ctx context.Context, clientID uuid.UUID) error {
	if err := u.store.DeletePrefix(ctx, entity.ClientStatePrefix(clientID)); err != nil {
		u.log.Warnf("Failed to clear client state: %+v", err)
		return err
	}
	u.registry.Forget(clientID)
	return nil
}

func (u *authUsecase) GetSession(ctx context.Context, clientID uuid.UUID) (*dto.SessionResponse, error) {
	values := make(map[string]string, 3)
	for _, name := range []string{entity.ClientKeyUserType, entity.ClientKeyUserEmail, entity.ClientKeyUserName} {
		value, found, err := u.store.Get(ctx, entity.ClientStateKey(clientID, name))
		if err != nil {
			u.log.Warnf("Failed to read session value %s: %+v", name, err)
			return nil, err
		}
		if found {
			values[name] = value
		}
	}

	session := entity.ClientSession{
		UserType:  entity.UserType(values[entity.ClientKeyUserType]),
		UserEmail: values[entity.ClientKeyUserEmail],
		UserName:  values[entity.ClientKeyUserName],
	}
	if !session.IsLoggedIn() {
		return nil, ErrNotLoggedIn
	}
	return converter.SessionToResponse(session), nil
}

func (u *authUsecase) saveSession(ctx context.Context, clientID uuid.UUID, session entity.ClientSession) error {
	values := map[string]string{
		entity.ClientKeyUserType:  string(session.UserType),
		entity.ClientKeyUserEmail: session.UserEmail,
		entity.ClientKeyUserName:  session.UserName,
	}
	for name, value := range values {
		if err := u.store.Set(ctx, entity.ClientStateKey(clientID, name), value); err != nil {
			u.log.Warnf("Failed to save session value %s: %+v", name, err)
			return fmt.Errorf("save session: %w", err)
		}
	}
	return nil
}
