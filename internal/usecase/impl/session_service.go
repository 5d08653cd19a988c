package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"foodcart/config"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/service"
	"foodcart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface for panel managers.
type sessionService struct {
	managers     []config.ManagerAccount
	hasher       service.PasswordHasher
	tokenService service.TokenService
	tokenTTL     time.Duration
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := &sessionService{
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
	if params.Config != nil {
		srv.managers = params.Config.Managers
		if params.Config.ManagerAuth != nil {
			srv.tokenTTL = params.Config.ManagerAuth.AccessTokenTTL
		}
	}

	return srv
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// Login checks the credentials against the configured manager accounts and
// issues an access token carrying the manager role.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, ok := srv.findAccount(input.Username)
	if !ok || !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Manager login rejected", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	roles := entity.Roles{entity.RoleManager}.ToStrings()
	token, err := srv.tokenService.GenerateAccessToken(account.Username, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Manager logged in", slog.String("username", account.Username))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(srv.tokenTTL.Seconds()),
		Roles:       roles,
	}, nil
}

func (srv *sessionService) findAccount(username string) (config.ManagerAccount, bool) {
	for _, account := range srv.managers {
		if subtle.ConstantTimeCompare([]byte(account.Username), []byte(username)) == 1 {
			return account, true
		}
	}

	return config.ManagerAccount{}, false
}
