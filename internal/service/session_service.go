package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/config"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type profileUpdater interface {
	UpdateMine(ctx context.Context, token string, partial map[string]any) (*models.RawUser, error)
}

type tokenValidator interface {
	ValidateToken(tokenString string) (*models.JWTClaims, error)
}

// ErrRoleMismatch rejects a login whose user payload claims a role the
// access token does not carry.
var ErrRoleMismatch = appErrors.New("ROLE_MISMATCH", http.StatusForbidden, "user role does not match token")

// SessionService owns the signed-in state of portal sessions.
type SessionService struct {
	store     SessionStore
	tokens    tokenValidator
	profiles  profileUpdater
	cfg       config.SessionConfig
	env       string
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(store SessionStore, tokens tokenValidator, profiles profileUpdater, cfg config.SessionConfig, env string, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SessionService{
		store:     store,
		tokens:    tokens,
		profiles:  profiles,
		cfg:       cfg,
		env:       env,
		validator: validate,
		logger:    logger,
	}
}

// Login stores token and the normalized user under a freshly minted session
// id. previousSID, when set, is cleared first. The stored role always comes
// from the token. In development the user is also kept as dev_user.
func (s *SessionService) Login(ctx context.Context, previousSID string, req dto.LoginSessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	var raw models.RawUser
	if err := json.Unmarshal(req.User, &raw); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "user must be a JSON object")
	}
	claims, err := s.tokens.ValidateToken(req.Token)
	if err != nil {
		return nil, err
	}
	user := raw.Normalize()
	if user.Role != models.RoleUnknown && user.Role != claims.Role {
		s.logger.Warn("login rejected: role mismatch",
			zap.String("user_id", user.ID),
			zap.String("claimed_role", string(user.Role)),
			zap.String("token_role", string(claims.Role)),
		)
		return nil, ErrRoleMismatch
	}
	user.Role = claims.Role

	if previousSID != "" {
		if err := s.store.Clear(ctx, previousSID); err != nil {
			s.logger.Warn("failed to clear previous session", zap.Error(err))
		}
	}
	sid := uuid.NewString()
	if err := s.store.Set(ctx, sid, req.Token, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}
	session := &models.Session{ID: sid, Token: req.Token, User: &user}
	if s.env == config.EnvDevelopment {
		if err := s.store.SetDevUser(ctx, sid, user); err != nil {
			s.logger.Warn("failed to persist dev user", zap.Error(err))
		} else {
			dev := user
			session.DevUser = &dev
		}
	}
	s.logger.Info("session started", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return session, nil
}

// Logout clears the session and returns where the browser should go next.
func (s *SessionService) Logout(ctx context.Context, sid string) (string, error) {
	if sid != "" {
		if err := s.store.Clear(ctx, sid); err != nil {
			return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session")
		}
	}
	return s.LoginRedirect(), nil
}

// LoginRedirect is the local login page in development and SSO otherwise.
func (s *SessionService) LoginRedirect() string {
	if s.env == config.EnvProduction {
		return s.cfg.SSOLoginURL
	}
	return s.cfg.LocalLoginPath
}

// Restore loads the session. Missing sessions yield (nil, nil); corrupt
// sessions are cleared and also yield (nil, nil).
func (s *SessionService) Restore(ctx context.Context, sid string) (*models.Session, error) {
	if sid == "" {
		return nil, nil
	}
	session, err := s.store.Get(ctx, sid)
	switch {
	case err == nil:
		return session, nil
	case errors.Is(err, appErrors.ErrSessionNotFound):
		return nil, nil
	case errors.Is(err, ErrCorruptSession):
		s.logger.Warn("discarding malformed session", zap.String("session_id", sid), zap.Error(err))
		if clearErr := s.store.Clear(ctx, sid); clearErr != nil {
			s.logger.Error("failed to clear malformed session", zap.String("session_id", sid), zap.Error(clearErr))
		}
		return nil, nil
	default:
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
}

// UpdateUser sends a partial profile update to the backend and replaces the
// stored user on success. Failures are recorded and returned.
func (s *SessionService) UpdateUser(ctx context.Context, sid string, req dto.UpdateSessionUserRequest) (*models.SessionUser, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	session, err := s.Restore(ctx, sid)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, appErrors.ErrSessionNotFound
	}

	partial := map[string]any{}
	if req.Name != nil {
		partial["name"] = *req.Name
	}
	if req.Email != nil {
		partial["email"] = *req.Email
	}
	if req.Phone != nil {
		partial["phone"] = *req.Phone
	}

	updated, err := s.profiles.UpdateMine(ctx, session.Token, partial)
	if err != nil {
		s.setLastError(ctx, sid, appErrors.FromError(err).Message)
		return nil, err
	}

	user := *session.User
	if updated != nil {
		user = mergeSessionUser(user, updated.Normalize())
	} else {
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
	}
	if err := s.store.Set(ctx, sid, session.Token, user); err != nil {
		s.setLastError(ctx, sid, "failed to persist session")
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}
	if session.LastError != "" {
		s.setLastError(ctx, sid, "")
	}
	return &user, nil
}

// LastError returns the message of the most recent failed update for sid.
func (s *SessionService) LastError(ctx context.Context, sid string) string {
	session, err := s.Restore(ctx, sid)
	if err != nil || session == nil {
		return ""
	}
	return session.LastError
}

func (s *SessionService) setLastError(ctx context.Context, sid, msg string) {
	if err := s.store.SetLastError(ctx, sid, msg); err != nil {
		s.logger.Warn("failed to record session error", zap.String("session_id", sid), zap.Error(err))
	}
}

// mergeSessionUser keeps current values where the backend omitted a field.
func mergeSessionUser(current, next models.SessionUser) models.SessionUser {
	pick := func(a, b string) string {
		if b != "" {
			return b
		}
		return a
	}
	current.ID = pick(current.ID, next.ID)
	current.NYCUID = pick(current.NYCUID, next.NYCUID)
	current.Name = pick(current.Name, next.Name)
	current.Email = pick(current.Email, next.Email)
	current.Role = models.Role(pick(string(current.Role), string(next.Role)))
	current.UserType = pick(current.UserType, next.UserType)
	current.Status = pick(current.Status, next.Status)
	current.DeptCode = pick(current.DeptCode, next.DeptCode)
	current.DeptName = pick(current.DeptName, next.DeptName)
	current.CollegeCode = pick(current.CollegeCode, next.CollegeCode)
	return current
}
