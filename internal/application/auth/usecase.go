package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionState estado en memoria asociado a la sesión (la remesa en preparación).
type SessionState interface {
	Clear(session string)
}

// AuthUseCase casos de uso de autenticación: login y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	session  SessionState
	jwtCfg   JWTConfig
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, session SessionState, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, session: session, jwtCfg: jwtCfg, log: log}
}

// SignIn verifica email/password, genera JWT y retorna token + usuario.
// Usuario inexistente y password incorrecto devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.Invalid("email", "es obligatorio")
	}
	if in.Password == "" {
		return nil, domain.Invalid("password", "es obligatorio")
	}
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		uc.log.Warn().Str("email", email).Msg("login: usuario inexistente")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("email", email).Msg("login: password incorrecto")
		return nil, domain.ErrUnauthorized
	}
	expiresAt := time.Now().UTC().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	uc.log.Info().Str("user_id", user.ID).Msg("sesión iniciada")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *toUserResponse(user),
	}, nil
}

// SignOut cierra la sesión: descarta la remesa en preparación del usuario.
// El JWT sigue siendo válido hasta su expiración; el cliente lo descarta.
func (uc *AuthUseCase) SignOut(userID string) {
	uc.session.Clear(userID)
	uc.log.Info().Str("user_id", userID).Msg("sesión cerrada")
}

// HashPassword hash bcrypt para dar de alta usuarios (cmd/seeduser).
func HashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", domain.Invalid("password", "mínimo 6 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
