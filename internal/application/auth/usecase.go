package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
	"github.com/academiaskate/academia-api/pkg/jwt"
	"github.com/academiaskate/academia-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro con activación por correo y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	mailer      usecase.Mailer
	jwtCfg      JWTConfig
	baseURL     string
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, mailer usecase.Mailer, jwtCfg JWTConfig, baseURL string, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, mailer: mailer, jwtCfg: jwtCfg, baseURL: baseURL, log: log}
}

// Register crea la cuenta inactiva con un token de activación de un solo uso y
// envía el enlace por correo. Si el envío falla la cuenta queda creada; el
// fallo solo se registra.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	existente, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailDuplicado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	token := uuid.New().String()
	now := time.Now()
	u := &entity.Usuario{
		Nombre:          in.Nombre,
		Email:           in.Email,
		Documento:       in.Documento,
		PasswordHash:    string(hash),
		Activo:          false,
		TokenActivacion: &token,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.usuarioRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	enlace := fmt.Sprintf("%s/api/auth/activar/%s", uc.baseURL, token)
	cuerpo := fmt.Sprintf(
		"<p>Hola %s,</p><p>Activa tu cuenta de la academia haciendo clic en el enlace:</p><p><a href=%q>%s</a></p>",
		u.Nombre, enlace, enlace,
	)
	if err := uc.mailer.Enviar(u.Email, "Activa tu cuenta", cuerpo); err != nil {
		uc.log.Warn().Err(err).Str("email", u.Email).Msg("no se pudo enviar el correo de activación")
	}
	return usecase.ToUsuarioResponse(u), nil
}

// Activar consume el token de un solo uso y marca la cuenta como activa.
func (uc *AuthUseCase) Activar(ctx context.Context, token string) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarioRepo.GetByTokenActivacion(ctx, token)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrTokenActivacion
	}
	if err := uc.usuarioRepo.Activar(ctx, u.ID); err != nil {
		return nil, err
	}
	u.Activo = true
	u.TokenActivacion = nil
	return usecase.ToUsuarioResponse(u), nil
}

// Login verifica credenciales y cuenta activa, y emite el JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *usecase.ToUsuarioResponse(u),
	}, nil
}
