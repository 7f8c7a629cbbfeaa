package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"naac_backend/internal/config"
	"naac_backend/internal/model"
	"naac_backend/internal/repository"
	"naac_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and revokes the tokens guarding the submission and
// scoring API. Revoked tokens sit in a redis denylist until they expire.
type AuthService struct {
	cfg   *config.Config
	users *repository.UserRepository
	redis *redis.Client
}

func NewAuthService(cfg *config.Config, users *repository.UserRepository, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, users: users, redis: rdb}
}

type RegisterInput struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=8"`
	Role               string `json:"role"`
	InstitutionName    string `json:"institution_name"`
	InstitutionType    string `json:"institution_type"`
	AISHEID            string `json:"aishe_id"`
	InstitutionalEmail string `json:"institutional_email"`
	PhoneNumber        string `json:"phone_number"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := s.users.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.Duplicatef("an account with this email already exists")
	}

	role := in.Role
	switch role {
	case "":
		role = model.RoleIQAC
	case model.RoleAdmin, model.RoleIQAC, model.RoleViewer:
	default:
		return nil, util.Validationf("unknown role %s", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:               in.Name,
		Email:              email,
		PasswordHash:       string(hash),
		Role:               role,
		InstitutionName:    in.InstitutionName,
		InstitutionType:    in.InstitutionType,
		AISHEID:            in.AISHEID,
		InstitutionalEmail: in.InstitutionalEmail,
		PhoneNumber:        in.PhoneNumber,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(in LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", util.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", util.ErrUnauthorized)
	}

	token, err := util.GenerateJWT(s.cfg, user.ID, user.Role, user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

// Logout denylists the presented token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string, claims *util.Claims) error {
	if s.redis == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, denylistKey(token), "revoked", ttl).Err()
}

// IsRevoked reports whether a token was denylisted by Logout. A nil or
// unreachable redis fails open so auth does not depend on cache uptime.
func (s *AuthService) IsRevoked(ctx context.Context, token string) bool {
	if s.redis == nil {
		return false
	}
	n, err := s.redis.Exists(ctx, denylistKey(token)).Result()
	if err != nil {
		return false
	}
	return n > 0
}

func (s *AuthService) Profile(userID uint) (*model.User, error) {
	return s.users.FindByID(userID)
}

func denylistKey(token string) string {
	return "naac:jwt:denylist:" + token
}
