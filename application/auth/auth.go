package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rentconnect/rentconnect-api/cmd/config"
	"github.com/rentconnect/rentconnect-api/constant"
	"github.com/rentconnect/rentconnect-api/model"
	redisrepo "github.com/rentconnect/rentconnect-api/repository/redis"
	txrepo "github.com/rentconnect/rentconnect-api/repository/tx"
	userrepo "github.com/rentconnect/rentconnect-api/repository/user"
	"github.com/rentconnect/rentconnect-api/utils/errors"
	"github.com/rentconnect/rentconnect-api/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const mysqlDuplicateEntry = 1062

type AuthApp interface {
	Authorize(ctx context.Context, authorization, email string) bool
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
}

type authAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	txRepo    txrepo.TxRepository
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, txRepo txrepo.TxRepository, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{
		config:    config,
		userRepo:  userRepo,
		txRepo:    txRepo,
		redisRepo: redisRepo,
	}
}

// Authorize compares the Authorization header verbatim against the token
// persisted for the X-Auth-User email. The token is the signature segment
// issued at login; no claims are re-derived and no expiry is enforced here,
// matching the single-session scheme this service has always had.
func (s *authAppImpl) Authorize(ctx context.Context, authorization, email string) bool {
	if authorization == "" {
		return false
	}
	return s.storedToken(ctx, email) == authorization
}

func (s *authAppImpl) storedToken(ctx context.Context, email string) string {
	if email == "" {
		return ""
	}

	if cached, err := s.redisRepo.GetToken(ctx, email); err == nil && cached != "" {
		return cached
	}

	token, err := s.userRepo.GetToken(ctx, email)
	if err != nil {
		logger.Error("[Authorize] err userRepo.GetToken", zap.String("error", err.Error()))
		return ""
	}
	if token != "" {
		if err := s.redisRepo.SetToken(ctx, email, token, s.config.Auth.TokenTTL); err != nil {
			logger.Warn("[Authorize] err redisRepo.SetToken", zap.String("error", err.Error()))
		}
	}
	return token
}

func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrEmailNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrIncorrectPassword)
	}

	token, err := s.generateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("[Login] err generateToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Overwrites any previous token: one live session per user.
	if err := s.userRepo.SaveToken(ctx, user.Email, token); err != nil {
		logger.Error("[Login] err userRepo.SaveToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetToken(ctx, user.Email, token, s.config.Auth.TokenTTL); err != nil {
		logger.Warn("[Login] err redisRepo.SetToken", zap.String("error", err.Error()))
	}

	return &model.LoginResponse{
		ID:    user.ID,
		Email: user.Email,
		Token: token,
	}, nil
}

func (s *authAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	if field, ok := firstMissingField(req); !ok {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required field: "+field)
	}

	if _, ok := constant.RoleTable(req.Role); !ok {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid role. Must be Landlord or Tenant")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Register] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	userID, err := s.userRepo.CreateTx(ctx, tx, &model.UserEntity{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
	})
	if err != nil {
		return nil, registerError(err)
	}

	if err := s.userRepo.CreateRoleRowTx(ctx, tx, req.Role, req); err != nil {
		return nil, registerError(err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Register] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.RegisterResponse{
		UserID: userID,
		Role:   req.Role,
	}, nil
}

// registerError maps a unique-constraint violation to Conflict and
// everything else to a 400 carrying the driver message.
func registerError(err error) error {
	var mysqlErr *mysql.MySQLError
	if stderrors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return errors.SetCustomError(constant.ErrConflict)
	}
	logger.Error("[Register] err insert", zap.String("error", err.Error()))
	return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Registration failed: "+err.Error())
}

func firstMissingField(req *model.RegisterRequest) (string, bool) {
	required := []struct {
		name  string
		value string
	}{
		{"firstname", req.Firstname},
		{"lastname", req.Lastname},
		{"email", req.Email},
		{"password", req.Password},
		{"role", req.Role},
	}
	for _, f := range required {
		if f.value == "" {
			return f.name, false
		}
	}
	return "", true
}

// generateToken builds an HS256 compact token and returns only its signature
// segment; that segment is what gets persisted and later compared.
func (s *authAppImpl) generateToken(userID uint64, email string) (string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		Audience:  jwt.ClaimStrings{email},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed compact token")
	}
	return parts[2], nil
}
