package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	appauth "github.com/rentconnect/rentconnect-api/application/auth"
	"github.com/rentconnect/rentconnect-api/cmd/config"
	redismocks "github.com/rentconnect/rentconnect-api/mocks/repository/redis"
	txmocks "github.com/rentconnect/rentconnect-api/mocks/repository/tx"
	usermocks "github.com/rentconnect/rentconnect-api/mocks/repository/user"
	"github.com/rentconnect/rentconnect-api/model"
	cerr "github.com/rentconnect/rentconnect-api/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "test-secret",
			TokenTTL:  24 * time.Hour,
		},
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthApp_Login(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		txRepo    *txmocks.TxRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name        string
		req         *model.LoginRequest
		mockCall    func(t *testing.T, f fields)
		wantErr     bool
		wantErrMsg  string
		wantErrCode int
	}{
		{
			name: "success: issues and persists signature segment",
			req:  &model.LoginRequest{Email: "a@b.com", Password: "p"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@b.com"}).
					Return(&model.UserEntity{ID: 1, Email: "a@b.com", PasswordHash: hashOf(t, "p")}, nil).
					Once()
				f.userRepo.
					On("SaveToken", mock.Anything, "a@b.com", mock.MatchedBy(func(token string) bool {
						return token != ""
					})).
					Return(nil).
					Once()
				f.redisRepo.
					On("SetToken", mock.Anything, "a@b.com", mock.Anything, 24*time.Hour).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: unknown email leaves token untouched",
			req:  &model.LoginRequest{Email: "ghost@b.com", Password: "p"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "ghost@b.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr:     true,
			wantErrMsg:  "Email does not exist.",
			wantErrCode: 401,
		},
		{
			name: "error: wrong password leaves token untouched",
			req:  &model.LoginRequest{Email: "a@b.com", Password: "wrong"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@b.com"}).
					Return(&model.UserEntity{ID: 1, Email: "a@b.com", PasswordHash: hashOf(t, "p")}, nil).
					Once()
			},
			wantErr:     true,
			wantErrMsg:  "Incorrect password.",
			wantErrCode: 401,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				txRepo:    txmocks.NewTxRepository(t),
				redisRepo: redismocks.NewRepository(t),
			}
			tt.mockCall(t, f)

			app := appauth.NewAuthApp(testConfig(), f.userRepo, f.txRepo, f.redisRepo)
			res, err := app.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
				var ce cerr.CustomError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.wantErrCode, ce.ErrorHTTPCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(1), res.ID)
			assert.Equal(t, "a@b.com", res.Email)
			// Only the signature segment is handed out, never a full compact token.
			assert.NotEmpty(t, res.Token)
			assert.NotContains(t, res.Token, ".")
		})
	}
}

func TestAuthApp_LoginThenAuthorize(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	txRepo := txmocks.NewTxRepository(t)
	redisRepo := redismocks.NewRepository(t)

	var issued string
	userRepo.
		On("Get", mock.Anything, &model.UserFilter{Email: "a@b.com"}).
		Return(&model.UserEntity{ID: 1, Email: "a@b.com", PasswordHash: hashOf(t, "p")}, nil).
		Once()
	userRepo.
		On("SaveToken", mock.Anything, "a@b.com", mock.MatchedBy(func(token string) bool {
			issued = token
			return token != ""
		})).
		Return(nil).
		Once()
	redisRepo.On("SetToken", mock.Anything, "a@b.com", mock.Anything, mock.Anything).Return(nil)

	app := appauth.NewAuthApp(testConfig(), userRepo, txRepo, redisRepo)
	res, err := app.Login(context.Background(), &model.LoginRequest{Email: "a@b.com", Password: "p"})
	require.NoError(t, err)

	// The freshly persisted token authorizes subsequent requests.
	redisRepo.On("GetToken", mock.Anything, "a@b.com").Return("", nil)
	userRepo.On("GetToken", mock.Anything, "a@b.com").Return(issued, nil)

	assert.True(t, app.Authorize(context.Background(), res.Token, "a@b.com"))
	assert.False(t, app.Authorize(context.Background(), "some-other-token", "a@b.com"))
	assert.False(t, app.Authorize(context.Background(), "", "a@b.com"))
}

func TestAuthApp_Authorize(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		redisRepo.On("GetToken", mock.Anything, "a@b.com").Return("tok", nil).Once()

		app := appauth.NewAuthApp(testConfig(), userRepo, txmocks.NewTxRepository(t), redisRepo)
		assert.True(t, app.Authorize(context.Background(), "tok", "a@b.com"))
	})

	t.Run("missing email never authorizes", func(t *testing.T) {
		app := appauth.NewAuthApp(testConfig(), usermocks.NewUserRepository(t), txmocks.NewTxRepository(t), redismocks.NewRepository(t))
		assert.False(t, app.Authorize(context.Background(), "tok", ""))
	})
}

func TestAuthApp_Register(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		txRepo    *txmocks.TxRepository
		redisRepo *redismocks.Repository
	}
	validReq := func() *model.RegisterRequest {
		return &model.RegisterRequest{
			Firstname: "A",
			Lastname:  "B",
			Email:     "a@b.com",
			Password:  "p",
			Role:      "Tenant",
		}
	}
	tests := []struct {
		name        string
		req         *model.RegisterRequest
		mockCall    func(f fields)
		want        *model.RegisterResponse
		wantErr     bool
		wantErrMsg  string
		wantErrCode int
	}{
		{
			name: "success: user and tenant rows in one transaction",
			req:  validReq(),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(u *model.UserEntity) bool {
						return u.Email == "a@b.com" && u.Role == "Tenant" && u.PasswordHash != "" && u.PasswordHash != "p"
					})).
					Return(uint64(11), nil).
					Once()
				f.userRepo.
					On("CreateRoleRowTx", mock.Anything, tx, "Tenant", mock.Anything).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.RegisterResponse{UserID: 11, Role: "Tenant"},
		},
		{
			name: "error: missing field reported in declaration order",
			req: &model.RegisterRequest{
				Firstname: "A",
				Email:     "a@b.com",
				Password:  "p",
				Role:      "Tenant",
			},
			mockCall:    func(f fields) {},
			wantErr:     true,
			wantErrMsg:  "Missing required field: lastname",
			wantErrCode: 400,
		},
		{
			name: "error: invalid role",
			req: &model.RegisterRequest{
				Firstname: "A",
				Lastname:  "B",
				Email:     "a@b.com",
				Password:  "p",
				Role:      "Admin",
			},
			mockCall:    func(f fields) {},
			wantErr:     true,
			wantErrMsg:  "Invalid role. Must be Landlord or Tenant",
			wantErrCode: 400,
		},
		{
			name: "error: duplicate email rolls back and conflicts",
			req:  validReq(),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.
					On("CreateTx", mock.Anything, tx, mock.Anything).
					Return(uint64(0), &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com'"}).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr:     true,
			wantErrMsg:  "Email already exists",
			wantErrCode: 409,
		},
		{
			name: "error: role row failure rolls back the user insert",
			req:  validReq(),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("CreateTx", mock.Anything, tx, mock.Anything).Return(uint64(11), nil).Once()
				f.userRepo.
					On("CreateRoleRowTx", mock.Anything, tx, "Tenant", mock.Anything).
					Return(assert.AnError).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr:     true,
			wantErrMsg:  "Registration failed: " + assert.AnError.Error(),
			wantErrCode: 400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				txRepo:    txmocks.NewTxRepository(t),
				redisRepo: redismocks.NewRepository(t),
			}
			tt.mockCall(f)

			app := appauth.NewAuthApp(testConfig(), f.userRepo, f.txRepo, f.redisRepo)
			got, err := app.Register(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
				var ce cerr.CustomError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.wantErrCode, ce.ErrorHTTPCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
