package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rentconnect/rentconnect-api/constant"
	"github.com/rentconnect/rentconnect-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

// UserRepository is the credential store accessor: user rows, stored tokens,
// and the registration pair insert.
type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetToken(ctx context.Context, email string) (string, error)
	SaveToken(ctx context.Context, email, token string) error
	CreateTx(ctx context.Context, tx *sqlx.Tx, user *model.UserEntity) (uint64, error)
	CreateRoleRowTx(ctx context.Context, tx *sqlx.Tx, role string, req *model.RegisterRequest) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	getUserBase       = `SELECT id, firstname, lastname, email, password, token, role, created_at, updated_at FROM users WHERE true`
	getTokenQuery     = `SELECT COALESCE(token, '') FROM users WHERE email = ?`
	saveTokenQuery    = `UPDATE users SET token = ? WHERE email = ?`
	insertUserQuery   = `INSERT INTO users (firstname, lastname, email, password, role, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	insertLandlordRow = `INSERT INTO landlord (first_name, last_name, email, contact_number, age, sex) VALUES (?, ?, ?, ?, ?, ?)`
	insertTenantRow   = `INSERT INTO tenant (first_name, last_name, email, contact_number, age, sex) VALUES (?, ?, ?, ?, ?, ?)`
)

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetToken returns the persisted token for the email, or "" when the user
// does not exist or never logged in.
func (s *SQL) GetToken(ctx context.Context, email string) (string, error) {
	var token string
	if err := s.conn.GetContext(ctx, &token, getTokenQuery, email); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

func (s *SQL) SaveToken(ctx context.Context, email, token string) error {
	_, err := s.conn.ExecContext(ctx, saveTokenQuery, token, email)
	return err
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, user *model.UserEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertUserQuery,
		user.Firstname, user.Lastname, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

// CreateRoleRowTx inserts the role-specific detail row in the same
// transaction as the users row; both persist or neither does.
func (s *SQL) CreateRoleRowTx(ctx context.Context, tx *sqlx.Tx, role string, req *model.RegisterRequest) error {
	query := insertTenantRow
	if role == constant.RoleLandlord {
		query = insertLandlordRow
	}
	_, err := tx.ExecContext(ctx, query,
		req.Firstname, req.Lastname, req.Email, req.ContactNumber, req.Age, req.Sex)
	return err
}
