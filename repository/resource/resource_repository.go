package resource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rentconnect/rentconnect-api/constant"
	"github.com/rentconnect/rentconnect-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

// ResourceRepository is the generic CRUD executor. Statements are assembled
// from the entity schema's column allowlists; the field maps supply values
// only, never identifiers.
type ResourceRepository interface {
	Exists(ctx context.Context, entity constant.Entity, id uint64) (bool, error)
	ExistsRef(ctx context.Context, refTable string, id uint64) (bool, error)
	Insert(ctx context.Context, entity constant.Entity, fields map[string]any) (uint64, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, entity constant.Entity, fields map[string]any) (uint64, error)
	Update(ctx context.Context, entity constant.Entity, id uint64, fields map[string]any) error
	Delete(ctx context.Context, entity constant.Entity, id uint64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, entity constant.Entity, id uint64) error
	List(ctx context.Context, entity constant.Entity, id *uint64) (any, int, error)

	GetApartmentTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ApartmentRow, error)
	LockApartmentTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ApartmentState, error)
	SetApartmentAvailabilityTx(ctx context.Context, tx *sqlx.Tx, id uint64, availability string) error
	GetLeaseTerms(ctx context.Context, id uint64) (*model.LeaseTerms, error)
	GetLeaseTermsTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.LeaseTerms, error)
}

func NewResourceRepository(conn *sqlx.DB) ResourceRepository {
	return &SQL{conn: conn}
}

const (
	listLandlordQuery = `SELECT id, first_name, last_name, middle_initial, email, contact_number, age, sex FROM landlord`
	listTenantQuery   = `SELECT id, first_name, last_name, middle_initial, email, contact_number, age, sex FROM tenant`

	listApartmentQuery = `SELECT a.id, a.name, a.location, a.price, a.availability, a.ratings, a.landlord_id,
		CONCAT(l.first_name, ' ', l.last_name) AS landlord_name
		FROM apartment a
		JOIN landlord l ON a.landlord_id = l.id`

	listLeaseQuery = `SELECT ls.id, ls.tenant_id, ls.apartment_id, ls.start_date, ls.end_date, ls.monthly_rent,
		CONCAT(t.first_name, ' ', t.last_name) AS tenant_name,
		a.name AS apartment_name
		FROM lease ls
		JOIN tenant t ON ls.tenant_id = t.id
		JOIN apartment a ON ls.apartment_id = a.id`

	listPaymentQuery = `SELECT p.id, p.lease_id, p.payment_date, p.amount_paid, p.payment_method, p.status,
		CONCAT(t.first_name, ' ', t.last_name) AS tenant_name
		FROM payment p
		JOIN lease ls ON p.lease_id = ls.id
		JOIN tenant t ON ls.tenant_id = t.id`

	listCommunicationQuery = `SELECT c.id, c.sender_id, c.receiver_id, c.message, c.is_read,
		CONCAT(s.first_name, ' ', s.last_name) AS sender_name,
		CONCAT(r.first_name, ' ', r.last_name) AS receiver_name
		FROM communication c
		JOIN tenant s ON c.sender_id = s.id
		JOIN landlord r ON c.receiver_id = r.id`

	listIssueQuery = `SELECT i.id, i.tenant_id, i.apartment_id, i.description, i.status,
		CONCAT(t.first_name, ' ', t.last_name) AS tenant_name,
		a.name AS apartment_name
		FROM issue i
		JOIN tenant t ON i.tenant_id = t.id
		JOIN apartment a ON i.apartment_id = a.id`

	getApartmentQuery    = `SELECT id, name, location, price, availability, ratings, landlord_id, '' AS landlord_name FROM apartment WHERE id = ?`
	lockApartmentQuery   = `SELECT id, availability FROM apartment WHERE id = ? FOR UPDATE`
	setAvailabilityQuery = `UPDATE apartment SET availability = ? WHERE id = ?`
	getLeaseTermsQuery   = `SELECT id, apartment_id, end_date, monthly_rent FROM lease WHERE id = ?`
)

// listAliases maps each entity to the alias its list query filters on.
var listAliases = map[constant.Entity]string{
	constant.EntityLandlord:      "id",
	constant.EntityTenant:        "id",
	constant.EntityApartment:     "a.id",
	constant.EntityLease:         "ls.id",
	constant.EntityPayment:       "p.id",
	constant.EntityCommunication: "c.id",
	constant.EntityIssue:         "i.id",
}

func (s *SQL) Exists(ctx context.Context, entity constant.Entity, id uint64) (bool, error) {
	return s.existsIn(ctx, constant.EntitySchemas[entity].Table, id)
}

func (s *SQL) ExistsRef(ctx context.Context, refTable string, id uint64) (bool, error) {
	return s.existsIn(ctx, refTable, id)
}

func (s *SQL) existsIn(ctx context.Context, table string, id uint64) (bool, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id = ?", table)
	if err := s.conn.GetContext(ctx, &count, query, id); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQL) Insert(ctx context.Context, entity constant.Entity, fields map[string]any) (uint64, error) {
	return insertWith(ctx, s.conn, entity, fields)
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, entity constant.Entity, fields map[string]any) (uint64, error) {
	return insertWith(ctx, tx, entity, fields)
}

func insertWith(ctx context.Context, ec sqlx.ExecerContext, entity constant.Entity, fields map[string]any) (uint64, error) {
	schema := constant.EntitySchemas[entity]

	columns := make([]string, 0, len(schema.Creatable))
	args := make([]any, 0, len(schema.Creatable))
	for _, col := range schema.Creatable {
		if v, ok := fields[col]; ok {
			columns = append(columns, col)
			args = append(args, v)
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		schema.Table, strings.Join(columns, ", "), placeholders(len(columns)))

	result, err := ec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, entity constant.Entity, id uint64, fields map[string]any) error {
	schema := constant.EntitySchemas[entity]

	sets := make([]string, 0, len(schema.Patchable))
	args := make([]any, 0, len(schema.Patchable)+1)
	for _, col := range schema.Patchable {
		if v, ok := fields[col]; ok {
			sets = append(sets, col+" = ?")
			args = append(args, v)
		}
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", schema.Table, strings.Join(sets, ", "))
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, entity constant.Entity, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", constant.EntitySchemas[entity].Table)
	_, err := s.conn.ExecContext(ctx, query, id)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, entity constant.Entity, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", constant.EntitySchemas[entity].Table)
	_, err := tx.ExecContext(ctx, query, id)
	return err
}

// List returns all rows for the entity, or the single row when id is set.
// The second return is the row count so callers can distinguish empty
// results without type-switching on the slice.
func (s *SQL) List(ctx context.Context, entity constant.Entity, id *uint64) (any, int, error) {
	query, args := listQuery(entity), []any(nil)
	if id != nil {
		query += " WHERE " + listAliases[entity] + " = ?"
		args = append(args, *id)
	}

	switch entity {
	case constant.EntityLandlord:
		return selectRows[model.LandlordRow](ctx, s.conn, query, args)
	case constant.EntityTenant:
		return selectRows[model.TenantRow](ctx, s.conn, query, args)
	case constant.EntityApartment:
		return selectRows[model.ApartmentRow](ctx, s.conn, query, args)
	case constant.EntityLease:
		return selectRows[model.LeaseRow](ctx, s.conn, query, args)
	case constant.EntityPayment:
		return selectRows[model.PaymentRow](ctx, s.conn, query, args)
	case constant.EntityCommunication:
		return selectRows[model.CommunicationRow](ctx, s.conn, query, args)
	case constant.EntityIssue:
		return selectRows[model.IssueRow](ctx, s.conn, query, args)
	}
	return nil, 0, fmt.Errorf("unknown entity %q", entity)
}

func listQuery(entity constant.Entity) string {
	switch entity {
	case constant.EntityLandlord:
		return listLandlordQuery
	case constant.EntityTenant:
		return listTenantQuery
	case constant.EntityApartment:
		return listApartmentQuery
	case constant.EntityLease:
		return listLeaseQuery
	case constant.EntityPayment:
		return listPaymentQuery
	case constant.EntityCommunication:
		return listCommunicationQuery
	case constant.EntityIssue:
		return listIssueQuery
	}
	return ""
}

func selectRows[T any](ctx context.Context, conn *sqlx.DB, query string, args []any) (any, int, error) {
	rows := []T{}
	if err := conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return rows, len(rows), nil
}

func (s *SQL) GetApartmentTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ApartmentRow, error) {
	var row model.ApartmentRow
	if err := tx.GetContext(ctx, &row, getApartmentQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// LockApartmentTx reads the apartment row FOR UPDATE so the availability
// check and the lease insert that follows are covered by one row lock.
func (s *SQL) LockApartmentTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ApartmentState, error) {
	var state model.ApartmentState
	if err := tx.GetContext(ctx, &state, lockApartmentQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (s *SQL) SetApartmentAvailabilityTx(ctx context.Context, tx *sqlx.Tx, id uint64, availability string) error {
	_, err := tx.ExecContext(ctx, setAvailabilityQuery, availability, id)
	return err
}

func (s *SQL) GetLeaseTerms(ctx context.Context, id uint64) (*model.LeaseTerms, error) {
	var terms model.LeaseTerms
	if err := s.conn.GetContext(ctx, &terms, getLeaseTermsQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &terms, nil
}

func (s *SQL) GetLeaseTermsTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.LeaseTerms, error) {
	var terms model.LeaseTerms
	if err := tx.GetContext(ctx, &terms, getLeaseTermsQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &terms, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
