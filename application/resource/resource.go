package resource

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rentconnect/rentconnect-api/constant"
	auditrepo "github.com/rentconnect/rentconnect-api/repository/audit"
	resourcerepo "github.com/rentconnect/rentconnect-api/repository/resource"
	txrepo "github.com/rentconnect/rentconnect-api/repository/tx"
	"github.com/rentconnect/rentconnect-api/thirdparty/rabbitmq"
	utilscontext "github.com/rentconnect/rentconnect-api/utils/context"
	"github.com/rentconnect/rentconnect-api/utils/errors"
	"github.com/rentconnect/rentconnect-api/utils/logger"
	"go.uber.org/zap"
)

// ResourceApp validates and executes the generic CRUD operations for the
// seven entities. Each method returns the response payload and the
// human-readable message for the envelope.
type ResourceApp interface {
	Create(ctx context.Context, entity constant.Entity, body map[string]any) (any, string, error)
	Get(ctx context.Context, entity constant.Entity, id *uint64) (any, string, error)
	Patch(ctx context.Context, entity constant.Entity, id uint64, body map[string]any) (string, error)
	Delete(ctx context.Context, entity constant.Entity, id uint64) (string, error)
	ReleaseLease(ctx context.Context, leaseID uint64) (string, error)
}

type resourceAppImpl struct {
	resourceRepo resourcerepo.ResourceRepository
	txRepo       txrepo.TxRepository
	auditRepo    auditrepo.AuditRepository
	publisher    *rabbitmq.Publisher
}

func NewResourceApp(resourceRepo resourcerepo.ResourceRepository, txRepo txrepo.TxRepository, auditRepo auditrepo.AuditRepository, publisher *rabbitmq.Publisher) ResourceApp {
	return &resourceAppImpl{
		resourceRepo: resourceRepo,
		txRepo:       txRepo,
		auditRepo:    auditRepo,
		publisher:    publisher,
	}
}

var createdMessage = map[constant.Entity]string{
	constant.EntityCommunication: "Communication sent successfully",
	constant.EntityIssue:         "Issue reported successfully",
}

const dateLayout = "2006-01-02"

func (s *resourceAppImpl) Create(ctx context.Context, entity constant.Entity, body map[string]any) (any, string, error) {
	schema := constant.EntitySchemas[entity]

	if err := s.validateCreate(ctx, entity, schema, body); err != nil {
		return nil, "", err
	}

	for col, def := range schema.Defaults {
		if _, ok := body[col]; !ok {
			body[col] = def
		}
	}

	var payload any
	var err error
	switch entity {
	case constant.EntityLease:
		payload, err = s.createLease(ctx, body)
	case constant.EntityApartment:
		payload, err = s.createApartment(ctx, body)
	case constant.EntityPayment:
		payload, err = s.createPayment(ctx, body)
	case constant.EntityLandlord, constant.EntityTenant:
		payload, err = s.createPlain(ctx, entity, body)
	default:
		payload, err = s.createInTx(ctx, entity, body)
	}
	if err != nil {
		return nil, "", err
	}

	message, ok := createdMessage[entity]
	if !ok {
		message = schema.Label + " created successfully"
	}
	return payload, message, nil
}

// validateCreate applies the schema policy in order: required fields, enum
// constraints, foreign-key existence, then the entity-specific rules. It
// fails before anything is written.
func (s *resourceAppImpl) validateCreate(ctx context.Context, entity constant.Entity, schema constant.EntitySchema, body map[string]any) error {
	for _, field := range schema.Required {
		if missingField(entity, body, field) {
			prefix := "Missing required field: "
			if entity == constant.EntityCommunication {
				prefix = "Missing or empty required field: "
			}
			return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, prefix+field)
		}
	}

	for _, col := range schema.Creatable {
		rule, ok := schema.Enums[col]
		if !ok {
			continue
		}
		v, ok := body[col]
		if !ok {
			continue
		}
		if !containsString(rule.Values, fmt.Sprintf("%v", v)) {
			return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, rule.Message)
		}
	}

	for _, fk := range schema.ForeignKeys {
		id, ok := asID(body[fk.Column])
		if !ok {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, fk.NotFound)
		}
		exists, err := s.resourceRepo.ExistsRef(ctx, fk.RefTable, id)
		if err != nil {
			logger.Error("[Create] err resourceRepo.ExistsRef", zap.String("table", fk.RefTable), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if !exists {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, fk.NotFound)
		}
	}

	switch entity {
	case constant.EntityLease:
		return s.validateLeaseDates(body)
	case constant.EntityPayment:
		return s.validatePaymentAmount(ctx, body)
	}
	return nil
}

func (s *resourceAppImpl) validateLeaseDates(body map[string]any) error {
	start, okStart := asDate(body["start_date"])
	end, okEnd := asDate(body["end_date"])
	if !okStart || !okEnd {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid date format. Use YYYY-MM-DD")
	}
	if start.After(end) {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "End date must be after start date")
	}
	return nil
}

func (s *resourceAppImpl) validatePaymentAmount(ctx context.Context, body map[string]any) error {
	leaseID, _ := asID(body["lease_id"])
	terms, err := s.resourceRepo.GetLeaseTerms(ctx, leaseID)
	if err != nil {
		logger.Error("[Create] err resourceRepo.GetLeaseTerms", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if terms == nil {
		return errors.SetCustomErrorMessage(constant.ErrNotFound, "Lease ID does not exist")
	}

	amount, ok := asFloat(body["amount_paid"])
	if !ok || amount <= 0 || amount > terms.MonthlyRent {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
			fmt.Sprintf("Invalid payment amount. Must be between 0 and %g", terms.MonthlyRent))
	}
	return nil
}

// createLease inserts the lease and flips the apartment to Occupied in one
// transaction. The apartment row is locked first so a concurrent lease on
// the same apartment waits and then fails the availability check.
func (s *resourceAppImpl) createLease(ctx context.Context, body map[string]any) (any, error) {
	apartmentID, _ := asID(body["apartment_id"])

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateLease] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	state, err := s.resourceRepo.LockApartmentTx(ctx, tx, apartmentID)
	if err != nil {
		logger.Error("[CreateLease] lock apartment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if state == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "Apartment ID does not exist")
	}
	if state.Availability != constant.AvailabilityAvailable {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Apartment is not available")
	}

	leaseID, err := s.resourceRepo.InsertTx(ctx, tx, constant.EntityLease, body)
	if err != nil {
		logger.Error("[CreateLease] insert lease", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Error creating lease: "+err.Error())
	}

	if err := s.resourceRepo.SetApartmentAvailabilityTx(ctx, tx, apartmentID, constant.AvailabilityOccupied); err != nil {
		logger.Error("[CreateLease] update availability", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateLease] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishLeaseExpiration(leaseID, apartmentID, body)

	return map[string]any{"lease_id": leaseID}, nil
}

func (s *resourceAppImpl) publishLeaseExpiration(leaseID, apartmentID uint64, body map[string]any) {
	if s.publisher == nil {
		return
	}
	endDate, ok := asDate(body["end_date"])
	if !ok {
		return
	}
	msg := rabbitmq.LeaseExpirationMessage{
		LeaseID:     leaseID,
		ApartmentID: apartmentID,
		ExpiresAt:   endDate,
	}
	if err := s.publisher.PublishLeaseExpiration(msg); err != nil {
		logger.Error("[CreateLease] publish lease expiration", zap.String("error", err.Error()))
	}
}

// createApartment inserts and reads the row back in the same transaction so
// the response carries the stored values.
func (s *resourceAppImpl) createApartment(ctx context.Context, body map[string]any) (any, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateApartment] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.resourceRepo.InsertTx(ctx, tx, constant.EntityApartment, body)
	if err != nil {
		logger.Error("[CreateApartment] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Error creating apartment: "+err.Error())
	}

	row, err := s.resourceRepo.GetApartmentTx(ctx, tx, id)
	if err != nil || row == nil {
		logger.Error("[CreateApartment] read back", zap.Uint64("id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateApartment] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return row, nil
}

// createPayment echoes the recorded terms back so the receipt carries more
// than the new id.
func (s *resourceAppImpl) createPayment(ctx context.Context, body map[string]any) (any, error) {
	payload, err := s.createInTx(ctx, constant.EntityPayment, body)
	if err != nil {
		return nil, err
	}
	receipt := payload.(map[string]any)
	receipt["lease_id"] = body["lease_id"]
	receipt["amount_paid"] = body["amount_paid"]
	receipt["status"] = body["status"]
	return receipt, nil
}

func (s *resourceAppImpl) createInTx(ctx context.Context, entity constant.Entity, body map[string]any) (any, error) {
	schema := constant.EntitySchemas[entity]

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Create] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.resourceRepo.InsertTx(ctx, tx, entity, body)
	if err != nil {
		logger.Error("[Create] insert", zap.String("entity", string(entity)), zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
			fmt.Sprintf("Error creating %s: %s", strings.ToLower(schema.Label), err.Error()))
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Create] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return map[string]any{idKey(schema): id}, nil
}

func (s *resourceAppImpl) createPlain(ctx context.Context, entity constant.Entity, body map[string]any) (any, error) {
	schema := constant.EntitySchemas[entity]

	id, err := s.resourceRepo.Insert(ctx, entity, body)
	if err != nil {
		logger.Error("[Create] insert", zap.String("entity", string(entity)), zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
			fmt.Sprintf("Error creating %s: %s", strings.ToLower(schema.Label), err.Error()))
	}
	return map[string]any{idKey(schema): id}, nil
}

func idKey(schema constant.EntitySchema) string {
	return strings.ToLower(schema.Label) + "_id"
}

// Get returns one row by id or the whole collection. A miss on a single id
// is NotFound; an empty collection is a successful empty list.
func (s *resourceAppImpl) Get(ctx context.Context, entity constant.Entity, id *uint64) (any, string, error) {
	rows, count, err := s.resourceRepo.List(ctx, entity, id)
	if err != nil {
		logger.Error("[Get] err resourceRepo.List", zap.String("entity", string(entity)), zap.String("error", err.Error()))
		return nil, "", errors.SetCustomErrorMessage(constant.ErrReadFailed, err.Error())
	}

	if id != nil && count == 0 {
		return nil, "", errors.SetCustomError(constant.ErrNotFound)
	}

	return rows, "Successfully retrieved " + string(entity) + ".", nil
}

func (s *resourceAppImpl) Patch(ctx context.Context, entity constant.Entity, id uint64, body map[string]any) (string, error) {
	schema := constant.EntitySchemas[entity]

	exists, err := s.resourceRepo.Exists(ctx, entity, id)
	if err != nil {
		logger.Error("[Patch] err resourceRepo.Exists", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return "", errors.SetCustomErrorMessage(constant.ErrNotFound, schema.Label+" not found")
	}

	if !hasPatchableField(schema, body) {
		return "", errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "No valid fields to update")
	}

	if err := s.resourceRepo.Update(ctx, entity, id, body); err != nil {
		logger.Error("[Patch] err resourceRepo.Update", zap.String("error", err.Error()))
		return "", errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error())
	}

	s.audit(ctx, "PATCH", fmt.Sprintf("Updated %s ID: %d", strings.ToLower(schema.Label), id))

	return schema.Label + " updated successfully", nil
}

func (s *resourceAppImpl) Delete(ctx context.Context, entity constant.Entity, id uint64) (string, error) {
	schema := constant.EntitySchemas[entity]

	exists, err := s.resourceRepo.Exists(ctx, entity, id)
	if err != nil {
		logger.Error("[Delete] err resourceRepo.Exists", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return "", errors.SetCustomErrorMessage(constant.ErrNotFound, schema.Label+" not found")
	}

	if entity == constant.EntityLease {
		if err := s.deleteLease(ctx, id); err != nil {
			return "", err
		}
	} else {
		if err := s.resourceRepo.Delete(ctx, entity, id); err != nil {
			logger.Error("[Delete] err resourceRepo.Delete", zap.String("error", err.Error()))
			return "", errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error())
		}
	}

	s.audit(ctx, "DELETE", fmt.Sprintf("Deleted %s ID: %d", strings.ToLower(schema.Label), id))

	return schema.Label + " deleted successfully", nil
}

// deleteLease removes the lease and reverts its apartment to Available in
// the same transaction.
func (s *resourceAppImpl) deleteLease(ctx context.Context, id uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteLease] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	terms, err := s.resourceRepo.GetLeaseTermsTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteLease] get lease", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if terms == nil {
		return errors.SetCustomErrorMessage(constant.ErrNotFound, "Lease not found")
	}

	if err := s.resourceRepo.DeleteTx(ctx, tx, constant.EntityLease, id); err != nil {
		logger.Error("[DeleteLease] delete", zap.String("error", err.Error()))
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error())
	}

	if err := s.resourceRepo.SetApartmentAvailabilityTx(ctx, tx, terms.ApartmentID, constant.AvailabilityAvailable); err != nil {
		logger.Error("[DeleteLease] release apartment", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteLease] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// ReleaseLease flips an ended lease's apartment back to Available. Called by
// the lease-expiration consumer through the internal endpoint; idempotent.
func (s *resourceAppImpl) ReleaseLease(ctx context.Context, leaseID uint64) (string, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReleaseLease] begin tx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	terms, err := s.resourceRepo.GetLeaseTermsTx(ctx, tx, leaseID)
	if err != nil {
		logger.Error("[ReleaseLease] get lease", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if terms == nil {
		return "", errors.SetCustomErrorMessage(constant.ErrNotFound, "Lease not found")
	}

	if time.Now().Before(terms.EndDate) {
		return "", errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Lease has not ended")
	}

	if err := s.resourceRepo.SetApartmentAvailabilityTx(ctx, tx, terms.ApartmentID, constant.AvailabilityAvailable); err != nil {
		logger.Error("[ReleaseLease] release apartment", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReleaseLease] commit tx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.audit(ctx, "RELEASE", fmt.Sprintf("Released apartment ID: %d for lease ID: %d", terms.ApartmentID, leaseID))

	return "Apartment released successfully", nil
}

func (s *resourceAppImpl) audit(ctx context.Context, method, action string) {
	actor := "SYSTEM"
	if email, ok := utilscontext.GetAuthEmail(ctx); ok && email != "" {
		actor = email
	}
	if err := s.auditRepo.Append(actor, method, action); err != nil {
		logger.Warn("[Audit] append failed", zap.String("error", err.Error()))
	}
}

func missingField(entity constant.Entity, body map[string]any, field string) bool {
	v, ok := body[field]
	if !ok || v == nil {
		return true
	}
	if entity == constant.EntityCommunication {
		if str, isStr := v.(string); isStr && strings.TrimSpace(str) == "" {
			return true
		}
	}
	return false
}

func hasPatchableField(schema constant.EntitySchema, body map[string]any) bool {
	for _, col := range schema.Patchable {
		if _, ok := body[col]; ok {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// asID coerces a decoded JSON value to a row id. JSON numbers arrive as
// float64; string ids are accepted the way the original API accepted them.
func asID(v any) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != float64(uint64(n)) {
			return 0, false
		}
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint64:
		return n, true
	case string:
		id, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func asDate(v any) (time.Time, bool) {
	str, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, str); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, str); err == nil {
		return t, true
	}
	return time.Time{}, false
}
