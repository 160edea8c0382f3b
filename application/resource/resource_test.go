package resource_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appresource "github.com/rentconnect/rentconnect-api/application/resource"
	"github.com/rentconnect/rentconnect-api/constant"
	auditmocks "github.com/rentconnect/rentconnect-api/mocks/repository/audit"
	resourcemocks "github.com/rentconnect/rentconnect-api/mocks/repository/resource"
	txmocks "github.com/rentconnect/rentconnect-api/mocks/repository/tx"
	"github.com/rentconnect/rentconnect-api/model"
	cerr "github.com/rentconnect/rentconnect-api/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	resourceRepo *resourcemocks.ResourceRepository
	txRepo       *txmocks.TxRepository
	auditRepo    *auditmocks.AuditRepository
}

func newFields(t *testing.T) fields {
	return fields{
		resourceRepo: resourcemocks.NewResourceRepository(t),
		txRepo:       txmocks.NewTxRepository(t),
		auditRepo:    auditmocks.NewAuditRepository(t),
	}
}

func newApp(f fields) appresource.ResourceApp {
	return appresource.NewResourceApp(f.resourceRepo, f.txRepo, f.auditRepo, nil)
}

func assertCustomError(t *testing.T, err error, httpCode int, message string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, message, err.Error())
	var ce cerr.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, httpCode, ce.ErrorHTTPCode())
}

func leaseBody() map[string]any {
	return map[string]any{
		"tenant_id":    float64(3),
		"apartment_id": float64(2),
		"start_date":   "2026-01-01",
		"end_date":     "2026-12-31",
		"monthly_rent": float64(12000),
	}
}

func TestResourceApp_CreateLease(t *testing.T) {
	tests := []struct {
		name        string
		body        map[string]any
		mockCall    func(f fields)
		wantPayload any
		wantMessage string
		wantErrCode int
		wantErrMsg  string
	}{
		{
			name: "success: lease row written and apartment occupied in one transaction",
			body: leaseBody(),
			mockCall: func(f fields) {
				f.resourceRepo.On("ExistsRef", mock.Anything, "tenant", uint64(3)).Return(true, nil).Once()
				f.resourceRepo.On("ExistsRef", mock.Anything, "apartment", uint64(2)).Return(true, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.resourceRepo.
					On("LockApartmentTx", mock.Anything, tx, uint64(2)).
					Return(&model.ApartmentState{ID: 2, Availability: constant.AvailabilityAvailable}, nil).
					Once()
				f.resourceRepo.On("InsertTx", mock.Anything, tx, constant.EntityLease, mock.Anything).Return(uint64(7), nil).Once()
				f.resourceRepo.On("SetApartmentAvailabilityTx", mock.Anything, tx, uint64(2), constant.AvailabilityOccupied).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantPayload: map[string]any{"lease_id": uint64(7)},
			wantMessage: "Lease created successfully",
		},
		{
			name: "error: occupied apartment rejects the lease and writes nothing",
			body: leaseBody(),
			mockCall: func(f fields) {
				f.resourceRepo.On("ExistsRef", mock.Anything, "tenant", uint64(3)).Return(true, nil).Once()
				f.resourceRepo.On("ExistsRef", mock.Anything, "apartment", uint64(2)).Return(true, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.resourceRepo.
					On("LockApartmentTx", mock.Anything, tx, uint64(2)).
					Return(&model.ApartmentState{ID: 2, Availability: constant.AvailabilityOccupied}, nil).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErrCode: 400,
			wantErrMsg:  "Apartment is not available",
		},
		{
			name: "error: missing required field fails before any lookup",
			body: map[string]any{
				"apartment_id": float64(2),
				"start_date":   "2026-01-01",
				"end_date":     "2026-12-31",
				"monthly_rent": float64(12000),
			},
			mockCall:    func(f fields) {},
			wantErrCode: 400,
			wantErrMsg:  "Missing required field: tenant_id",
		},
		{
			name: "error: end date before start date",
			body: map[string]any{
				"tenant_id":    float64(3),
				"apartment_id": float64(2),
				"start_date":   "2026-12-31",
				"end_date":     "2026-01-01",
				"monthly_rent": float64(12000),
			},
			mockCall: func(f fields) {
				f.resourceRepo.On("ExistsRef", mock.Anything, "tenant", uint64(3)).Return(true, nil).Once()
				f.resourceRepo.On("ExistsRef", mock.Anything, "apartment", uint64(2)).Return(true, nil).Once()
			},
			wantErrCode: 400,
			wantErrMsg:  "End date must be after start date",
		},
		{
			name: "error: unknown tenant reported with its own message",
			body: leaseBody(),
			mockCall: func(f fields) {
				f.resourceRepo.On("ExistsRef", mock.Anything, "tenant", uint64(3)).Return(false, nil).Once()
			},
			wantErrCode: 404,
			wantErrMsg:  "Tenant ID does not exist",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			payload, message, err := newApp(f).Create(context.Background(), constant.EntityLease, tt.body)

			if tt.wantErrMsg != "" {
				assertCustomError(t, err, tt.wantErrCode, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPayload, payload)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestResourceApp_CreatePayment(t *testing.T) {
	paymentBody := func(amount float64) map[string]any {
		return map[string]any{
			"lease_id":       float64(7),
			"payment_date":   "2026-02-01",
			"amount_paid":    amount,
			"payment_method": "Cash",
			"status":         "Completed",
		}
	}
	terms := &model.LeaseTerms{ID: 7, ApartmentID: 2, EndDate: time.Now().AddDate(0, 6, 0), MonthlyRent: 15000}

	tests := []struct {
		name        string
		body        map[string]any
		mockCall    func(f fields)
		wantPayload any
		wantErrCode int
		wantErrMsg  string
	}{
		{
			name: "success",
			body: paymentBody(15000),
			mockCall: func(f fields) {
				f.resourceRepo.On("ExistsRef", mock.Anything, "lease", uint64(7)).Return(true, nil).Once()
				f.resourceRepo.On("GetLeaseTerms", mock.Anything, uint64(7)).Return(terms, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.resourceRepo.On("InsertTx", mock.Anything, tx, constant.EntityPayment, mock.Anything).Return(uint64(4), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantPayload: map[string]any{
				"payment_id":  uint64(4),
				"lease_id":    float64(7),
				"amount_paid": float64(15000),
				"status":      "Completed",
			},
		},
		{
			name: "error: amount above monthly rent writes nothing",
			body: paymentBody(20000),
			mockCall: func(f fields) {
				f.resourceRepo.On("ExistsRef", mock.Anything, "lease", uint64(7)).Return(true, nil).Once()
				f.resourceRepo.On("GetLeaseTerms", mock.Anything, uint64(7)).Return(terms, nil).Once()
			},
			wantErrCode: 400,
			wantErrMsg:  "Invalid payment amount. Must be between 0 and 15000",
		},
		{
			name: "error: zero amount",
			body: paymentBody(0),
			mockCall: func(f fields) {
				f.resourceRepo.On("ExistsRef", mock.Anything, "lease", uint64(7)).Return(true, nil).Once()
				f.resourceRepo.On("GetLeaseTerms", mock.Anything, uint64(7)).Return(terms, nil).Once()
			},
			wantErrCode: 400,
			wantErrMsg:  "Invalid payment amount. Must be between 0 and 15000",
		},
		{
			name: "error: invalid payment method checked before lease lookup",
			body: map[string]any{
				"lease_id":       float64(7),
				"payment_date":   "2026-02-01",
				"amount_paid":    float64(100),
				"payment_method": "Barter",
				"status":         "Completed",
			},
			mockCall:    func(f fields) {},
			wantErrCode: 400,
			wantErrMsg:  "Invalid payment method. Must be one of: Cash, Credit Card, Bank Transfer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			payload, message, err := newApp(f).Create(context.Background(), constant.EntityPayment, tt.body)

			if tt.wantErrMsg != "" {
				assertCustomError(t, err, tt.wantErrCode, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPayload, payload)
			assert.Equal(t, "Payment created successfully", message)
		})
	}
}

func TestResourceApp_CreateIssue_DefaultsStatusToPending(t *testing.T) {
	f := newFields(t)
	f.resourceRepo.On("ExistsRef", mock.Anything, "tenant", uint64(3)).Return(true, nil).Once()
	f.resourceRepo.On("ExistsRef", mock.Anything, "apartment", uint64(2)).Return(true, nil).Once()

	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.resourceRepo.
		On("InsertTx", mock.Anything, tx, constant.EntityIssue, mock.MatchedBy(func(body map[string]any) bool {
			return body["status"] == constant.IssueStatusPending
		})).
		Return(uint64(9), nil).
		Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	payload, message, err := newApp(f).Create(context.Background(), constant.EntityIssue, map[string]any{
		"tenant_id":    float64(3),
		"apartment_id": float64(2),
		"description":  "Leaky faucet",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"issue_id": uint64(9)}, payload)
	assert.Equal(t, "Issue reported successfully", message)
}

func TestResourceApp_CreateCommunication_RejectsBlankMessage(t *testing.T) {
	f := newFields(t)

	_, _, err := newApp(f).Create(context.Background(), constant.EntityCommunication, map[string]any{
		"sender_id":   float64(3),
		"receiver_id": float64(1),
		"message":     "   ",
	})
	assertCustomError(t, err, 400, "Missing or empty required field: message")
}

func TestResourceApp_CreateApartment(t *testing.T) {
	apartmentBody := func() map[string]any {
		return map[string]any{
			"name":         "Unit 4B",
			"location":     "Main St",
			"price":        float64(15000),
			"availability": constant.AvailabilityAvailable,
			"landlord_id":  float64(1),
		}
	}

	t.Run("success: response carries the stored row", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("ExistsRef", mock.Anything, "landlord", uint64(1)).Return(true, nil).Once()

		tx := &sqlx.Tx{}
		row := &model.ApartmentRow{ID: 5, Name: "Unit 4B", Availability: constant.AvailabilityAvailable}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.resourceRepo.On("InsertTx", mock.Anything, tx, constant.EntityApartment, mock.Anything).Return(uint64(5), nil).Once()
		f.resourceRepo.On("GetApartmentTx", mock.Anything, tx, uint64(5)).Return(row, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		payload, message, err := newApp(f).Create(context.Background(), constant.EntityApartment, apartmentBody())
		require.NoError(t, err)
		assert.Equal(t, row, payload)
		assert.Equal(t, "Apartment created successfully", message)
	})

	t.Run("error: unknown landlord", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("ExistsRef", mock.Anything, "landlord", uint64(1)).Return(false, nil).Once()

		_, _, err := newApp(f).Create(context.Background(), constant.EntityApartment, apartmentBody())
		assertCustomError(t, err, 404, "Landlord not found")
	})

	t.Run("error: invalid availability checked before landlord lookup", func(t *testing.T) {
		f := newFields(t)
		body := apartmentBody()
		body["availability"] = "Sometimes"

		_, _, err := newApp(f).Create(context.Background(), constant.EntityApartment, body)
		assertCustomError(t, err, 400, "Invalid availability status")
	})
}

func TestResourceApp_CreateLandlord(t *testing.T) {
	f := newFields(t)
	body := map[string]any{
		"first_name":     "Jan",
		"last_name":      "Cruz",
		"email":          "jan@b.com",
		"contact_number": "0917",
		"age":            float64(40),
		"sex":            "F",
	}
	f.resourceRepo.On("Insert", mock.Anything, constant.EntityLandlord, body).Return(uint64(1), nil).Once()

	payload, message, err := newApp(f).Create(context.Background(), constant.EntityLandlord, body)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"landlord_id": uint64(1)}, payload)
	assert.Equal(t, "Landlord created successfully", message)
}

func TestResourceApp_Get(t *testing.T) {
	id := uint64(5)

	t.Run("miss on a single id is not found", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("List", mock.Anything, constant.EntityTenant, &id).Return([]model.TenantRow{}, 0, nil).Once()

		_, _, err := newApp(f).Get(context.Background(), constant.EntityTenant, &id)
		assertCustomError(t, err, 404, "No data found")
	})

	t.Run("empty collection is a successful empty list", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("List", mock.Anything, constant.EntityTenant, (*uint64)(nil)).Return([]model.TenantRow{}, 0, nil).Once()

		rows, message, err := newApp(f).Get(context.Background(), constant.EntityTenant, nil)
		require.NoError(t, err)
		assert.Equal(t, []model.TenantRow{}, rows)
		assert.Equal(t, "Successfully retrieved tenants.", message)
	})

	t.Run("store failure surfaces as a read error", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("List", mock.Anything, constant.EntityTenant, (*uint64)(nil)).Return(nil, 0, assert.AnError).Once()

		_, _, err := newApp(f).Get(context.Background(), constant.EntityTenant, nil)
		assertCustomError(t, err, 403, assert.AnError.Error())
	})
}

func TestResourceApp_Patch(t *testing.T) {
	authCtx := context.WithValue(context.Background(), constant.AuthEmailKey, "a@b.com")

	t.Run("success: recognized fields written and the change audited", func(t *testing.T) {
		f := newFields(t)
		body := map[string]any{"email": "new@b.com", "unknown_column": "x"}
		f.resourceRepo.On("Exists", mock.Anything, constant.EntityTenant, uint64(5)).Return(true, nil).Once()
		f.resourceRepo.On("Update", mock.Anything, constant.EntityTenant, uint64(5), body).Return(nil).Once()
		f.auditRepo.On("Append", "a@b.com", "PATCH", "Updated tenant ID: 5").Return(nil).Once()

		message, err := newApp(f).Patch(authCtx, constant.EntityTenant, 5, body)
		require.NoError(t, err)
		assert.Equal(t, "Tenant updated successfully", message)
	})

	t.Run("error: missing row is not found and not audited", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("Exists", mock.Anything, constant.EntityTenant, uint64(5)).Return(false, nil).Once()

		_, err := newApp(f).Patch(authCtx, constant.EntityTenant, 5, map[string]any{"email": "new@b.com"})
		assertCustomError(t, err, 404, "Tenant not found")
	})

	t.Run("error: only unrecognized fields", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("Exists", mock.Anything, constant.EntityTenant, uint64(5)).Return(true, nil).Once()

		_, err := newApp(f).Patch(authCtx, constant.EntityTenant, 5, map[string]any{"unknown_column": "x"})
		assertCustomError(t, err, 400, "No valid fields to update")
	})
}

func TestResourceApp_Delete(t *testing.T) {
	authCtx := context.WithValue(context.Background(), constant.AuthEmailKey, "a@b.com")

	t.Run("success: plain entity deleted and audited", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("Exists", mock.Anything, constant.EntityPayment, uint64(4)).Return(true, nil).Once()
		f.resourceRepo.On("Delete", mock.Anything, constant.EntityPayment, uint64(4)).Return(nil).Once()
		f.auditRepo.On("Append", "a@b.com", "DELETE", "Deleted payment ID: 4").Return(nil).Once()

		message, err := newApp(f).Delete(authCtx, constant.EntityPayment, 4)
		require.NoError(t, err)
		assert.Equal(t, "Payment deleted successfully", message)
	})

	t.Run("success: lease delete reverts its apartment in the same transaction", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("Exists", mock.Anything, constant.EntityLease, uint64(7)).Return(true, nil).Once()

		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.resourceRepo.
			On("GetLeaseTermsTx", mock.Anything, tx, uint64(7)).
			Return(&model.LeaseTerms{ID: 7, ApartmentID: 2}, nil).
			Once()
		f.resourceRepo.On("DeleteTx", mock.Anything, tx, constant.EntityLease, uint64(7)).Return(nil).Once()
		f.resourceRepo.On("SetApartmentAvailabilityTx", mock.Anything, tx, uint64(2), constant.AvailabilityAvailable).Return(nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.auditRepo.On("Append", "a@b.com", "DELETE", "Deleted lease ID: 7").Return(nil).Once()

		message, err := newApp(f).Delete(authCtx, constant.EntityLease, 7)
		require.NoError(t, err)
		assert.Equal(t, "Lease deleted successfully", message)
	})

	t.Run("error: missing row is not found and nothing is deleted", func(t *testing.T) {
		f := newFields(t)
		f.resourceRepo.On("Exists", mock.Anything, constant.EntityPayment, uint64(4)).Return(false, nil).Once()

		_, err := newApp(f).Delete(authCtx, constant.EntityPayment, 4)
		assertCustomError(t, err, 404, "Payment not found")
	})
}

func TestResourceApp_ReleaseLease(t *testing.T) {
	t.Run("success: ended lease releases its apartment with a SYSTEM audit entry", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.resourceRepo.
			On("GetLeaseTermsTx", mock.Anything, tx, uint64(7)).
			Return(&model.LeaseTerms{ID: 7, ApartmentID: 2, EndDate: time.Now().Add(-time.Hour)}, nil).
			Once()
		f.resourceRepo.On("SetApartmentAvailabilityTx", mock.Anything, tx, uint64(2), constant.AvailabilityAvailable).Return(nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.auditRepo.On("Append", "SYSTEM", "RELEASE", "Released apartment ID: 2 for lease ID: 7").Return(nil).Once()

		message, err := newApp(f).ReleaseLease(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Apartment released successfully", message)
	})

	t.Run("error: lease still running", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.resourceRepo.
			On("GetLeaseTermsTx", mock.Anything, tx, uint64(7)).
			Return(&model.LeaseTerms{ID: 7, ApartmentID: 2, EndDate: time.Now().Add(time.Hour)}, nil).
			Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		_, err := newApp(f).ReleaseLease(context.Background(), 7)
		assertCustomError(t, err, 400, "Lease has not ended")
	})

	t.Run("error: unknown lease", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.resourceRepo.On("GetLeaseTermsTx", mock.Anything, tx, uint64(7)).Return(nil, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		_, err := newApp(f).ReleaseLease(context.Background(), 7)
		assertCustomError(t, err, 404, "Lease not found")
	})
}
