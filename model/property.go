package model

import "time"

// Read rows for the seven resources. Nullable columns use pointers so they
// scan NULLs and marshal as JSON null. Display-name columns come from the
// list-query joins.

type LandlordRow struct {
	ID            uint64  `db:"id" json:"id"`
	FirstName     string  `db:"first_name" json:"first_name"`
	LastName      string  `db:"last_name" json:"last_name"`
	MiddleInitial *string `db:"middle_initial" json:"middle_initial"`
	Email         string  `db:"email" json:"email"`
	ContactNumber *string `db:"contact_number" json:"contact_number"`
	Age           *int    `db:"age" json:"age"`
	Sex           *string `db:"sex" json:"sex"`
}

type TenantRow struct {
	ID            uint64  `db:"id" json:"id"`
	FirstName     string  `db:"first_name" json:"first_name"`
	LastName      string  `db:"last_name" json:"last_name"`
	MiddleInitial *string `db:"middle_initial" json:"middle_initial"`
	Email         string  `db:"email" json:"email"`
	ContactNumber *string `db:"contact_number" json:"contact_number"`
	Age           *int    `db:"age" json:"age"`
	Sex           *string `db:"sex" json:"sex"`
}

type ApartmentRow struct {
	ID           uint64   `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	Location     string   `db:"location" json:"location"`
	Price        float64  `db:"price" json:"price"`
	Availability string   `db:"availability" json:"availability"`
	Ratings      *float64 `db:"ratings" json:"ratings"`
	LandlordID   uint64   `db:"landlord_id" json:"landlord_id"`
	LandlordName string   `db:"landlord_name" json:"landlord_name,omitempty"`
}

type LeaseRow struct {
	ID            uint64    `db:"id" json:"id"`
	TenantID      uint64    `db:"tenant_id" json:"tenant_id"`
	ApartmentID   uint64    `db:"apartment_id" json:"apartment_id"`
	StartDate     time.Time `db:"start_date" json:"start_date"`
	EndDate       time.Time `db:"end_date" json:"end_date"`
	MonthlyRent   float64   `db:"monthly_rent" json:"monthly_rent"`
	TenantName    string    `db:"tenant_name" json:"tenant_name,omitempty"`
	ApartmentName string    `db:"apartment_name" json:"apartment_name,omitempty"`
}

type PaymentRow struct {
	ID            uint64    `db:"id" json:"id"`
	LeaseID       uint64    `db:"lease_id" json:"lease_id"`
	PaymentDate   time.Time `db:"payment_date" json:"payment_date"`
	AmountPaid    float64   `db:"amount_paid" json:"amount_paid"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	Status        string    `db:"status" json:"status"`
	TenantName    string    `db:"tenant_name" json:"tenant_name,omitempty"`
}

type CommunicationRow struct {
	ID           uint64 `db:"id" json:"id"`
	SenderID     uint64 `db:"sender_id" json:"sender_id"`
	ReceiverID   uint64 `db:"receiver_id" json:"receiver_id"`
	Message      string `db:"message" json:"message"`
	IsRead       bool   `db:"is_read" json:"is_read"`
	SenderName   string `db:"sender_name" json:"sender_name,omitempty"`
	ReceiverName string `db:"receiver_name" json:"receiver_name,omitempty"`
}

type IssueRow struct {
	ID            uint64 `db:"id" json:"id"`
	TenantID      uint64 `db:"tenant_id" json:"tenant_id"`
	ApartmentID   uint64 `db:"apartment_id" json:"apartment_id"`
	Description   string `db:"description" json:"description"`
	Status        string `db:"status" json:"status"`
	TenantName    string `db:"tenant_name" json:"tenant_name,omitempty"`
	ApartmentName string `db:"apartment_name" json:"apartment_name,omitempty"`
}

// LeaseTerms carries the fields payment validation needs.
type LeaseTerms struct {
	ID          uint64    `db:"id"`
	ApartmentID uint64    `db:"apartment_id"`
	EndDate     time.Time `db:"end_date"`
	MonthlyRent float64   `db:"monthly_rent"`
}

// ApartmentState is the locked availability read inside a lease transaction.
type ApartmentState struct {
	ID           uint64 `db:"id"`
	Availability string `db:"availability"`
}
