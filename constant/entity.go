package constant

// Entity is the closed set of resources exposed over HTTP. Table and column
// names below are the only identifiers that ever reach SQL text; request
// input is used for values exclusively.
type Entity string

const (
	EntityLandlord      Entity = "landlords"
	EntityTenant        Entity = "tenants"
	EntityApartment     Entity = "apartments"
	EntityLease         Entity = "leases"
	EntityPayment       Entity = "payments"
	EntityIssue         Entity = "issues"
	EntityCommunication Entity = "communications"
)

const (
	RoleLandlord = "Landlord"
	RoleTenant   = "Tenant"
)

const (
	AvailabilityAvailable        = "Available"
	AvailabilityOccupied         = "Occupied"
	AvailabilityUnderMaintenance = "Under Maintenance"
)

const IssueStatusPending = "Pending"

// ForeignKey declares a reference that must exist before a row is written.
type ForeignKey struct {
	Column   string
	RefTable string
	NotFound string
}

// EnumRule restricts a column to a fixed value set.
type EnumRule struct {
	Values  []string
	Message string
}

// EntitySchema is the per-resource validation and column policy consulted by
// the generic validator and CRUD executor.
type EntitySchema struct {
	Table       string
	Label       string
	Required    []string
	Creatable   []string
	Patchable   []string
	ForeignKeys []ForeignKey
	Enums       map[string]EnumRule
	Defaults    map[string]any
}

var personColumns = []string{"first_name", "last_name", "middle_initial", "email", "contact_number", "age", "sex"}

var EntitySchemas = map[Entity]EntitySchema{
	EntityLandlord: {
		Table:     "landlord",
		Label:     "Landlord",
		Required:  []string{"first_name", "last_name", "email", "contact_number", "age", "sex"},
		Creatable: personColumns,
		Patchable: personColumns,
	},
	EntityTenant: {
		Table:     "tenant",
		Label:     "Tenant",
		Required:  []string{"first_name", "last_name", "email", "contact_number", "age", "sex"},
		Creatable: personColumns,
		Patchable: personColumns,
	},
	EntityApartment: {
		Table:     "apartment",
		Label:     "Apartment",
		Required:  []string{"name", "location", "price", "availability", "landlord_id"},
		Creatable: []string{"name", "location", "price", "availability", "ratings", "landlord_id"},
		Patchable: []string{"name", "location", "price", "availability", "ratings", "landlord_id"},
		ForeignKeys: []ForeignKey{
			{Column: "landlord_id", RefTable: "landlord", NotFound: "Landlord not found"},
		},
		Enums: map[string]EnumRule{
			"availability": {
				Values:  []string{AvailabilityAvailable, AvailabilityOccupied, AvailabilityUnderMaintenance},
				Message: "Invalid availability status",
			},
		},
	},
	EntityLease: {
		Table:     "lease",
		Label:     "Lease",
		Required:  []string{"tenant_id", "apartment_id", "start_date", "end_date", "monthly_rent"},
		Creatable: []string{"tenant_id", "apartment_id", "start_date", "end_date", "monthly_rent"},
		Patchable: []string{"tenant_id", "apartment_id", "start_date", "end_date", "monthly_rent"},
		ForeignKeys: []ForeignKey{
			{Column: "tenant_id", RefTable: "tenant", NotFound: "Tenant ID does not exist"},
			{Column: "apartment_id", RefTable: "apartment", NotFound: "Apartment ID does not exist"},
		},
	},
	EntityPayment: {
		Table:     "payment",
		Label:     "Payment",
		Required:  []string{"lease_id", "payment_date", "amount_paid", "payment_method", "status"},
		Creatable: []string{"lease_id", "payment_date", "amount_paid", "payment_method", "status"},
		Patchable: []string{"lease_id", "payment_date", "amount_paid", "payment_method", "status"},
		ForeignKeys: []ForeignKey{
			{Column: "lease_id", RefTable: "lease", NotFound: "Lease ID does not exist"},
		},
		Enums: map[string]EnumRule{
			"payment_method": {
				Values:  []string{"Cash", "Credit Card", "Bank Transfer"},
				Message: "Invalid payment method. Must be one of: Cash, Credit Card, Bank Transfer",
			},
			"status": {
				Values:  []string{"Pending", "Completed", "Failed"},
				Message: "Invalid status. Must be one of: Pending, Completed, Failed",
			},
		},
	},
	EntityIssue: {
		Table:     "issue",
		Label:     "Issue",
		Required:  []string{"tenant_id", "apartment_id", "description"},
		Creatable: []string{"tenant_id", "apartment_id", "description", "status"},
		Patchable: []string{"tenant_id", "apartment_id", "description", "status"},
		ForeignKeys: []ForeignKey{
			{Column: "tenant_id", RefTable: "tenant", NotFound: "Tenant ID does not exist"},
			{Column: "apartment_id", RefTable: "apartment", NotFound: "Apartment ID does not exist"},
		},
		Enums: map[string]EnumRule{
			"status": {
				Values:  []string{IssueStatusPending, "In Progress", "Resolved"},
				Message: "Invalid status. Must be one of: Pending, In Progress, Resolved",
			},
		},
		Defaults: map[string]any{"status": IssueStatusPending},
	},
	EntityCommunication: {
		Table:     "communication",
		Label:     "Communication",
		Required:  []string{"sender_id", "receiver_id", "message"},
		Creatable: []string{"sender_id", "receiver_id", "message", "is_read"},
		Patchable: []string{"sender_id", "receiver_id", "message", "is_read"},
		ForeignKeys: []ForeignKey{
			{Column: "sender_id", RefTable: "tenant", NotFound: "Sender (Tenant) ID does not exist"},
			{Column: "receiver_id", RefTable: "landlord", NotFound: "Receiver (Landlord) ID does not exist"},
		},
		Defaults: map[string]any{"is_read": false},
	},
}

// ParseEntity maps a URL resource segment to its entity, rejecting anything
// outside the closed set.
func ParseEntity(resource string) (Entity, bool) {
	e := Entity(resource)
	_, ok := EntitySchemas[e]
	return e, ok
}

// RoleTable maps a user role to its detail table.
func RoleTable(role string) (string, bool) {
	switch role {
	case RoleLandlord:
		return "landlord", true
	case RoleTenant:
		return "tenant", true
	}
	return "", false
}
