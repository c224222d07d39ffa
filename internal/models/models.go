package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote is one row of shippingquotes. An order is the same row once its
// status has moved into the order stage.
type Quote struct {
	ID int64 `json:"id" db:"id" diff:"-"`

	OriginCity        string `json:"origin_city" db:"origin_city"`
	OriginState       string `json:"origin_state" db:"origin_state"`
	OriginZip         string `json:"origin_zip" db:"origin_zip"`
	OriginStreet      string `json:"origin_street" db:"origin_street"`
	DestinationCity   string `json:"destination_city" db:"destination_city"`
	DestinationState  string `json:"destination_state" db:"destination_state"`
	DestinationZip    string `json:"destination_zip" db:"destination_zip"`
	DestinationStreet string `json:"destination_street" db:"destination_street"`

	FreightType     string           `json:"freight_type" db:"freight_type"`
	Year            string           `json:"year" db:"year"`
	Make            string           `json:"make" db:"make"`
	Model           string           `json:"model" db:"model"`
	Length          string           `json:"length" db:"length"`
	Width           string           `json:"width" db:"width"`
	Height          string           `json:"height" db:"height"`
	Weight          string           `json:"weight" db:"weight"`
	ContainerLength string           `json:"container_length" db:"container_length"`
	ContainerType   string           `json:"container_type" db:"container_type"`
	FreightClass    string           `json:"freight_class" db:"freight_class"`
	PackagingType   string           `json:"packaging_type" db:"packaging_type"`
	Commodity       string           `json:"commodity" db:"commodity"`
	GoodsValue      *decimal.Decimal `json:"goods_value" db:"goods_value"`

	DueDate *Date            `json:"due_date" db:"due_date"`
	Price   *decimal.Decimal `json:"price" db:"price"`

	Status        string `json:"status" db:"status"`
	BrokersStatus string `json:"brokers_status" db:"brokers_status"`

	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	CompanyID *uuid.UUID `json:"company_id" db:"company_id"`

	InsertedAt time.Time `json:"inserted_at" db:"inserted_at" diff:"-"`
}

func (q *Quote) IsPriced() bool {
	return q.Price != nil
}

func (q *Quote) IsOrder() bool {
	return IsOrderStatus(q.Status)
}

type EditHistory struct {
	ID        int64      `json:"id"`
	QuoteID   int64      `json:"quote_id"`
	EditedBy  uuid.UUID  `json:"edited_by"`
	EditedAt  time.Time  `json:"edited_at"`
	Changes   string     `json:"changes"`
	CompanyID *uuid.UUID `json:"company_id"`
}

type EditRequestStatus string

const (
	EditRequestPending  EditRequestStatus = "pending"
	EditRequestApproved EditRequestStatus = "approved"
	EditRequestRejected EditRequestStatus = "rejected"
)

type EditRequest struct {
	ID               int64             `json:"id"`
	QuoteID          int64             `json:"quote_id"`
	RequestedBy      uuid.UUID         `json:"requested_by"`
	RequestedChanges json.RawMessage   `json:"requested_changes"`
	Reason           string            `json:"reason,omitempty"`
	CompanyID        *uuid.UUID        `json:"company_id"`
	Status           EditRequestStatus `json:"status"`
	ReviewedBy       *uuid.UUID        `json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type Document struct {
	ID          int64      `json:"id"`
	QuoteID     *int64     `json:"quote_id,omitempty"`
	UserID      uuid.UUID  `json:"user_id"`
	CompanyID   *uuid.UUID `json:"company_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	FileName    string     `json:"file_name"`
	FileType    string     `json:"file_type"`
	StorageKey  string     `json:"-"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}

type Profile struct {
	ID        uuid.UUID  `json:"id"`
	CompanyID *uuid.UUID `json:"company_id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
}

const (
	RoleBroker  = "broker"
	RoleShipper = "shipper"
)

// Actor is the authenticated user behind a request. Brokers are privileged:
// their edits apply directly.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleBroker
}
