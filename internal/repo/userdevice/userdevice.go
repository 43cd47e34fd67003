// Code generated by ent, DO NOT EDIT.

package userdevice

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the userdevice type in the database.
	Label = "user_device"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldAccountRole holds the string denoting the account_role field in the database.
	FieldAccountRole = "account_role"
	// FieldDeviceToken holds the string denoting the device_token field in the database.
	FieldDeviceToken = "device_token"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the userdevice in the database.
	Table = "user_devices"
)

// Columns holds all SQL columns for userdevice fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldAccountID,
	FieldAccountRole,
	FieldDeviceToken,
	FieldPlatform,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DeviceTokenValidator is a validator for the "device_token" field. It is called by the builders before save.
	DeviceTokenValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// AccountRole defines the type for the "account_role" enum field.
type AccountRole string

// AccountRole values.
const (
	AccountRolePatient      AccountRole = "patient"
	AccountRolePsychologist AccountRole = "psychologist"
)

func (ar AccountRole) String() string {
	return string(ar)
}

// AccountRoleValidator is a validator for the "account_role" field enum values. It is called by the builders before save.
func AccountRoleValidator(ar AccountRole) error {
	switch ar {
	case AccountRolePatient, AccountRolePsychologist:
		return nil
	default:
		return fmt.Errorf("userdevice: invalid enum value for account_role field: %q", ar)
	}
}

// Platform defines the type for the "platform" enum field.
type Platform string

// Platform values.
const (
	PlatformWeb     Platform = "web"
	PlatformAndroid Platform = "android"
	PlatformIos     Platform = "ios"
)

func (pl Platform) String() string {
	return string(pl)
}

// PlatformValidator is a validator for the "platform" field enum values. It is called by the builders before save.
func PlatformValidator(pl Platform) error {
	switch pl {
	case PlatformWeb, PlatformAndroid, PlatformIos:
		return nil
	default:
		return fmt.Errorf("userdevice: invalid enum value for platform field: %q", pl)
	}
}

// OrderOption defines the ordering options for the UserDevice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByAccountRole orders the results by the account_role field.
func ByAccountRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountRole, opts...).ToFunc()
}

// ByDeviceToken orders the results by the device_token field.
func ByDeviceToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceToken, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
