// Code generated by ent, DO NOT EDIT.

package notificationpref

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the notificationpref type in the database.
	Label = "notification_pref"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldMessagePush holds the string denoting the message_push field in the database.
	FieldMessagePush = "message_push"
	// FieldAppointmentPush holds the string denoting the appointment_push field in the database.
	FieldAppointmentPush = "appointment_push"
	// FieldAppointmentSms holds the string denoting the appointment_sms field in the database.
	FieldAppointmentSms = "appointment_sms"
	// FieldAppointmentEmail holds the string denoting the appointment_email field in the database.
	FieldAppointmentEmail = "appointment_email"
	// Table holds the table name of the notificationpref in the database.
	Table = "notification_prefs"
)

// Columns holds all SQL columns for notificationpref fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAccountID,
	FieldMessagePush,
	FieldAppointmentPush,
	FieldAppointmentSms,
	FieldAppointmentEmail,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultMessagePush holds the default value on creation for the "message_push" field.
	DefaultMessagePush bool
	// DefaultAppointmentPush holds the default value on creation for the "appointment_push" field.
	DefaultAppointmentPush bool
	// DefaultAppointmentSms holds the default value on creation for the "appointment_sms" field.
	DefaultAppointmentSms bool
	// DefaultAppointmentEmail holds the default value on creation for the "appointment_email" field.
	DefaultAppointmentEmail bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the NotificationPref queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByMessagePush orders the results by the message_push field.
func ByMessagePush(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessagePush, opts...).ToFunc()
}

// ByAppointmentPush orders the results by the appointment_push field.
func ByAppointmentPush(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentPush, opts...).ToFunc()
}

// ByAppointmentSms orders the results by the appointment_sms field.
func ByAppointmentSms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentSms, opts...).ToFunc()
}

// ByAppointmentEmail orders the results by the appointment_email field.
func ByAppointmentEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentEmail, opts...).ToFunc()
}
