// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tenangapp/tenang_backend/internal/repo/notificationpref"
)

// NotificationPref is the model entity for the NotificationPref schema.
type NotificationPref struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID uuid.UUID `json:"account_id,omitempty"`
	// MessagePush holds the value of the "message_push" field.
	MessagePush bool `json:"message_push,omitempty"`
	// AppointmentPush holds the value of the "appointment_push" field.
	AppointmentPush bool `json:"appointment_push,omitempty"`
	// AppointmentSms holds the value of the "appointment_sms" field.
	AppointmentSms bool `json:"appointment_sms,omitempty"`
	// AppointmentEmail holds the value of the "appointment_email" field.
	AppointmentEmail bool `json:"appointment_email,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationPref) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationpref.FieldMessagePush, notificationpref.FieldAppointmentPush, notificationpref.FieldAppointmentSms, notificationpref.FieldAppointmentEmail:
			values[i] = new(sql.NullBool)
		case notificationpref.FieldCreatedAt, notificationpref.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case notificationpref.FieldID, notificationpref.FieldAccountID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationPref fields.
func (_m *NotificationPref) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationpref.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case notificationpref.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationpref.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case notificationpref.FieldAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value != nil {
				_m.AccountID = *value
			}
		case notificationpref.FieldMessagePush:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field message_push", values[i])
			} else if value.Valid {
				_m.MessagePush = value.Bool
			}
		case notificationpref.FieldAppointmentPush:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_push", values[i])
			} else if value.Valid {
				_m.AppointmentPush = value.Bool
			}
		case notificationpref.FieldAppointmentSms:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_sms", values[i])
			} else if value.Valid {
				_m.AppointmentSms = value.Bool
			}
		case notificationpref.FieldAppointmentEmail:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_email", values[i])
			} else if value.Valid {
				_m.AppointmentEmail = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationPref.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationPref) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationPref.
// Note that you need to call NotificationPref.Unwrap() before calling this method if this NotificationPref
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationPref) Update() *NotificationPrefUpdateOne {
	return NewNotificationPrefClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationPref entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationPref) Unwrap() *NotificationPref {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: NotificationPref is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationPref) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationPref(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountID))
	builder.WriteString(", ")
	builder.WriteString("message_push=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessagePush))
	builder.WriteString(", ")
	builder.WriteString("appointment_push=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentPush))
	builder.WriteString(", ")
	builder.WriteString("appointment_sms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentSms))
	builder.WriteString(", ")
	builder.WriteString("appointment_email=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentEmail))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationPrefs is a parsable slice of NotificationPref.
type NotificationPrefs []*NotificationPref
