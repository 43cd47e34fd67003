// Code generated by ent, DO NOT EDIT.

package notificationpref

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tenangapp/tenang_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldAccountID, v))
}

// MessagePush applies equality check predicate on the "message_push" field. It's identical to MessagePushEQ.
func MessagePush(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldMessagePush, v))
}

// AppointmentPush applies equality check predicate on the "appointment_push" field. It's identical to AppointmentPushEQ.
func AppointmentPush(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldAppointmentPush, v))
}

// AppointmentSms applies equality check predicate on the "appointment_sms" field. It's identical to AppointmentSmsEQ.
func AppointmentSms(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldAppointmentSms, v))
}

// AppointmentEmail applies equality check predicate on the "appointment_email" field. It's identical to AppointmentEmailEQ.
func AppointmentEmail(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldAppointmentEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLTE(FieldUpdatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLTE(FieldAccountID, v))
}

// MessagePushEQ applies the EQ predicate on the "message_push" field.
func MessagePushEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldMessagePush, v))
}

// MessagePushNEQ applies the NEQ predicate on the "message_push" field.
func MessagePushNEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldMessagePush, v))
}

// AppointmentPushEQ applies the EQ predicate on the "appointment_push" field.
func AppointmentPushEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldAppointmentPush, v))
}

// AppointmentPushNEQ applies the NEQ predicate on the "appointment_push" field.
func AppointmentPushNEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldAppointmentPush, v))
}

// AppointmentSmsEQ applies the EQ predicate on the "appointment_sms" field.
func AppointmentSmsEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldAppointmentSms, v))
}

// AppointmentSmsNEQ applies the NEQ predicate on the "appointment_sms" field.
func AppointmentSmsNEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldAppointmentSms, v))
}

// AppointmentEmailEQ applies the EQ predicate on the "appointment_email" field.
func AppointmentEmailEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldAppointmentEmail, v))
}

// AppointmentEmailNEQ applies the NEQ predicate on the "appointment_email" field.
func AppointmentEmailNEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldAppointmentEmail, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationPref) predicate.NotificationPref {
	return predicate.NotificationPref(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationPref) predicate.NotificationPref {
	return predicate.NotificationPref(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationPref) predicate.NotificationPref {
	return predicate.NotificationPref(sql.NotPredicates(p))
}
