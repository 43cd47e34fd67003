// Code generated by ent, DO NOT EDIT.

package userdevice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tenangapp/tenang_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldCreatedAt, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldAccountID, v))
}

// DeviceToken applies equality check predicate on the "device_token" field. It's identical to DeviceTokenEQ.
func DeviceToken(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldDeviceToken, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldLTE(FieldCreatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v uuid.UUID) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldLTE(FieldAccountID, v))
}

// AccountRoleEQ applies the EQ predicate on the "account_role" field.
func AccountRoleEQ(v AccountRole) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldAccountRole, v))
}

// AccountRoleNEQ applies the NEQ predicate on the "account_role" field.
func AccountRoleNEQ(v AccountRole) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNEQ(FieldAccountRole, v))
}

// AccountRoleIn applies the In predicate on the "account_role" field.
func AccountRoleIn(vs ...AccountRole) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldIn(FieldAccountRole, vs...))
}

// AccountRoleNotIn applies the NotIn predicate on the "account_role" field.
func AccountRoleNotIn(vs ...AccountRole) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNotIn(FieldAccountRole, vs...))
}

// DeviceTokenEQ applies the EQ predicate on the "device_token" field.
func DeviceTokenEQ(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldDeviceToken, v))
}

// DeviceTokenNEQ applies the NEQ predicate on the "device_token" field.
func DeviceTokenNEQ(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNEQ(FieldDeviceToken, v))
}

// DeviceTokenIn applies the In predicate on the "device_token" field.
func DeviceTokenIn(vs ...string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldIn(FieldDeviceToken, vs...))
}

// DeviceTokenNotIn applies the NotIn predicate on the "device_token" field.
func DeviceTokenNotIn(vs ...string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNotIn(FieldDeviceToken, vs...))
}

// DeviceTokenGT applies the GT predicate on the "device_token" field.
func DeviceTokenGT(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldGT(FieldDeviceToken, v))
}

// DeviceTokenGTE applies the GTE predicate on the "device_token" field.
func DeviceTokenGTE(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldGTE(FieldDeviceToken, v))
}

// DeviceTokenLT applies the LT predicate on the "device_token" field.
func DeviceTokenLT(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldLT(FieldDeviceToken, v))
}

// DeviceTokenLTE applies the LTE predicate on the "device_token" field.
func DeviceTokenLTE(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldLTE(FieldDeviceToken, v))
}

// DeviceTokenContains applies the Contains predicate on the "device_token" field.
func DeviceTokenContains(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldContains(FieldDeviceToken, v))
}

// DeviceTokenHasPrefix applies the HasPrefix predicate on the "device_token" field.
func DeviceTokenHasPrefix(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldHasPrefix(FieldDeviceToken, v))
}

// DeviceTokenHasSuffix applies the HasSuffix predicate on the "device_token" field.
func DeviceTokenHasSuffix(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldHasSuffix(FieldDeviceToken, v))
}

// DeviceTokenEqualFold applies the EqualFold predicate on the "device_token" field.
func DeviceTokenEqualFold(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEqualFold(FieldDeviceToken, v))
}

// DeviceTokenContainsFold applies the ContainsFold predicate on the "device_token" field.
func DeviceTokenContainsFold(v string) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldContainsFold(FieldDeviceToken, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v Platform) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v Platform) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...Platform) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...Platform) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNotIn(FieldPlatform, vs...))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.UserDevice {
	return predicate.UserDevice(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserDevice) predicate.UserDevice {
	return predicate.UserDevice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserDevice) predicate.UserDevice {
	return predicate.UserDevice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserDevice) predicate.UserDevice {
	return predicate.UserDevice(sql.NotPredicates(p))
}
