// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tenangapp/tenang_backend/internal/repo/notificationpref"
	"github.com/tenangapp/tenang_backend/internal/repo/predicate"
)

// NotificationPrefUpdate is the builder for updating NotificationPref entities.
type NotificationPrefUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationPrefMutation
}

// Where appends a list predicates to the NotificationPrefUpdate builder.
func (_u *NotificationPrefUpdate) Where(ps ...predicate.NotificationPref) *NotificationPrefUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPrefUpdate) SetUpdatedAt(v time.Time) *NotificationPrefUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *NotificationPrefUpdate) SetAccountID(v uuid.UUID) *NotificationPrefUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *NotificationPrefUpdate) SetNillableAccountID(v *uuid.UUID) *NotificationPrefUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetMessagePush sets the "message_push" field.
func (_u *NotificationPrefUpdate) SetMessagePush(v bool) *NotificationPrefUpdate {
	_u.mutation.SetMessagePush(v)
	return _u
}

// SetNillableMessagePush sets the "message_push" field if the given value is not nil.
func (_u *NotificationPrefUpdate) SetNillableMessagePush(v *bool) *NotificationPrefUpdate {
	if v != nil {
		_u.SetMessagePush(*v)
	}
	return _u
}

// SetAppointmentPush sets the "appointment_push" field.
func (_u *NotificationPrefUpdate) SetAppointmentPush(v bool) *NotificationPrefUpdate {
	_u.mutation.SetAppointmentPush(v)
	return _u
}

// SetNillableAppointmentPush sets the "appointment_push" field if the given value is not nil.
func (_u *NotificationPrefUpdate) SetNillableAppointmentPush(v *bool) *NotificationPrefUpdate {
	if v != nil {
		_u.SetAppointmentPush(*v)
	}
	return _u
}

// SetAppointmentSms sets the "appointment_sms" field.
func (_u *NotificationPrefUpdate) SetAppointmentSms(v bool) *NotificationPrefUpdate {
	_u.mutation.SetAppointmentSms(v)
	return _u
}

// SetNillableAppointmentSms sets the "appointment_sms" field if the given value is not nil.
func (_u *NotificationPrefUpdate) SetNillableAppointmentSms(v *bool) *NotificationPrefUpdate {
	if v != nil {
		_u.SetAppointmentSms(*v)
	}
	return _u
}

// SetAppointmentEmail sets the "appointment_email" field.
func (_u *NotificationPrefUpdate) SetAppointmentEmail(v bool) *NotificationPrefUpdate {
	_u.mutation.SetAppointmentEmail(v)
	return _u
}

// SetNillableAppointmentEmail sets the "appointment_email" field if the given value is not nil.
func (_u *NotificationPrefUpdate) SetNillableAppointmentEmail(v *bool) *NotificationPrefUpdate {
	if v != nil {
		_u.SetAppointmentEmail(*v)
	}
	return _u
}

// Mutation returns the NotificationPrefMutation object of the builder.
func (_u *NotificationPrefUpdate) Mutation() *NotificationPrefMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationPrefUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPrefUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationPrefUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPrefUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPrefUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpref.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NotificationPrefUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(notificationpref.Table, notificationpref.Columns, sqlgraph.NewFieldSpec(notificationpref.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpref.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(notificationpref.FieldAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MessagePush(); ok {
		_spec.SetField(notificationpref.FieldMessagePush, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentPush(); ok {
		_spec.SetField(notificationpref.FieldAppointmentPush, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentSms(); ok {
		_spec.SetField(notificationpref.FieldAppointmentSms, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentEmail(); ok {
		_spec.SetField(notificationpref.FieldAppointmentEmail, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpref.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationPrefUpdateOne is the builder for updating a single NotificationPref entity.
type NotificationPrefUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationPrefMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPrefUpdateOne) SetUpdatedAt(v time.Time) *NotificationPrefUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *NotificationPrefUpdateOne) SetAccountID(v uuid.UUID) *NotificationPrefUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *NotificationPrefUpdateOne) SetNillableAccountID(v *uuid.UUID) *NotificationPrefUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetMessagePush sets the "message_push" field.
func (_u *NotificationPrefUpdateOne) SetMessagePush(v bool) *NotificationPrefUpdateOne {
	_u.mutation.SetMessagePush(v)
	return _u
}

// SetNillableMessagePush sets the "message_push" field if the given value is not nil.
func (_u *NotificationPrefUpdateOne) SetNillableMessagePush(v *bool) *NotificationPrefUpdateOne {
	if v != nil {
		_u.SetMessagePush(*v)
	}
	return _u
}

// SetAppointmentPush sets the "appointment_push" field.
func (_u *NotificationPrefUpdateOne) SetAppointmentPush(v bool) *NotificationPrefUpdateOne {
	_u.mutation.SetAppointmentPush(v)
	return _u
}

// SetNillableAppointmentPush sets the "appointment_push" field if the given value is not nil.
func (_u *NotificationPrefUpdateOne) SetNillableAppointmentPush(v *bool) *NotificationPrefUpdateOne {
	if v != nil {
		_u.SetAppointmentPush(*v)
	}
	return _u
}

// SetAppointmentSms sets the "appointment_sms" field.
func (_u *NotificationPrefUpdateOne) SetAppointmentSms(v bool) *NotificationPrefUpdateOne {
	_u.mutation.SetAppointmentSms(v)
	return _u
}

// SetNillableAppointmentSms sets the "appointment_sms" field if the given value is not nil.
func (_u *NotificationPrefUpdateOne) SetNillableAppointmentSms(v *bool) *NotificationPrefUpdateOne {
	if v != nil {
		_u.SetAppointmentSms(*v)
	}
	return _u
}

// SetAppointmentEmail sets the "appointment_email" field.
func (_u *NotificationPrefUpdateOne) SetAppointmentEmail(v bool) *NotificationPrefUpdateOne {
	_u.mutation.SetAppointmentEmail(v)
	return _u
}

// SetNillableAppointmentEmail sets the "appointment_email" field if the given value is not nil.
func (_u *NotificationPrefUpdateOne) SetNillableAppointmentEmail(v *bool) *NotificationPrefUpdateOne {
	if v != nil {
		_u.SetAppointmentEmail(*v)
	}
	return _u
}

// Mutation returns the NotificationPrefMutation object of the builder.
func (_u *NotificationPrefUpdateOne) Mutation() *NotificationPrefMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationPrefUpdate builder.
func (_u *NotificationPrefUpdateOne) Where(ps ...predicate.NotificationPref) *NotificationPrefUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationPrefUpdateOne) Select(field string, fields ...string) *NotificationPrefUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationPref entity.
func (_u *NotificationPrefUpdateOne) Save(ctx context.Context) (*NotificationPref, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPrefUpdateOne) SaveX(ctx context.Context) *NotificationPref {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationPrefUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPrefUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPrefUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpref.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NotificationPrefUpdateOne) sqlSave(ctx context.Context) (_node *NotificationPref, err error) {
	_spec := sqlgraph.NewUpdateSpec(notificationpref.Table, notificationpref.Columns, sqlgraph.NewFieldSpec(notificationpref.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "NotificationPref.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationpref.FieldID)
		for _, f := range fields {
			if !notificationpref.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != notificationpref.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpref.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(notificationpref.FieldAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MessagePush(); ok {
		_spec.SetField(notificationpref.FieldMessagePush, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentPush(); ok {
		_spec.SetField(notificationpref.FieldAppointmentPush, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentSms(); ok {
		_spec.SetField(notificationpref.FieldAppointmentSms, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentEmail(); ok {
		_spec.SetField(notificationpref.FieldAppointmentEmail, field.TypeBool, value)
	}
	_node = &NotificationPref{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpref.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
