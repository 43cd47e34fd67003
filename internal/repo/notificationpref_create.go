// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tenangapp/tenang_backend/internal/repo/notificationpref"
)

// NotificationPrefCreate is the builder for creating a NotificationPref entity.
type NotificationPrefCreate struct {
	config
	mutation *NotificationPrefMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationPrefCreate) SetCreatedAt(v time.Time) *NotificationPrefCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableCreatedAt(v *time.Time) *NotificationPrefCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NotificationPrefCreate) SetUpdatedAt(v time.Time) *NotificationPrefCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableUpdatedAt(v *time.Time) *NotificationPrefCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *NotificationPrefCreate) SetAccountID(v uuid.UUID) *NotificationPrefCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetMessagePush sets the "message_push" field.
func (_c *NotificationPrefCreate) SetMessagePush(v bool) *NotificationPrefCreate {
	_c.mutation.SetMessagePush(v)
	return _c
}

// SetNillableMessagePush sets the "message_push" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableMessagePush(v *bool) *NotificationPrefCreate {
	if v != nil {
		_c.SetMessagePush(*v)
	}
	return _c
}

// SetAppointmentPush sets the "appointment_push" field.
func (_c *NotificationPrefCreate) SetAppointmentPush(v bool) *NotificationPrefCreate {
	_c.mutation.SetAppointmentPush(v)
	return _c
}

// SetNillableAppointmentPush sets the "appointment_push" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableAppointmentPush(v *bool) *NotificationPrefCreate {
	if v != nil {
		_c.SetAppointmentPush(*v)
	}
	return _c
}

// SetAppointmentSms sets the "appointment_sms" field.
func (_c *NotificationPrefCreate) SetAppointmentSms(v bool) *NotificationPrefCreate {
	_c.mutation.SetAppointmentSms(v)
	return _c
}

// SetNillableAppointmentSms sets the "appointment_sms" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableAppointmentSms(v *bool) *NotificationPrefCreate {
	if v != nil {
		_c.SetAppointmentSms(*v)
	}
	return _c
}

// SetAppointmentEmail sets the "appointment_email" field.
func (_c *NotificationPrefCreate) SetAppointmentEmail(v bool) *NotificationPrefCreate {
	_c.mutation.SetAppointmentEmail(v)
	return _c
}

// SetNillableAppointmentEmail sets the "appointment_email" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableAppointmentEmail(v *bool) *NotificationPrefCreate {
	if v != nil {
		_c.SetAppointmentEmail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationPrefCreate) SetID(v uuid.UUID) *NotificationPrefCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableID(v *uuid.UUID) *NotificationPrefCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the NotificationPrefMutation object of the builder.
func (_c *NotificationPrefCreate) Mutation() *NotificationPrefMutation {
	return _c.mutation
}

// Save creates the NotificationPref in the database.
func (_c *NotificationPrefCreate) Save(ctx context.Context) (*NotificationPref, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationPrefCreate) SaveX(ctx context.Context) *NotificationPref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPrefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPrefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationPrefCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationpref.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notificationpref.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MessagePush(); !ok {
		v := notificationpref.DefaultMessagePush
		_c.mutation.SetMessagePush(v)
	}
	if _, ok := _c.mutation.AppointmentPush(); !ok {
		v := notificationpref.DefaultAppointmentPush
		_c.mutation.SetAppointmentPush(v)
	}
	if _, ok := _c.mutation.AppointmentSms(); !ok {
		v := notificationpref.DefaultAppointmentSms
		_c.mutation.SetAppointmentSms(v)
	}
	if _, ok := _c.mutation.AppointmentEmail(); !ok {
		v := notificationpref.DefaultAppointmentEmail
		_c.mutation.SetAppointmentEmail(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := notificationpref.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationPrefCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "NotificationPref.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "NotificationPref.updated_at"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`repo: missing required field "NotificationPref.account_id"`)}
	}
	if _, ok := _c.mutation.MessagePush(); !ok {
		return &ValidationError{Name: "message_push", err: errors.New(`repo: missing required field "NotificationPref.message_push"`)}
	}
	if _, ok := _c.mutation.AppointmentPush(); !ok {
		return &ValidationError{Name: "appointment_push", err: errors.New(`repo: missing required field "NotificationPref.appointment_push"`)}
	}
	if _, ok := _c.mutation.AppointmentSms(); !ok {
		return &ValidationError{Name: "appointment_sms", err: errors.New(`repo: missing required field "NotificationPref.appointment_sms"`)}
	}
	if _, ok := _c.mutation.AppointmentEmail(); !ok {
		return &ValidationError{Name: "appointment_email", err: errors.New(`repo: missing required field "NotificationPref.appointment_email"`)}
	}
	return nil
}

func (_c *NotificationPrefCreate) sqlSave(ctx context.Context) (*NotificationPref, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationPrefCreate) createSpec() (*NotificationPref, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationPref{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationpref.Table, sqlgraph.NewFieldSpec(notificationpref.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationpref.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpref.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(notificationpref.FieldAccountID, field.TypeUUID, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.MessagePush(); ok {
		_spec.SetField(notificationpref.FieldMessagePush, field.TypeBool, value)
		_node.MessagePush = value
	}
	if value, ok := _c.mutation.AppointmentPush(); ok {
		_spec.SetField(notificationpref.FieldAppointmentPush, field.TypeBool, value)
		_node.AppointmentPush = value
	}
	if value, ok := _c.mutation.AppointmentSms(); ok {
		_spec.SetField(notificationpref.FieldAppointmentSms, field.TypeBool, value)
		_node.AppointmentSms = value
	}
	if value, ok := _c.mutation.AppointmentEmail(); ok {
		_spec.SetField(notificationpref.FieldAppointmentEmail, field.TypeBool, value)
		_node.AppointmentEmail = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NotificationPref.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationPrefUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationPrefCreate) OnConflict(opts ...sql.ConflictOption) *NotificationPrefUpsertOne {
	_c.conflict = opts
	return &NotificationPrefUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationPrefCreate) OnConflictColumns(columns ...string) *NotificationPrefUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationPrefUpsertOne{
		create: _c,
	}
}

type (
	// NotificationPrefUpsertOne is the builder for "upsert"-ing
	//  one NotificationPref node.
	NotificationPrefUpsertOne struct {
		create *NotificationPrefCreate
	}

	// NotificationPrefUpsert is the "OnConflict" setter.
	NotificationPrefUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *NotificationPrefUpsert) SetUpdatedAt(v time.Time) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateUpdatedAt() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldUpdatedAt)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *NotificationPrefUpsert) SetAccountID(v uuid.UUID) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateAccountID() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldAccountID)
	return u
}

// SetMessagePush sets the "message_push" field.
func (u *NotificationPrefUpsert) SetMessagePush(v bool) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldMessagePush, v)
	return u
}

// UpdateMessagePush sets the "message_push" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateMessagePush() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldMessagePush)
	return u
}

// SetAppointmentPush sets the "appointment_push" field.
func (u *NotificationPrefUpsert) SetAppointmentPush(v bool) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldAppointmentPush, v)
	return u
}

// UpdateAppointmentPush sets the "appointment_push" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateAppointmentPush() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldAppointmentPush)
	return u
}

// SetAppointmentSms sets the "appointment_sms" field.
func (u *NotificationPrefUpsert) SetAppointmentSms(v bool) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldAppointmentSms, v)
	return u
}

// UpdateAppointmentSms sets the "appointment_sms" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateAppointmentSms() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldAppointmentSms)
	return u
}

// SetAppointmentEmail sets the "appointment_email" field.
func (u *NotificationPrefUpsert) SetAppointmentEmail(v bool) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldAppointmentEmail, v)
	return u
}

// UpdateAppointmentEmail sets the "appointment_email" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateAppointmentEmail() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldAppointmentEmail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notificationpref.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationPrefUpsertOne) UpdateNewValues() *NotificationPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(notificationpref.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(notificationpref.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *NotificationPrefUpsertOne) Ignore() *NotificationPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationPrefUpsertOne) DoNothing() *NotificationPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationPrefCreate.OnConflict
// documentation for more info.
func (u *NotificationPrefUpsertOne) Update(set func(*NotificationPrefUpsert)) *NotificationPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationPrefUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *NotificationPrefUpsertOne) SetUpdatedAt(v time.Time) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateUpdatedAt() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAccountID sets the "account_id" field.
func (u *NotificationPrefUpsertOne) SetAccountID(v uuid.UUID) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateAccountID() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateAccountID()
	})
}

// SetMessagePush sets the "message_push" field.
func (u *NotificationPrefUpsertOne) SetMessagePush(v bool) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetMessagePush(v)
	})
}

// UpdateMessagePush sets the "message_push" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateMessagePush() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateMessagePush()
	})
}

// SetAppointmentPush sets the "appointment_push" field.
func (u *NotificationPrefUpsertOne) SetAppointmentPush(v bool) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetAppointmentPush(v)
	})
}

// UpdateAppointmentPush sets the "appointment_push" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateAppointmentPush() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateAppointmentPush()
	})
}

// SetAppointmentSms sets the "appointment_sms" field.
func (u *NotificationPrefUpsertOne) SetAppointmentSms(v bool) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetAppointmentSms(v)
	})
}

// UpdateAppointmentSms sets the "appointment_sms" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateAppointmentSms() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateAppointmentSms()
	})
}

// SetAppointmentEmail sets the "appointment_email" field.
func (u *NotificationPrefUpsertOne) SetAppointmentEmail(v bool) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetAppointmentEmail(v)
	})
}

// UpdateAppointmentEmail sets the "appointment_email" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateAppointmentEmail() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateAppointmentEmail()
	})
}

// Exec executes the query.
func (u *NotificationPrefUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for NotificationPrefCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationPrefUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *NotificationPrefUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: NotificationPrefUpsertOne.ID is not supported by MySQL driver. Use NotificationPrefUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *NotificationPrefUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// NotificationPrefCreateBulk is the builder for creating many NotificationPref entities in bulk.
type NotificationPrefCreateBulk struct {
	config
	err      error
	builders []*NotificationPrefCreate
	conflict []sql.ConflictOption
}

// Save creates the NotificationPref entities in the database.
func (_c *NotificationPrefCreateBulk) Save(ctx context.Context) ([]*NotificationPref, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationPref, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationPrefMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NotificationPrefCreateBulk) SaveX(ctx context.Context) []*NotificationPref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPrefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPrefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NotificationPref.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationPrefUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationPrefCreateBulk) OnConflict(opts ...sql.ConflictOption) *NotificationPrefUpsertBulk {
	_c.conflict = opts
	return &NotificationPrefUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationPrefCreateBulk) OnConflictColumns(columns ...string) *NotificationPrefUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationPrefUpsertBulk{
		create: _c,
	}
}

// NotificationPrefUpsertBulk is the builder for "upsert"-ing
// a bulk of NotificationPref nodes.
type NotificationPrefUpsertBulk struct {
	create *NotificationPrefCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notificationpref.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationPrefUpsertBulk) UpdateNewValues() *NotificationPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(notificationpref.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(notificationpref.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *NotificationPrefUpsertBulk) Ignore() *NotificationPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationPrefUpsertBulk) DoNothing() *NotificationPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationPrefCreateBulk.OnConflict
// documentation for more info.
func (u *NotificationPrefUpsertBulk) Update(set func(*NotificationPrefUpsert)) *NotificationPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationPrefUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *NotificationPrefUpsertBulk) SetUpdatedAt(v time.Time) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateUpdatedAt() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAccountID sets the "account_id" field.
func (u *NotificationPrefUpsertBulk) SetAccountID(v uuid.UUID) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateAccountID() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateAccountID()
	})
}

// SetMessagePush sets the "message_push" field.
func (u *NotificationPrefUpsertBulk) SetMessagePush(v bool) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetMessagePush(v)
	})
}

// UpdateMessagePush sets the "message_push" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateMessagePush() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateMessagePush()
	})
}

// SetAppointmentPush sets the "appointment_push" field.
func (u *NotificationPrefUpsertBulk) SetAppointmentPush(v bool) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetAppointmentPush(v)
	})
}

// UpdateAppointmentPush sets the "appointment_push" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateAppointmentPush() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateAppointmentPush()
	})
}

// SetAppointmentSms sets the "appointment_sms" field.
func (u *NotificationPrefUpsertBulk) SetAppointmentSms(v bool) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetAppointmentSms(v)
	})
}

// UpdateAppointmentSms sets the "appointment_sms" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateAppointmentSms() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateAppointmentSms()
	})
}

// SetAppointmentEmail sets the "appointment_email" field.
func (u *NotificationPrefUpsertBulk) SetAppointmentEmail(v bool) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetAppointmentEmail(v)
	})
}

// UpdateAppointmentEmail sets the "appointment_email" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateAppointmentEmail() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateAppointmentEmail()
	})
}

// Exec executes the query.
func (u *NotificationPrefUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the NotificationPrefCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for NotificationPrefCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationPrefUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
