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
	"github.com/tenangapp/tenang_backend/internal/repo/psychologist"
)

// PsychologistCreate is the builder for creating a Psychologist entity.
type PsychologistCreate struct {
	config
	mutation *PsychologistMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PsychologistCreate) SetCreatedAt(v time.Time) *PsychologistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableCreatedAt(v *time.Time) *PsychologistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PsychologistCreate) SetUpdatedAt(v time.Time) *PsychologistCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableUpdatedAt(v *time.Time) *PsychologistCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *PsychologistCreate) SetDisplayName(v string) *PsychologistCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PsychologistCreate) SetTitle(v string) *PsychologistCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableTitle(v *string) *PsychologistCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *PsychologistCreate) SetEmail(v string) *PsychologistCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableEmail(v *string) *PsychologistCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PsychologistCreate) SetPhone(v string) *PsychologistCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillablePhone(v *string) *PsychologistCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PsychologistCreate) SetIsActive(v bool) *PsychologistCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableIsActive(v *bool) *PsychologistCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PsychologistCreate) SetID(v uuid.UUID) *PsychologistCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableID(v *uuid.UUID) *PsychologistCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PsychologistMutation object of the builder.
func (_c *PsychologistCreate) Mutation() *PsychologistMutation {
	return _c.mutation
}

// Save creates the Psychologist in the database.
func (_c *PsychologistCreate) Save(ctx context.Context) (*Psychologist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PsychologistCreate) SaveX(ctx context.Context) *Psychologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PsychologistCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := psychologist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := psychologist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := psychologist.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := psychologist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PsychologistCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Psychologist.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Psychologist.updated_at"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`repo: missing required field "Psychologist.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := psychologist.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Psychologist.display_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := psychologist.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Psychologist.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := psychologist.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Psychologist.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := psychologist.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Psychologist.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Psychologist.is_active"`)}
	}
	return nil
}

func (_c *PsychologistCreate) sqlSave(ctx context.Context) (*Psychologist, error) {
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

func (_c *PsychologistCreate) createSpec() (*Psychologist, *sqlgraph.CreateSpec) {
	var (
		_node = &Psychologist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(psychologist.Table, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(psychologist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(psychologist.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(psychologist.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(psychologist.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(psychologist.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(psychologist.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Psychologist.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistCreate) OnConflict(opts ...sql.ConflictOption) *PsychologistUpsertOne {
	_c.conflict = opts
	return &PsychologistUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistCreate) OnConflictColumns(columns ...string) *PsychologistUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistUpsertOne{
		create: _c,
	}
}

type (
	// PsychologistUpsertOne is the builder for "upsert"-ing
	//  one Psychologist node.
	PsychologistUpsertOne struct {
		create *PsychologistCreate
	}

	// PsychologistUpsert is the "OnConflict" setter.
	PsychologistUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistUpsert) SetUpdatedAt(v time.Time) *PsychologistUpsert {
	u.Set(psychologist.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateUpdatedAt() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldUpdatedAt)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *PsychologistUpsert) SetDisplayName(v string) *PsychologistUpsert {
	u.Set(psychologist.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateDisplayName() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldDisplayName)
	return u
}

// SetTitle sets the "title" field.
func (u *PsychologistUpsert) SetTitle(v string) *PsychologistUpsert {
	u.Set(psychologist.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateTitle() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *PsychologistUpsert) ClearTitle() *PsychologistUpsert {
	u.SetNull(psychologist.FieldTitle)
	return u
}

// SetEmail sets the "email" field.
func (u *PsychologistUpsert) SetEmail(v string) *PsychologistUpsert {
	u.Set(psychologist.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateEmail() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *PsychologistUpsert) ClearEmail() *PsychologistUpsert {
	u.SetNull(psychologist.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *PsychologistUpsert) SetPhone(v string) *PsychologistUpsert {
	u.Set(psychologist.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdatePhone() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *PsychologistUpsert) ClearPhone() *PsychologistUpsert {
	u.SetNull(psychologist.FieldPhone)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *PsychologistUpsert) SetIsActive(v bool) *PsychologistUpsert {
	u.Set(psychologist.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateIsActive() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologist.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistUpsertOne) UpdateNewValues() *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(psychologist.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(psychologist.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PsychologistUpsertOne) Ignore() *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistUpsertOne) DoNothing() *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistCreate.OnConflict
// documentation for more info.
func (u *PsychologistUpsertOne) Update(set func(*PsychologistUpsert)) *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistUpsertOne) SetUpdatedAt(v time.Time) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateUpdatedAt() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *PsychologistUpsertOne) SetDisplayName(v string) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateDisplayName() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateDisplayName()
	})
}

// SetTitle sets the "title" field.
func (u *PsychologistUpsertOne) SetTitle(v string) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateTitle() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *PsychologistUpsertOne) ClearTitle() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearTitle()
	})
}

// SetEmail sets the "email" field.
func (u *PsychologistUpsertOne) SetEmail(v string) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateEmail() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *PsychologistUpsertOne) ClearEmail() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *PsychologistUpsertOne) SetPhone(v string) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdatePhone() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PsychologistUpsertOne) ClearPhone() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearPhone()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PsychologistUpsertOne) SetIsActive(v bool) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateIsActive() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *PsychologistUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PsychologistUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PsychologistUpsertOne.ID is not supported by MySQL driver. Use PsychologistUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PsychologistUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PsychologistCreateBulk is the builder for creating many Psychologist entities in bulk.
type PsychologistCreateBulk struct {
	config
	err      error
	builders []*PsychologistCreate
	conflict []sql.ConflictOption
}

// Save creates the Psychologist entities in the database.
func (_c *PsychologistCreateBulk) Save(ctx context.Context) ([]*Psychologist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Psychologist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PsychologistMutation)
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
func (_c *PsychologistCreateBulk) SaveX(ctx context.Context) []*Psychologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Psychologist.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistCreateBulk) OnConflict(opts ...sql.ConflictOption) *PsychologistUpsertBulk {
	_c.conflict = opts
	return &PsychologistUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistCreateBulk) OnConflictColumns(columns ...string) *PsychologistUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistUpsertBulk{
		create: _c,
	}
}

// PsychologistUpsertBulk is the builder for "upsert"-ing
// a bulk of Psychologist nodes.
type PsychologistUpsertBulk struct {
	create *PsychologistCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologist.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistUpsertBulk) UpdateNewValues() *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(psychologist.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(psychologist.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PsychologistUpsertBulk) Ignore() *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistUpsertBulk) DoNothing() *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistCreateBulk.OnConflict
// documentation for more info.
func (u *PsychologistUpsertBulk) Update(set func(*PsychologistUpsert)) *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistUpsertBulk) SetUpdatedAt(v time.Time) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateUpdatedAt() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *PsychologistUpsertBulk) SetDisplayName(v string) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateDisplayName() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateDisplayName()
	})
}

// SetTitle sets the "title" field.
func (u *PsychologistUpsertBulk) SetTitle(v string) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateTitle() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *PsychologistUpsertBulk) ClearTitle() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearTitle()
	})
}

// SetEmail sets the "email" field.
func (u *PsychologistUpsertBulk) SetEmail(v string) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateEmail() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *PsychologistUpsertBulk) ClearEmail() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *PsychologistUpsertBulk) SetPhone(v string) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdatePhone() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PsychologistUpsertBulk) ClearPhone() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearPhone()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PsychologistUpsertBulk) SetIsActive(v bool) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateIsActive() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *PsychologistUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PsychologistCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
