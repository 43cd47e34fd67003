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
	"github.com/tenangapp/tenang_backend/internal/repo/predicate"
	"github.com/tenangapp/tenang_backend/internal/repo/psychologist"
)

// PsychologistUpdate is the builder for updating Psychologist entities.
type PsychologistUpdate struct {
	config
	hooks    []Hook
	mutation *PsychologistMutation
}

// Where appends a list predicates to the PsychologistUpdate builder.
func (_u *PsychologistUpdate) Where(ps ...predicate.Psychologist) *PsychologistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistUpdate) SetUpdatedAt(v time.Time) *PsychologistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PsychologistUpdate) SetDisplayName(v string) *PsychologistUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableDisplayName(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PsychologistUpdate) SetTitle(v string) *PsychologistUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableTitle(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *PsychologistUpdate) ClearTitle() *PsychologistUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PsychologistUpdate) SetEmail(v string) *PsychologistUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableEmail(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PsychologistUpdate) ClearEmail() *PsychologistUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PsychologistUpdate) SetPhone(v string) *PsychologistUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillablePhone(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PsychologistUpdate) ClearPhone() *PsychologistUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PsychologistUpdate) SetIsActive(v bool) *PsychologistUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableIsActive(v *bool) *PsychologistUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the PsychologistMutation object of the builder.
func (_u *PsychologistUpdate) Mutation() *PsychologistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PsychologistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PsychologistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistUpdate) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := psychologist.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Psychologist.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := psychologist.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Psychologist.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := psychologist.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Psychologist.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := psychologist.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Psychologist.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *PsychologistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologist.Table, psychologist.Columns, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(psychologist.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(psychologist.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(psychologist.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(psychologist.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(psychologist.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(psychologist.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(psychologist.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(psychologist.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PsychologistUpdateOne is the builder for updating a single Psychologist entity.
type PsychologistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PsychologistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistUpdateOne) SetUpdatedAt(v time.Time) *PsychologistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PsychologistUpdateOne) SetDisplayName(v string) *PsychologistUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableDisplayName(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PsychologistUpdateOne) SetTitle(v string) *PsychologistUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableTitle(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *PsychologistUpdateOne) ClearTitle() *PsychologistUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PsychologistUpdateOne) SetEmail(v string) *PsychologistUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableEmail(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PsychologistUpdateOne) ClearEmail() *PsychologistUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PsychologistUpdateOne) SetPhone(v string) *PsychologistUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillablePhone(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PsychologistUpdateOne) ClearPhone() *PsychologistUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PsychologistUpdateOne) SetIsActive(v bool) *PsychologistUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableIsActive(v *bool) *PsychologistUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the PsychologistMutation object of the builder.
func (_u *PsychologistUpdateOne) Mutation() *PsychologistMutation {
	return _u.mutation
}

// Where appends a list predicates to the PsychologistUpdate builder.
func (_u *PsychologistUpdateOne) Where(ps ...predicate.Psychologist) *PsychologistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PsychologistUpdateOne) Select(field string, fields ...string) *PsychologistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Psychologist entity.
func (_u *PsychologistUpdateOne) Save(ctx context.Context) (*Psychologist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistUpdateOne) SaveX(ctx context.Context) *Psychologist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PsychologistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := psychologist.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Psychologist.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := psychologist.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Psychologist.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := psychologist.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Psychologist.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := psychologist.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Psychologist.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *PsychologistUpdateOne) sqlSave(ctx context.Context) (_node *Psychologist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologist.Table, psychologist.Columns, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Psychologist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, psychologist.FieldID)
		for _, f := range fields {
			if !psychologist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != psychologist.FieldID {
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
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(psychologist.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(psychologist.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(psychologist.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(psychologist.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(psychologist.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(psychologist.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(psychologist.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(psychologist.FieldIsActive, field.TypeBool, value)
	}
	_node = &Psychologist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
