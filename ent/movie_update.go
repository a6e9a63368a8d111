// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ddevcap/movielist/ent/movie"
	"github.com/ddevcap/movielist/ent/predicate"
)

// MovieUpdate is the builder for updating Movie entities.
type MovieUpdate struct {
	config
	hooks    []Hook
	mutation *MovieMutation
}

// Where appends a list predicates to the MovieUpdate builder.
func (_u *MovieUpdate) Where(ps ...predicate.Movie) *MovieUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *MovieUpdate) SetTitle(v string) *MovieUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MovieUpdate) SetNillableTitle(v *string) *MovieUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *MovieUpdate) SetYear(v int) *MovieUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *MovieUpdate) SetNillableYear(v *int) *MovieUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *MovieUpdate) AddYear(v int) *MovieUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *MovieUpdate) ClearYear() *MovieUpdate {
	_u.mutation.ClearYear()
	return _u
}

// SetDescription sets the "description" field.
func (_u *MovieUpdate) SetDescription(v string) *MovieUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MovieUpdate) SetNillableDescription(v *string) *MovieUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MovieUpdate) ClearDescription() *MovieUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRating sets the "rating" field.
func (_u *MovieUpdate) SetRating(v float64) *MovieUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *MovieUpdate) SetNillableRating(v *float64) *MovieUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *MovieUpdate) AddRating(v float64) *MovieUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *MovieUpdate) ClearRating() *MovieUpdate {
	_u.mutation.ClearRating()
	return _u
}

// SetReview sets the "review" field.
func (_u *MovieUpdate) SetReview(v string) *MovieUpdate {
	_u.mutation.SetReview(v)
	return _u
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (_u *MovieUpdate) SetNillableReview(v *string) *MovieUpdate {
	if v != nil {
		_u.SetReview(*v)
	}
	return _u
}

// ClearReview clears the value of the "review" field.
func (_u *MovieUpdate) ClearReview() *MovieUpdate {
	_u.mutation.ClearReview()
	return _u
}

// SetImgURL sets the "img_url" field.
func (_u *MovieUpdate) SetImgURL(v string) *MovieUpdate {
	_u.mutation.SetImgURL(v)
	return _u
}

// SetNillableImgURL sets the "img_url" field if the given value is not nil.
func (_u *MovieUpdate) SetNillableImgURL(v *string) *MovieUpdate {
	if v != nil {
		_u.SetImgURL(*v)
	}
	return _u
}

// ClearImgURL clears the value of the "img_url" field.
func (_u *MovieUpdate) ClearImgURL() *MovieUpdate {
	_u.mutation.ClearImgURL()
	return _u
}

// Mutation returns the MovieMutation object of the builder.
func (_u *MovieUpdate) Mutation() *MovieMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MovieUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MovieUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MovieUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MovieUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MovieUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := movie.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Movie.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := movie.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Movie.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := movie.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Movie.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Review(); ok {
		if err := movie.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "Movie.review": %w`, err)}
		}
	}
	return nil
}

func (_u *MovieUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(movie.Table, movie.Columns, sqlgraph.NewFieldSpec(movie.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(movie.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(movie.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(movie.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(movie.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(movie.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(movie.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(movie.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(movie.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(movie.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Review(); ok {
		_spec.SetField(movie.FieldReview, field.TypeString, value)
	}
	if _u.mutation.ReviewCleared() {
		_spec.ClearField(movie.FieldReview, field.TypeString)
	}
	if value, ok := _u.mutation.ImgURL(); ok {
		_spec.SetField(movie.FieldImgURL, field.TypeString, value)
	}
	if _u.mutation.ImgURLCleared() {
		_spec.ClearField(movie.FieldImgURL, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{movie.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MovieUpdateOne is the builder for updating a single Movie entity.
type MovieUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MovieMutation
}

// SetTitle sets the "title" field.
func (_u *MovieUpdateOne) SetTitle(v string) *MovieUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MovieUpdateOne) SetNillableTitle(v *string) *MovieUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *MovieUpdateOne) SetYear(v int) *MovieUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *MovieUpdateOne) SetNillableYear(v *int) *MovieUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *MovieUpdateOne) AddYear(v int) *MovieUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *MovieUpdateOne) ClearYear() *MovieUpdateOne {
	_u.mutation.ClearYear()
	return _u
}

// SetDescription sets the "description" field.
func (_u *MovieUpdateOne) SetDescription(v string) *MovieUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MovieUpdateOne) SetNillableDescription(v *string) *MovieUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MovieUpdateOne) ClearDescription() *MovieUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRating sets the "rating" field.
func (_u *MovieUpdateOne) SetRating(v float64) *MovieUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *MovieUpdateOne) SetNillableRating(v *float64) *MovieUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *MovieUpdateOne) AddRating(v float64) *MovieUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *MovieUpdateOne) ClearRating() *MovieUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// SetReview sets the "review" field.
func (_u *MovieUpdateOne) SetReview(v string) *MovieUpdateOne {
	_u.mutation.SetReview(v)
	return _u
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (_u *MovieUpdateOne) SetNillableReview(v *string) *MovieUpdateOne {
	if v != nil {
		_u.SetReview(*v)
	}
	return _u
}

// ClearReview clears the value of the "review" field.
func (_u *MovieUpdateOne) ClearReview() *MovieUpdateOne {
	_u.mutation.ClearReview()
	return _u
}

// SetImgURL sets the "img_url" field.
func (_u *MovieUpdateOne) SetImgURL(v string) *MovieUpdateOne {
	_u.mutation.SetImgURL(v)
	return _u
}

// SetNillableImgURL sets the "img_url" field if the given value is not nil.
func (_u *MovieUpdateOne) SetNillableImgURL(v *string) *MovieUpdateOne {
	if v != nil {
		_u.SetImgURL(*v)
	}
	return _u
}

// ClearImgURL clears the value of the "img_url" field.
func (_u *MovieUpdateOne) ClearImgURL() *MovieUpdateOne {
	_u.mutation.ClearImgURL()
	return _u
}

// Mutation returns the MovieMutation object of the builder.
func (_u *MovieUpdateOne) Mutation() *MovieMutation {
	return _u.mutation
}

// Where appends a list predicates to the MovieUpdate builder.
func (_u *MovieUpdateOne) Where(ps ...predicate.Movie) *MovieUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MovieUpdateOne) Select(field string, fields ...string) *MovieUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Movie entity.
func (_u *MovieUpdateOne) Save(ctx context.Context) (*Movie, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MovieUpdateOne) SaveX(ctx context.Context) *Movie {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MovieUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MovieUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MovieUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := movie.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Movie.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := movie.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Movie.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := movie.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Movie.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Review(); ok {
		if err := movie.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "Movie.review": %w`, err)}
		}
	}
	return nil
}

func (_u *MovieUpdateOne) sqlSave(ctx context.Context) (_node *Movie, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(movie.Table, movie.Columns, sqlgraph.NewFieldSpec(movie.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Movie.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, movie.FieldID)
		for _, f := range fields {
			if !movie.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != movie.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(movie.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(movie.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(movie.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(movie.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(movie.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(movie.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(movie.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(movie.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(movie.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Review(); ok {
		_spec.SetField(movie.FieldReview, field.TypeString, value)
	}
	if _u.mutation.ReviewCleared() {
		_spec.ClearField(movie.FieldReview, field.TypeString)
	}
	if value, ok := _u.mutation.ImgURL(); ok {
		_spec.SetField(movie.FieldImgURL, field.TypeString, value)
	}
	if _u.mutation.ImgURLCleared() {
		_spec.ClearField(movie.FieldImgURL, field.TypeString)
	}
	_node = &Movie{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{movie.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
