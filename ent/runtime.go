// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ddevcap/movielist/ent/movie"
	"github.com/ddevcap/movielist/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	movieFields := schema.Movie{}.Fields()
	_ = movieFields
	// movieDescTitle is the schema descriptor for title field.
	movieDescTitle := movieFields[0].Descriptor()
	// movie.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	movie.TitleValidator = func() func(string) error {
		validators := movieDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// movieDescDescription is the schema descriptor for description field.
	movieDescDescription := movieFields[2].Descriptor()
	// movie.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	movie.DescriptionValidator = movieDescDescription.Validators[0].(func(string) error)
	// movieDescRating is the schema descriptor for rating field.
	movieDescRating := movieFields[3].Descriptor()
	// movie.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	movie.RatingValidator = func() func(float64) error {
		validators := movieDescRating.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(rating float64) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// movieDescReview is the schema descriptor for review field.
	movieDescReview := movieFields[4].Descriptor()
	// movie.ReviewValidator is a validator for the "review" field. It is called by the builders before save.
	movie.ReviewValidator = movieDescReview.Validators[0].(func(string) error)
	// movieDescCreatedAt is the schema descriptor for created_at field.
	movieDescCreatedAt := movieFields[6].Descriptor()
	// movie.DefaultCreatedAt holds the default value on creation for the created_at field.
	movie.DefaultCreatedAt = movieDescCreatedAt.Default.(func() time.Time)
}
