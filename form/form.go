// Package form binds and validates the two HTML forms of the application.
package form

import (
	"errors"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const maxReviewLen = 250

var (
	minRating = decimal.Zero
	maxRating = decimal.NewFromInt(10)

	errRequired    = validation.NewError("validation_required", "This field is required.")
	errNotDecimal  = validation.NewError("validation_decimal", "Not a valid decimal value.")
	errRatingRange = validation.NewError("validation_rating_range", "Number must be between 0 and 10.")
	errReviewLong  = validation.NewError("validation_review_length", "Field cannot be longer than 250 characters.")
)

// Errors maps a form field name to its message. A nil Errors means the form
// is valid.
type Errors map[string]string

// AddMovieForm is submitted from the add page with the title to search for.
type AddMovieForm struct {
	Title string `form:"title" json:"title"`
}

// Validate trims the title and checks it is present.
func (f *AddMovieForm) Validate() Errors {
	f.Title = strings.TrimSpace(f.Title)
	return toErrors(validation.ValidateStruct(f,
		validation.Field(&f.Title, validation.Required.ErrorObject(errRequired)),
	))
}

// RateMovieForm is submitted from the edit page.
type RateMovieForm struct {
	Rating string `form:"rating" json:"rating"`
	Review string `form:"review" json:"review"`

	rating decimal.Decimal
}

// NewRateMovieForm pre-fills the form from a stored rating and review, either
// of which may be absent.
func NewRateMovieForm(rating *float64, review *string) RateMovieForm {
	var f RateMovieForm
	if rating != nil {
		f.Rating = decimal.NewFromFloat(*rating).StringFixed(1)
	}
	if review != nil {
		f.Review = *review
	}
	return f
}

// Validate parses the rating as a decimal within [0, 10] and checks the
// review is present.
func (f *RateMovieForm) Validate() Errors {
	f.Rating = strings.TrimSpace(f.Rating)
	f.Review = strings.TrimSpace(f.Review)
	return toErrors(validation.ValidateStruct(f,
		validation.Field(&f.Rating,
			validation.Required.ErrorObject(errRequired),
			validation.By(f.parseRating),
		),
		validation.Field(&f.Review,
			validation.Required.ErrorObject(errRequired),
			validation.By(func(any) error {
				if utf8.RuneCountInString(f.Review) > maxReviewLen {
					return errReviewLong
				}
				return nil
			}),
		),
	))
}

func (f *RateMovieForm) parseRating(any) error {
	d, err := decimal.NewFromString(f.Rating)
	if err != nil {
		return errNotDecimal
	}
	if d.LessThan(minRating) || d.GreaterThan(maxRating) {
		return errRatingRange
	}
	f.rating = d
	return nil
}

// Value returns the validated rating rounded to one decimal place. Only
// meaningful after Validate returned no errors.
func (f *RateMovieForm) Value() float64 {
	return f.rating.Round(1).InexactFloat64()
}

func toErrors(err error) Errors {
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if errors.As(err, &ve) {
		out := make(Errors, len(ve))
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
		return out
	}
	return Errors{"form": err.Error()}
}
