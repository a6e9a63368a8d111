package store

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/movielist/ent"
)

var _ = Describe("mapEntError", func() {
	It("turns ent validator failures into a readable ValidationError", func() {
		err := mapEntError("creating movie", fmt.Errorf("save: %w", &ent.ValidationError{Name: "description"}))

		var ve *ValidationError
		Expect(errors.As(err, &ve)).To(BeTrue())
		Expect(ve.Field).To(Equal("description"))
		Expect(ve.Message).To(Equal("has an invalid value"))
		Expect(ve.Error()).NotTo(ContainSubstring("ent:"))
	})

	It("wraps other errors with the operation", func() {
		err := mapEntError("creating movie", errors.New("disk full"))
		Expect(err).To(MatchError("store: creating movie: disk full"))
		Expect(IsValidation(err)).To(BeFalse())
	})
})
