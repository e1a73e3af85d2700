//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"coachbook/internal/handler/httperr"
	"coachbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Class("bad", errs.ErrValidation), want: http.StatusBadRequest},
		{name: "wrapped validation", err: errs.Wrap(errs.Class("bad", errs.ErrValidation), "ctx"), want: http.StatusBadRequest},
		{name: "forbidden", err: errs.Class("nope", errs.ErrForbidden), want: http.StatusForbidden},
		{name: "not found", err: errs.Class("gone", errs.ErrNotFound), want: http.StatusNotFound},
		{name: "duplicate", err: errs.Class("dup", errs.ErrDuplicateKey), want: http.StatusConflict},
		{name: "conflict", err: errs.Class("taken", errs.ErrConflict), want: http.StatusConflict},
		{name: "transient", err: errs.Mark(errors.New("40001"), errs.ErrTransientStore), want: http.StatusServiceUnavailable},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}
