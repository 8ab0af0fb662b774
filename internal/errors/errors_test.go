package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "message only",
			err:  &AppError{Code: ErrCodeValidation, Message: "title is required"},
			want: "title is required",
		},
		{
			name: "message with cause",
			err:  &AppError{Code: ErrCodeInternal, Message: "query failed", Cause: errors.New("broken pipe")},
			want: "query failed: broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	wrapped := Wrap(cause, ErrCodeInternal, "wrapped")
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestConstructorsAndPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		code ErrorCode
	}{
		{"not found", NotFound("job not found"), IsNotFound, ErrCodeNotFound},
		{"not foundf", NotFoundf("job %q not found", "abc"), IsNotFound, ErrCodeNotFound},
		{"conflict", Conflict("duplicate"), IsConflict, ErrCodeConflict},
		{"validation", Validation("bad input"), IsValidation, ErrCodeValidation},
		{"validationf", Validationf("bad %s", "limit"), IsValidation, ErrCodeValidation},
		{"forbidden", Forbidden("not your job posting"), IsForbidden, ErrCodeForbidden},
		{"internal", Internal("boom"), IsInternal, ErrCodeInternal},
		{"internalf", Internalf("boom %d", 1), IsInternal, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.pred(tt.err) {
				t.Errorf("predicate returned false for %v", tt.err)
			}
			if GetCode(tt.err) != tt.code {
				t.Errorf("GetCode() = %v, want %v", GetCode(tt.err), tt.code)
			}
		})
	}
}

func TestPredicates_WrappedInFmtErrorf(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("gone"))
	if !IsNotFound(err) {
		t.Error("IsNotFound should see through fmt.Errorf wrapping")
	}
}

func TestPredicates_NonAppError(t *testing.T) {
	err := errors.New("plain")
	if IsNotFound(err) || IsConflict(err) || IsValidation(err) || IsForbidden(err) {
		t.Error("predicates should be false for non-AppError")
	}
	if GetCode(err) != "" {
		t.Errorf("GetCode() = %q, want empty", GetCode(err))
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("title", "Job title must be at least 5 characters")
	if GetField(err) != "title" {
		t.Errorf("GetField() = %q, want %q", GetField(err), "title")
	}
	if !IsValidation(err) {
		t.Error("ValidationField should produce a validation error")
	}
}

func TestWrap_NilErr(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "msg") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, ErrCodeInternal, "msg %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
