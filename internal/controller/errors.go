package controller

import (
	"context"
	"errors"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/internal/identity"
	"github.com/samber/lo"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (i *implementation) convertErr(err error) error {
	var fieldErrs validation.Errors

	switch {
	case errors.As(err, &fieldErrs):
		return invalidArgument(fieldErrs)
	case errors.Is(err, entity.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, entity.ErrInvalidOperation):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, identity.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// invalidArgument attaches one field violation per failed field, in field order.
func invalidArgument(fieldErrs validation.Errors) error {
	st := status.New(codes.InvalidArgument, fieldErrs.Error())

	fields := lo.Keys(fieldErrs)
	slices.Sort(fields)

	details := &errdetails.BadRequest{
		FieldViolations: lo.Map(fields, func(field string, _ int) *errdetails.BadRequest_FieldViolation {
			return &errdetails.BadRequest_FieldViolation{
				Field:       field,
				Description: fieldErrs[field].Error(),
			}
		}),
	}

	detailed, err := st.WithDetails(details)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
