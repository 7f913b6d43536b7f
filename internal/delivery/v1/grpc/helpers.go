package grpc

import (
	"errors"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return status.Error(codes.NotFound, e.ErrProductNotFound.Error())
	case errors.Is(err, e.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, e.ErrInsufficientStock.Error())
	case errors.Is(err, e.ErrStockNotAdjusted):
		return status.Error(codes.FailedPrecondition, e.ErrStockNotAdjusted.Error())
	case errors.Is(err, e.ErrInvalidQuantity):
		return status.Error(codes.InvalidArgument, e.ErrInvalidQuantity.Error())
	case errors.Is(err, e.ErrNoProducts):
		return status.Error(codes.InvalidArgument, e.ErrNoProducts.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
