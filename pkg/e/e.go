package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// Внутренние ошибки учёта остатков
	ErrStockNotAdjusted = fmt.Errorf("stock quantity was not adjusted")

	// 400 Bad Request
	ErrStatusBadRequest      = fmt.Errorf("bad request")
	ErrExpectedMultipart     = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields         = fmt.Errorf("missing required fields")
	ErrInvalidPrice          = fmt.Errorf("invalid price")
	ErrPricePrecision        = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity       = fmt.Errorf("quantity must be positive")
	ErrInvalidDate           = fmt.Errorf("invalid date, expected YYYY-MM-DD")
	ErrProductNameRequired   = fmt.Errorf("product name is required")
	ErrPriceMustBePositive   = fmt.Errorf("price must be positive")
	ErrWastageReasonRequired = fmt.Errorf("wastage reason is required")
	ErrNoProducts            = fmt.Errorf("no product ids provided")
	ErrNoImages              = fmt.Errorf("no images provided")
	ErrTooManyImages         = fmt.Errorf("too many images")
	ErrFileTooLarge          = fmt.Errorf("file too large")
	ErrUnsupportedMediaType  = fmt.Errorf("unsupported media type")
	ErrDashboardRangeTooWide = fmt.Errorf("dashboard range exceeds 90 days")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 409 Conflict
	ErrInsufficientStock = fmt.Errorf("insufficient stock")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
