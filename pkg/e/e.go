package e

import "fmt"

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Ошибки отчётов
	ErrUnknownSortField = fmt.Errorf("unknown sort field")
	ErrWriteReport      = fmt.Errorf("failed to write report")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
