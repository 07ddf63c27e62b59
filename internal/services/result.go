package services

// Result is the outcome of a mutating service operation, consumed by
// the presentation layer.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListResult is the outcome of a list-returning service operation.
// Data is empty whenever Success is false.
type ListResult[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    []T    `json:"data,omitempty"`
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

func success(message string) Result {
	return Result{Success: true, Message: message}
}

func listFailure[T any](message string) ListResult[T] {
	return ListResult[T]{Success: false, Message: message, Data: []T{}}
}

func listSuccess[T any](message string, data []T) ListResult[T] {
	return ListResult[T]{Success: true, Message: message, Data: data}
}
