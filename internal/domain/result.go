package domain

// Status is the lifecycle stage of an asynchronous operation.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result reports one step of an asynchronous operation. Data is only
// meaningful for StatusSuccess and Message only for StatusError.
type Result[T any] struct {
	Status  Status
	Data    T
	Message string
}

// Loading reports an operation that is still in flight.
func Loading[T any]() Result[T] {
	return Result[T]{Status: StatusLoading}
}

// Success reports a completed operation and its payload.
func Success[T any](data T) Result[T] {
	return Result[T]{Status: StatusSuccess, Data: data}
}

// Failure reports a failed operation with a human-readable cause.
func Failure[T any](message string) Result[T] {
	return Result[T]{Status: StatusError, Message: message}
}

// IsTerminal reports whether no further results follow this one.
func (r Result[T]) IsTerminal() bool {
	return r.Status == StatusSuccess || r.Status == StatusError
}
