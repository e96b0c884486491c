// query/result.go
package query

// Status is the request lifecycle tag. Exactly one of the three states
// holds at a time.
type Status int

const (
	StatusPending Status = iota
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Result is a tagged fetch outcome. Data is only meaningful when Status
// is StatusSuccess, Err only when StatusError; the constructors keep the
// combinations valid.
type Result[T any] struct {
	Status Status
	Data   T
	Err    error
}

func Pending[T any]() Result[T] {
	return Result[T]{Status: StatusPending}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Status: StatusError, Err: err}
}

func Success[T any](data T) Result[T] {
	return Result[T]{Status: StatusSuccess, Data: data}
}
