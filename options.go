package arrayvec

type options[T any] struct {
	release func(T)
	logger  *Logger
}

// Option configures a Vec at construction time.
//
// Options exist to avoid exploding the constructor surface; a Vec built with
// no options has no release hook and does not log.
type Option[T any] func(*options[T])

// WithRelease sets the release hook, called exactly once, in index order, for
// every element the vector discards without handing it to the caller
// (Truncate, Clear, Close, Set overwrites, unyielded drain victims).
//
// Elements returned by value (Pop, Remove, SwapRemove, drain yields, the
// ForceInsert eviction) transfer ownership to the caller and are never passed
// to the hook.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(o *options[T]) {
		o.release = fn
	}
}

// WithLogger sets the structured logger for operation tracing. Rejected
// capacity-exhausted operations and drain lifecycles are logged at Debug
// level. If nil, logging is disabled (the default).
func WithLogger[T any](l *Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = l
	}
}
