package picolog

import "errors"

var (
	// ErrSubscribersExceeded is returned by Subscribe when every slot in the
	// fixed-capacity table is taken by a different name.
	ErrSubscribersExceeded = errors.New("picolog: max subscribers exceeded")

	// ErrNotSubscribed is returned by Unsubscribe when no active subscriber
	// carries the given name.
	ErrNotSubscribed = errors.New("picolog: not subscribed")

	// ErrEmptyName rejects the empty string as a subscriber identity.
	ErrEmptyName = errors.New("picolog: subscriber name must not be empty")

	// ErrNilSubscriber rejects a nil Subscriber.
	ErrNilSubscriber = errors.New("picolog: subscriber must not be nil")

	// ErrInvalidConfig wraps Builder and environment validation failures.
	ErrInvalidConfig = errors.New("picolog: invalid configuration")
)
