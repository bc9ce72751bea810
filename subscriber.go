package picolog

// Subscriber receives every dispatched message whose severity meets the
// threshold it was registered with. Log is called synchronously from
// Message and MUST NOT call back into Subscribe, Unsubscribe, or Message
// on the same Logger. Output errors are the subscriber's own business;
// they never propagate into the dispatcher.
type Subscriber interface {
	Log(level Level, msg string)
}

// SubscriberFunc adapter.
type SubscriberFunc func(level Level, msg string)

func (f SubscriberFunc) Log(level Level, msg string) { f(level, msg) }
