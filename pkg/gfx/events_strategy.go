package gfx

// EventPoller waits up to timeoutMs for the next event. ok is false on timeout.
type EventPoller func(timeoutMs int) (event Event, ok bool)

// EventsConsumerStrategy decides how many pending events one loop turn
// handles. It waits only for the first one.
type EventsConsumerStrategy interface {
	Consume(poll EventPoller, handle func(Event), timeoutMs int) int
}

type drainStrategy struct {
	max int
}

func (s drainStrategy) Consume(poll EventPoller, handle func(Event), timeoutMs int) int {
	count := 0
	for s.max <= 0 || count < s.max {
		wait := 0
		if count == 0 {
			wait = timeoutMs
		}
		event, ok := poll(wait)
		if !ok {
			break
		}
		handle(event)
		count++
	}
	return count
}

// DrainAll handles every queued event.
func DrainAll() EventsConsumerStrategy {
	return drainStrategy{}
}

// DrainMax handles at most max events per turn; values below 1 mean 1.
func DrainMax(max int) EventsConsumerStrategy {
	if max <= 0 {
		max = 1
	}
	return drainStrategy{max: max}
}
