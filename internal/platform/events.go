package platform

type Event interface{}

type Expose struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}

// TriggerPress is a click on a page control identified by its element id.
type TriggerPress struct {
	ID string
}
type CreateNotify struct{}
type DestroyNotify struct{}
type TimeoutEvent struct{}
