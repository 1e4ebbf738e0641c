package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type queuePoller struct {
	events []Event
	waits  []int
}

func (q *queuePoller) poll(timeoutMs int) (Event, bool) {
	q.waits = append(q.waits, timeoutMs)
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

func TestDrainAll(t *testing.T) {
	q := &queuePoller{events: []Event{Expose{}, KeyPress{Label: "1"}, CreateNotify{}}}
	var got []Event

	n := DrainAll().Consume(q.poll, func(e Event) { got = append(got, e) }, 50)

	assert.Equal(t, 3, n)
	assert.Equal(t, []Event{Expose{}, KeyPress{Label: "1"}, CreateNotify{}}, got)
	assert.Equal(t, []int{50, 0, 0, 0}, q.waits)
}

func TestDrainMax(t *testing.T) {
	q := &queuePoller{events: []Event{Expose{}, Expose{}, Expose{}}}

	n := DrainMax(2).Consume(q.poll, func(Event) {}, 10)

	assert.Equal(t, 2, n)
	assert.Len(t, q.events, 1)
	assert.Equal(t, []int{10, 0}, q.waits)
}

func TestDrainMax_AtLeastOne(t *testing.T) {
	q := &queuePoller{events: []Event{Expose{}, Expose{}}}

	n := DrainMax(0).Consume(q.poll, func(Event) {}, 10)

	assert.Equal(t, 1, n)
}

func TestDrain_Timeout(t *testing.T) {
	q := &queuePoller{}

	n := DrainAll().Consume(q.poll, func(Event) { t.Fatal("unexpected event") }, 5)

	assert.Zero(t, n)
	assert.Equal(t, []int{5}, q.waits)
}
