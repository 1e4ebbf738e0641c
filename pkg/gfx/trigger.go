package gfx

import (
	"fmt"
	"strings"
)

// Trigger is one of the discrete inputs that select the fill color.
type Trigger int

const (
	TriggerRed Trigger = iota
	TriggerGreen
	TriggerBlue
	TriggerReset
)

// Triggers lists every trigger in toolbar order.
var Triggers = [...]Trigger{TriggerRed, TriggerGreen, TriggerBlue, TriggerReset}

// InitialColor is the fill color before any trigger fires.
var InitialColor = Red

var palette = map[Trigger]Color{
	TriggerRed:   Red,
	TriggerGreen: Green,
	TriggerBlue:  Blue,
	TriggerReset: Red,
}

var triggerNames = map[Trigger]string{
	TriggerRed:   "red",
	TriggerGreen: "green",
	TriggerBlue:  "blue",
	TriggerReset: "reset",
}

// Labels accepted by ParseTrigger besides the trigger names: DOM button
// ids of the web page and keyboard shortcuts.
var triggerAliases = map[string]Trigger{
	"color1":     TriggerRed,
	"color2":     TriggerGreen,
	"color3":     TriggerBlue,
	"resetcolor": TriggerReset,
	"1":          TriggerRed,
	"2":          TriggerGreen,
	"3":          TriggerBlue,
	"r":          TriggerReset,
}

func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// Color returns the fixed color bound to t.
func (t Trigger) Color() (Color, bool) {
	c, ok := palette[t]
	return c, ok
}

// ParseTrigger maps a name, DOM id or key label to a trigger. Matching is
// case-insensitive.
func ParseTrigger(label string) (Trigger, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	for t, name := range triggerNames {
		if name == key {
			return t, nil
		}
	}
	if t, ok := triggerAliases[key]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%q: %w", label, ErrUnknownTrigger)
}
