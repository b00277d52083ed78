package stackcards

import (
	"github.com/alexisbeaulieu97/stackcards/internal/controller"
)

// ActiveChangedMsg is emitted whenever the active card actually changes.
// WidgetID identifies the emitting Model when a host embeds several.
type ActiveChangedMsg struct {
	WidgetID int
	Index    int
	Previous int
	Source   controller.Source
}

// frameMsg advances an expand/collapse transition.
type frameMsg struct {
	id  int
	tag int
}
