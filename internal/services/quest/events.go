package quest

// Event types published on the event bus. The event source is the session.
const (
	EventSessionInitialized = "quest.session.initialized"
	EventOptionChosen       = "quest.option.chosen"
	EventRouteTransitioned  = "quest.route.transitioned"
	EventEndingResolved     = "quest.ending.resolved"
	EventSessionReset       = "quest.session.reset"
)
