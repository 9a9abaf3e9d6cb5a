package viewer

// InjectAction queues a synthetic action, consumed on a later Update before
// keyboard input is read. One queued action is applied per frame so each
// one is visible in at least one rendered frame.
func (v *Viewer) InjectAction(a Action) {
	v.injectQueue = append(v.injectQueue, a)
}

// InjectActions queues several actions in order.
func (v *Viewer) InjectActions(actions ...Action) {
	v.injectQueue = append(v.injectQueue, actions...)
}

// popInjected removes and returns the oldest queued action.
func (v *Viewer) popInjected() (Action, bool) {
	if len(v.injectQueue) == 0 {
		return ActionNone, false
	}
	a := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]
	return a, true
}
