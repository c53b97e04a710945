// Package notify provides a minimal synchronous change-notification signal.
//
// Signal is the single-threaded counterpart of a broadcaster: listeners are
// invoked on the emitting goroutine, in subscription order, before Emit
// returns. This matches the single-writer model of the resource packages,
// where observers are expected to treat a notification as "recompute
// downstream state" rather than as a delivery of the new value.
//
//	var sig notify.Signal[string]
//	off := sig.Subscribe(func(key string) {
//		// react to the change
//	})
//	defer off()
//
//	sig.Emit("greeting")
//
// A listener may subscribe, unsubscribe or emit again from within its
// callback without deadlocking; the listener set is snapshotted before each
// emission. Signal itself is not safe for concurrent use - the owner of the
// mutating side is responsible for serializing access.
package notify
