// Package alert keeps kitchen staff aware of new orders until a human reacts.
//
// A Controller holds the per-session alert state: order ids currently
// alerting and order ids already acknowledged, with an id in at most one of
// the two sets. Poll cycles feed it through Observe; kitchen staff dismiss
// alerts through Acknowledge; advancing an order past pending clears its
// alert as a side effect of the next Observe.
//
// One goroutine per controller replays the signal for every alerting order
// on a fixed interval. A global sound flag mutes the callback without
// touching the sets, so unmuting resumes signaling immediately.
package alert
