// Package poller provides the recurring read loops every actor view runs
// against the order store.
//
// All visibility in the system is poll-based: nothing pushes state changes
// to clients. Each view (kitchen, delivery, customer tracker, admin) owns a
// StatusPoller with its own schedule, latency-sensitive views polling more
// aggressively than the rest. Polling is scheduled through
// github.com/robfig/cron/v3 with the seconds field enabled.
package poller
