// Package app is the composition root for deskset. It loads configuration
// and preferences, constructs the calculator and both timers against the
// shared observable container, and hands them to the UI, which subscribes
// and blocks until exit. Business logic lives in the domain packages
// (calc, timer, observe); this package only connects them.
package app
