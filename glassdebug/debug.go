// Package glassdebug provides a tiny, allocation-free diagnostic logger
// used on Glass's cold paths only: Glass calls Note to trace preemption
// when built with the glassdebug tag. It never runs on the insert/get/
// descend hot path.
package glassdebug

import "log"

// Warn logs prefix plus err when err is non-nil, and just prefix otherwise.
// With a nil err it serves as a cheap trace tag. Glass itself does not call it.
func Warn(prefix string, err error) {
	if err != nil {
		log.Printf("%s: %v", prefix, err)
	} else {
		log.Print(prefix)
	}
}

// Note logs a bare diagnostic message. Used for preemption tracing, where
// there is no accompanying error value.
func Note(prefix, message string) {
	log.Printf("%s: %s", prefix, message)
}
