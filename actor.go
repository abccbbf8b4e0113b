package main

import "os"

// resolveActor picks the identity recorded in audit events. The core
// deck model takes the actor as an explicit parameter and never reads
// the environment; resolving it is this layer's job.
func resolveActor() string {
	if actorFlag != "" {
		return actorFlag
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	if user := os.Getenv("USERNAME"); user != "" {
		return user
	}
	return "unknown"
}
