package store

import "github.com/google/uuid"

func newTaskID() string {
	return uuid.NewString()
}

// freshID keeps asking gen until it produces an id never issued before.
func freshID(gen func() string, issued map[string]struct{}) string {
	for {
		id := gen()
		if _, ok := issued[id]; !ok {
			return id
		}
	}
}
