package domain

import "sync/atomic"

// issued counts the object ids handed out so far. The zero value is ready to
// use, so objects built by package-level initializers draw from it too.
var issued atomic.Int64

// nextID issues the next process-wide object id, starting at 0.
// int64 cannot realistically overflow from object construction alone.
func nextID() int64 {
	return issued.Add(1) - 1
}
