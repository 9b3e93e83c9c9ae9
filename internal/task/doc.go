// Package task models tracked tasks and the operations applied to them.
//
// A task list is persisted as a single JSON array:
//
//	[
//	  {
//	    "id": 1,
//	    "description": "Buy milk",
//	    "status": "todo",
//	    "createdAt": "2024-01-01T09:00:00Z",
//	    "updatedAt": "2024-01-01T09:00:00Z"
//	  }
//	]
//
// # Task Status Values
//
//   - "todo": Task is pending (initial status)
//   - "in-progress": Task is being worked on
//   - "done": Task is complete
//
// # Identifiers
//
// A new task gets 1 + the highest id currently in the list, or 1 when the
// list is empty. The high-water mark is derived from the list contents, not
// kept as a separate counter.
//
// # Tolerant Reads
//
// Records written by older or hand-edited files may lack fields. A missing
// id decodes as 0, a missing description or status as the empty string, and
// missing timestamps stay absent (nil) so they are written back absent.
//
// # Store
//
// Store is the read-modify-write layer: every operation loads the full list
// from a Repository, applies one change and, only if the change succeeded,
// saves the full list back.
package task
