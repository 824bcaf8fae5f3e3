// Package model defines the data structures shared by the planner, the
// countdown driver, the import/export codecs and the stores.
//
// # Block
//
// A [Block] is one timed interval of a schedule, either a study session for
// a subject or a break:
//
//	type Block struct {
//	    Label string    // subject name or "Break"
//	    Kind  BlockKind // StudySession or Break
//	    Start TimeOfDay // inclusive
//	    End   TimeOfDay // exclusive
//	}
//
// The JSON form of a block is the export format: an object with the fields
// subject, type, start and end, where times are "HH:MM".
//
// # State
//
// [State] bundles the subject list and the active schedule. It is what the
// stores persist after every mutation.
//
// # Config
//
// [Config] holds generation defaults and storage/UI settings loaded from the
// settings file.
package model
