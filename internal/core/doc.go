// Package core provides the business logic layer for studyplan.
//
// [Service] ties the pure planner functions to a store: every operation
// loads the current state, applies one change and saves the result. When an
// operation fails the stored state is left as it was.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Schedule rules live in the planner package; core only orchestrates
//   - UI-specific logic belongs in the cli package, not here
package core
