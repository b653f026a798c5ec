// Package engine implements the form state machine: type selection, value
// tracking, required-field validation, progress and submission, plus the
// short-lived display message that follows a submit or delete.
//
// Phases move Idle → Active → Editing and return to Idle after a successful
// submit (once the display delay elapses) or a cancelled edit. At most one
// display timer is pending; scheduling a new one cancels the previous, and
// any mutating call settles a pending post-submit reset first.
package engine
