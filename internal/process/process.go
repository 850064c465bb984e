// Package process terminates the headless browser tree spawned for PDF export.
package process

import "errors"

// ErrInvalidPID is returned for PIDs that would signal the caller's own group.
var ErrInvalidPID = errors.New("invalid process id")

// KillProcessGroup kills pid and every child it spawned.
// Chrome forks renderer and GPU helpers that outlive the launcher's own
// Kill, so the whole group must go. PIDs <= 0 are rejected.
func KillProcessGroup(pid int) error {
	if pid <= 0 {
		return ErrInvalidPID
	}
	return killTree(pid)
}
