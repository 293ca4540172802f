package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmailAlreadyExists     = errors.New("employee with this email already exists")
	ErrAttendanceNotFound     = errors.New("attendance record not found")
	ErrAttendanceAlreadyTaken = errors.New("attendance already recorded for this date")
)
