package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrTaskNotOwned = errors.New("task is assigned to another employee")
)
