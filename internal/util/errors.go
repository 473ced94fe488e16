package util

import "errors"

var (
	ErrNameRequired       = errors.New("名称不能为空")
	ErrStudentNotFound    = errors.New("student not found")
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrMissingTitleColumn = errors.New("CSV 必须包含 title 列")
)
