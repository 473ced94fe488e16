package service

import (
	"strings"

	"gradebook_backend/internal/model"
	"gradebook_backend/internal/util"
)

// ImportService 把外部表格文本规整为作业记录。
// 格式约定：首行为表头，其后每行一条记录，逗号分隔，不支持引号转义。
type ImportService struct{}

func NewImportService() *ImportService {
	return &ImportService{}
}

// ParseAssignments 解析导入文本。表头大小写不敏感，title 列必须存在，
// 否则整批失败；score/max/due 列可选。空 title 的行静默跳过，
// 非数字的分数按 0 处理，导入的作业类型固定为 Homework。
func (s *ImportService) ParseAssignments(text string) ([]model.Assignment, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	headers := strings.Split(lines[0], ",")
	titleIdx, scoreIdx, maxIdx, dueIdx := -1, -1, -1, -1
	for i, h := range headers {
		// 同名列取第一个
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "title":
			if titleIdx == -1 {
				titleIdx = i
			}
		case "score":
			if scoreIdx == -1 {
				scoreIdx = i
			}
		case "max":
			if maxIdx == -1 {
				maxIdx = i
			}
		case "due":
			if dueIdx == -1 {
				dueIdx = i
			}
		}
	}
	if titleIdx == -1 {
		return nil, util.ErrMissingTitleColumn
	}

	assignments := []model.Assignment{}
	for _, line := range lines[1:] {
		cols := strings.Split(line, ",")

		title := cell(cols, titleIdx)
		if title == "" {
			continue
		}

		assignments = append(assignments, model.NewAssignment(
			title,
			util.TypeHomework,
			cell(cols, scoreIdx),
			cell(cols, maxIdx),
			cell(cols, dueIdx),
		))
	}
	return assignments, nil
}

func cell(cols []string, idx int) string {
	if idx < 0 || idx >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[idx])
}
