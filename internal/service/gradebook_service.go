package service

import (
	"encoding/json"
	"errors"
	"strings"

	"gradebook_backend/internal/model"
	"gradebook_backend/internal/util"

	"gorm.io/gorm"
)

// GradebookStore 成绩册文档的持久化边界，文档整体读写
type GradebookStore interface {
	FindByOwner(owner string) (*model.GradebookRecord, error)
	Save(owner string, data json.RawMessage) error
}

// GradebookService 负责加载/保存成绩册文档并编排文档上的纯操作。
// 引擎本身不做任何 I/O，所有持久化都收敛在这一层。
type GradebookService struct {
	Store    GradebookStore
	Grade    *GradeService
	Schedule *ScheduleService
	Import   *ImportService
}

func NewGradebookService(store GradebookStore, grade *GradeService, schedule *ScheduleService, importSvc *ImportService) *GradebookService {
	return &GradebookService{
		Store:    store,
		Grade:    grade,
		Schedule: schedule,
		Import:   importSvc,
	}
}

// Load 读取 owner 的成绩册，没有存档时返回空文档 {students: []}
func (s *GradebookService) Load(owner string) (*model.Gradebook, error) {
	rec, err := s.Store.FindByOwner(owner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NewGradebook(), nil
	}
	if err != nil {
		return nil, err
	}

	gb := model.NewGradebook()
	if len(rec.Data) > 0 {
		if err := json.Unmarshal(rec.Data, gb); err != nil {
			return nil, err
		}
	}
	if gb.Students == nil {
		gb.Students = []model.Student{}
	}
	return gb, nil
}

// Save 整体覆盖写入，不做增量比对
func (s *GradebookService) Save(owner string, gb *model.Gradebook) error {
	data, err := json.Marshal(gb)
	if err != nil {
		return err
	}
	return s.Store.Save(owner, data)
}

// update 加载-变更-保存。变更函数返回错误时不落库。
func (s *GradebookService) update(owner string, fn func(*model.Gradebook) error) error {
	gb, err := s.Load(owner)
	if err != nil {
		return err
	}
	if err := fn(gb); err != nil {
		return err
	}
	return s.Save(owner, gb)
}

func (s *GradebookService) AddStudent(owner, name string) (*model.Student, error) {
	var created model.Student
	err := s.update(owner, func(gb *model.Gradebook) error {
		st, err := gb.AddStudent(name)
		if err != nil {
			return err
		}
		created = *st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *GradebookService) AddSubject(owner, studentID, name string) (*model.Subject, error) {
	var created model.Subject
	err := s.update(owner, func(gb *model.Gradebook) error {
		sub, err := gb.AddSubject(studentID, name)
		if err != nil {
			return err
		}
		created = *sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AssignmentRequest score/max 接受任意 JSON 值，非数字一律按 0 处理
type AssignmentRequest struct {
	Name  string      `json:"name" binding:"required"`
	Type  string      `json:"type"`
	Score interface{} `json:"score"`
	Max   interface{} `json:"max"`
	Due   string      `json:"due"`
}

func (s *GradebookService) AddAssignment(owner, studentID, subjectID string, req AssignmentRequest) (*model.Assignment, error) {
	var created model.Assignment
	err := s.update(owner, func(gb *model.Gradebook) error {
		a, err := gb.AddAssignment(studentID, subjectID, model.NewAssignment(req.Name, req.Type, req.Score, req.Max, req.Due))
		if err != nil {
			return err
		}
		created = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AssignmentUpdateRequest 指针字段区分"未提交"和"提交了空值"
type AssignmentUpdateRequest struct {
	Name  *string     `json:"name"`
	Type  *string     `json:"type"`
	Score interface{} `json:"score"`
	Max   interface{} `json:"max"`
	Due   *string     `json:"due"`
}

func (s *GradebookService) UpdateAssignment(owner, studentID, subjectID, assignmentID string, req AssignmentUpdateRequest) (*model.Assignment, error) {
	var updated model.Assignment
	err := s.update(owner, func(gb *model.Gradebook) error {
		a, err := gb.FindAssignment(studentID, subjectID, assignmentID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.Type != nil {
			typ := strings.TrimSpace(*req.Type)
			if typ == "" {
				typ = util.TypeHomework
			}
			a.Type = typ
		}
		if req.Score != nil {
			a.Score = util.ToNumber(req.Score)
		}
		if req.Max != nil {
			a.Max = util.ToNumber(req.Max)
		}
		if req.Due != nil {
			a.Due = strings.TrimSpace(*req.Due)
		}
		updated = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *GradebookService) DeleteAssignment(owner, studentID, subjectID, assignmentID string) error {
	return s.update(owner, func(gb *model.Gradebook) error {
		return gb.DeleteAssignment(studentID, subjectID, assignmentID)
	})
}

func (s *GradebookService) SetWeights(owner, studentID, subjectID string, weights map[string]interface{}) (map[string]int, error) {
	var result map[string]int
	err := s.update(owner, func(gb *model.Gradebook) error {
		sub, err := gb.FindSubject(studentID, subjectID)
		if err != nil {
			return err
		}
		sub.SetWeights(weights)
		result = sub.Weights
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ImportAssignments 导入表格文本到目标科目的 S1。
// 表头缺少 title 列时整批失败且不落库；逐行的坏数据按行跳过。
func (s *GradebookService) ImportAssignments(owner, studentID, subjectID, text string) (int, error) {
	parsed, err := s.Import.ParseAssignments(text)
	if err != nil {
		return 0, err
	}

	err = s.update(owner, func(gb *model.Gradebook) error {
		sub, err := gb.FindSubject(studentID, subjectID)
		if err != nil {
			return err
		}
		for _, a := range parsed {
			sub.AppendAssignment(a)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(parsed), nil
}

// SubjectSummary 展示层需要的单科目聚合：加权成绩、简单平均、最近截止日期
type SubjectSummary struct {
	SubjectID       string             `json:"subjectId"`
	Name            string             `json:"name"`
	WeightedAverage int                `json:"weightedAverage"`
	Average         int                `json:"average"`
	NextDue         string             `json:"nextDue,omitempty"`
	Weights         map[string]int     `json:"weights"`
	Assignments     []model.Assignment `json:"assignments"`
}

func (s *GradebookService) SubjectSummary(owner, studentID, subjectID string) (*SubjectSummary, error) {
	gb, err := s.Load(owner)
	if err != nil {
		return nil, err
	}
	sub, err := gb.FindSubject(studentID, subjectID)
	if err != nil {
		return nil, err
	}
	return s.summarize(sub, true), nil
}

// StudentOverview 所有学生的科目概览，对应前端的主列表渲染
type StudentOverview struct {
	StudentID string           `json:"studentId"`
	Name      string           `json:"name"`
	Year      int              `json:"year"`
	Subjects  []SubjectSummary `json:"subjects"`
}

func (s *GradebookService) Overview(owner string) ([]StudentOverview, error) {
	gb, err := s.Load(owner)
	if err != nil {
		return nil, err
	}

	overview := []StudentOverview{}
	for i := range gb.Students {
		student := &gb.Students[i]
		entry := StudentOverview{
			StudentID: student.ID,
			Name:      student.Name,
			Subjects:  []SubjectSummary{},
		}
		if year := student.CurrentYear(); year != nil {
			entry.Year = year.Year
			for j := range year.Subjects {
				entry.Subjects = append(entry.Subjects, *s.summarize(&year.Subjects[j], false))
			}
		}
		overview = append(overview, entry)
	}
	return overview, nil
}

func (s *GradebookService) summarize(sub *model.Subject, withAssignments bool) *SubjectSummary {
	assignments := sub.Assignments()
	summary := &SubjectSummary{
		SubjectID:       sub.ID,
		Name:            sub.Name,
		WeightedAverage: s.Grade.WeightedAverage(assignments, sub.Weights),
		Average:         s.Grade.Average(assignments),
		NextDue:         s.Schedule.NextDueDate(assignments),
		Weights:         sub.Weights,
	}
	if withAssignments {
		if assignments == nil {
			assignments = []model.Assignment{}
		}
		summary.Assignments = assignments
	}
	return summary
}

// Upcoming 展望窗口内所有学生的待办作业
func (s *GradebookService) Upcoming(owner string, windowDays int) ([]UpcomingAssignment, error) {
	gb, err := s.Load(owner)
	if err != nil {
		return nil, err
	}
	return s.Schedule.UpcomingAssignments(gb, windowDays), nil
}
