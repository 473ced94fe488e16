package model

import (
	"strings"
	"time"

	"gradebook_backend/internal/util"
)

// Gradebook 整棵成绩册文档，按 owner 整体加载和保存
// swagger:model Gradebook
type Gradebook struct {
	Students []Student `json:"students"`
}

type Student struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Years []YearRecord `json:"years"`
}

// YearRecord 预留多学年结构，当前只读写第 0 个学年
type YearRecord struct {
	Year     int       `json:"year"`
	Subjects []Subject `json:"subjects"`
}

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Weights 分类名 -> 权重百分比，不要求总和为 100
	Weights map[string]int `json:"weights"`
	// Semesters 引擎只读写 S1，S2 为预留结构
	Semesters map[string][]Assignment `json:"semesters"`
}

type Assignment struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
	Due   string  `json:"due,omitempty"`
}

func NewGradebook() *Gradebook {
	return &Gradebook{Students: []Student{}}
}

func NewStudent(name string) (Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Student{}, util.ErrNameRequired
	}
	return Student{
		ID:   GenerateUUID(),
		Name: name,
		Years: []YearRecord{{
			Year:     time.Now().Year(),
			Subjects: []Subject{},
		}},
	}, nil
}

func NewSubject(name string) (Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Subject{}, util.ErrNameRequired
	}
	return Subject{
		ID:   GenerateUUID(),
		Name: name,
		Weights: map[string]int{
			util.TypeHomework: 30,
			util.TypeQuiz:     30,
			util.TypeTest:     40,
		},
		Semesters: map[string][]Assignment{
			util.SemesterOne: {},
			util.SemesterTwo: {},
		},
	}, nil
}

// NewAssignment 宽松构造：非数字的分数按 0 处理，空类型回落为 Homework，
// 空白截止日期视为缺省。故意沿用"静默纠正而非报错"的输入策略。
func NewAssignment(name, typ string, score, max interface{}, due string) Assignment {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		typ = util.TypeHomework
	}
	return Assignment{
		ID:    GenerateUUID(),
		Name:  name,
		Type:  typ,
		Score: util.ToNumber(score),
		Max:   util.ToNumber(max),
		Due:   strings.TrimSpace(due),
	}
}

func (g *Gradebook) FindStudent(studentID string) (*Student, error) {
	for i := range g.Students {
		if g.Students[i].ID == studentID {
			return &g.Students[i], nil
		}
	}
	return nil, util.ErrStudentNotFound
}

func (g *Gradebook) AddStudent(name string) (*Student, error) {
	st, err := NewStudent(name)
	if err != nil {
		return nil, err
	}
	g.Students = append(g.Students, st)
	return &g.Students[len(g.Students)-1], nil
}

// CurrentYear 返回当前学年（第 0 个），学年列表为空时返回 nil
func (s *Student) CurrentYear() *YearRecord {
	if len(s.Years) == 0 {
		return nil
	}
	return &s.Years[0]
}

func (s *Student) ensureCurrentYear() *YearRecord {
	if len(s.Years) == 0 {
		s.Years = []YearRecord{{Year: time.Now().Year(), Subjects: []Subject{}}}
	}
	return &s.Years[0]
}

func (g *Gradebook) FindSubject(studentID, subjectID string) (*Subject, error) {
	st, err := g.FindStudent(studentID)
	if err != nil {
		return nil, err
	}
	year := st.CurrentYear()
	if year == nil {
		return nil, util.ErrSubjectNotFound
	}
	for i := range year.Subjects {
		if year.Subjects[i].ID == subjectID {
			return &year.Subjects[i], nil
		}
	}
	return nil, util.ErrSubjectNotFound
}

func (g *Gradebook) AddSubject(studentID, name string) (*Subject, error) {
	st, err := g.FindStudent(studentID)
	if err != nil {
		return nil, err
	}
	sub, err := NewSubject(name)
	if err != nil {
		return nil, err
	}
	year := st.ensureCurrentYear()
	year.Subjects = append(year.Subjects, sub)
	return &year.Subjects[len(year.Subjects)-1], nil
}

// Assignments 返回 S1 学期的作业列表
func (s *Subject) Assignments() []Assignment {
	return s.Semesters[util.SemesterOne]
}

// AppendAssignment 追加到 S1 学期末尾，保持文件/录入顺序
func (s *Subject) AppendAssignment(a Assignment) *Assignment {
	if s.Semesters == nil {
		s.Semesters = map[string][]Assignment{}
	}
	s.Semesters[util.SemesterOne] = append(s.Semesters[util.SemesterOne], a)
	list := s.Semesters[util.SemesterOne]
	return &list[len(list)-1]
}

func (g *Gradebook) AddAssignment(studentID, subjectID string, a Assignment) (*Assignment, error) {
	sub, err := g.FindSubject(studentID, subjectID)
	if err != nil {
		return nil, err
	}
	return sub.AppendAssignment(a), nil
}

func (g *Gradebook) FindAssignment(studentID, subjectID, assignmentID string) (*Assignment, error) {
	sub, err := g.FindSubject(studentID, subjectID)
	if err != nil {
		return nil, err
	}
	list := sub.Semesters[util.SemesterOne]
	for i := range list {
		if list[i].ID == assignmentID {
			return &list[i], nil
		}
	}
	return nil, util.ErrAssignmentNotFound
}

// DeleteAssignment 按 ID 从 S1 列表中硬删除
func (g *Gradebook) DeleteAssignment(studentID, subjectID, assignmentID string) error {
	sub, err := g.FindSubject(studentID, subjectID)
	if err != nil {
		return err
	}
	list := sub.Semesters[util.SemesterOne]
	for i := range list {
		if list[i].ID == assignmentID {
			sub.Semesters[util.SemesterOne] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return util.ErrAssignmentNotFound
}

// SetWeights 按分类更新权重，非数字输入按 Number(v)||0 纠正为 0
func (s *Subject) SetWeights(values map[string]interface{}) {
	if s.Weights == nil {
		s.Weights = map[string]int{}
	}
	for typ, v := range values {
		s.Weights[typ] = int(util.ToNumber(v))
	}
}
