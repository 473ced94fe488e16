package service

import (
	"sort"
	"time"

	"gradebook_backend/internal/model"
	"gradebook_backend/internal/util"
)

// ScheduleService 聚合临近的作业截止日期。
// 日期一律使用补零的 ISO 格式（YYYY-MM-DD），因此字符串比较等价于时间比较。
type ScheduleService struct {
	WindowDays int

	now func() time.Time
}

func NewScheduleService(windowDays int) *ScheduleService {
	return &ScheduleService{
		WindowDays: windowDays,
		now:        time.Now,
	}
}

// SetWindowDays 供配置热更新回调调整展望窗口
func (s *ScheduleService) SetWindowDays(days int) {
	if days > 0 {
		s.WindowDays = days
	}
}

// UpcomingAssignment 展望窗口内的一条待办作业
type UpcomingAssignment struct {
	StudentName string `json:"student"`
	SubjectName string `json:"subject"`
	Title       string `json:"title"`
	Due         string `json:"due"`
}

// NextDueDate 返回 due >= 今天 的最早截止日期，没有时返回空串。
// 缺省或非法的 due 直接跳过，不报错。
func (s *ScheduleService) NextDueDate(assignments []model.Assignment) string {
	today := s.now().Format(util.DateFormat)

	next := ""
	for _, a := range assignments {
		if !validDue(a.Due) || a.Due < today {
			continue
		}
		if next == "" || a.Due < next {
			next = a.Due
		}
	}
	return next
}

// UpcomingAssignments 全量扫描所有学生当前学年的 S1 作业，
// 取 due 落在 [今天, 今天+windowDays] 闭区间内的条目，按 due 稳定升序。
// windowDays <= 0 时使用配置的默认窗口。每次调用都重新计算，不缓存。
func (s *ScheduleService) UpcomingAssignments(gb *model.Gradebook, windowDays int) []UpcomingAssignment {
	if windowDays <= 0 {
		windowDays = s.WindowDays
	}

	now := s.now()
	today := now.Format(util.DateFormat)
	horizon := now.AddDate(0, 0, windowDays).Format(util.DateFormat)

	upcoming := []UpcomingAssignment{}
	for i := range gb.Students {
		student := &gb.Students[i]
		year := student.CurrentYear()
		if year == nil {
			continue
		}
		for j := range year.Subjects {
			subject := &year.Subjects[j]
			for _, a := range subject.Assignments() {
				if !validDue(a.Due) || a.Due < today || a.Due > horizon {
					continue
				}
				upcoming = append(upcoming, UpcomingAssignment{
					StudentName: student.Name,
					SubjectName: subject.Name,
					Title:       a.Name,
					Due:         a.Due,
				})
			}
		}
	}

	// 相同日期保持遍历顺序
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Due < upcoming[j].Due
	})
	return upcoming
}

func validDue(due string) bool {
	if due == "" {
		return false
	}
	_, err := time.Parse(util.DateFormat, due)
	return err == nil
}
