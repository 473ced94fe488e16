package service

import (
	"testing"
	"time"

	"gradebook_backend/internal/model"
	"gradebook_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 固定"今天"为 2024-04-28
func newTestSchedule(t *testing.T) *ScheduleService {
	t.Helper()
	s := NewScheduleService(7)
	s.now = func() time.Time {
		return time.Date(2024, 4, 28, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func dueAsn(name, due string) model.Assignment {
	return model.Assignment{Name: name, Type: util.TypeHomework, Due: due}
}

func TestNextDueDate(t *testing.T) {
	schedule := newTestSchedule(t)

	tests := []struct {
		name        string
		assignments []model.Assignment
		want        string
	}{
		{
			name: "earliest upcoming wins",
			assignments: []model.Assignment{
				dueAsn("b", "2024-05-03"),
				dueAsn("a", "2024-04-30"),
				dueAsn("c", "2024-06-01"),
			},
			want: "2024-04-30",
		},
		{
			name: "today counts",
			assignments: []model.Assignment{
				dueAsn("a", "2024-04-28"),
			},
			want: "2024-04-28",
		},
		{
			name: "past dates excluded",
			assignments: []model.Assignment{
				dueAsn("a", "2024-04-27"),
				dueAsn("b", "2023-12-31"),
			},
			want: "",
		},
		{
			name: "absent and malformed dues skipped",
			assignments: []model.Assignment{
				dueAsn("a", ""),
				dueAsn("b", "05/01/2024"),
				dueAsn("c", "not-a-date"),
				dueAsn("d", "2024-05-02"),
			},
			want: "2024-05-02",
		},
		{
			name:        "no assignments",
			assignments: nil,
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.NextDueDate(tt.assignments)
			assert.Equal(t, tt.want, got)
			// 相同输入重复调用结果不变
			assert.Equal(t, got, schedule.NextDueDate(tt.assignments))
		})
	}
}

func TestUpcomingAssignments_Window(t *testing.T) {
	schedule := newTestSchedule(t)

	gb := model.NewGradebook()
	st, err := gb.AddStudent("Alice")
	require.NoError(t, err)
	sub, err := gb.AddSubject(st.ID, "Math")
	require.NoError(t, err)
	for _, a := range []struct{ name, due string }{
		{"past", "2024-04-27"},
		{"today", "2024-04-28"},
		{"edge", "2024-05-05"},   // today + 7，闭区间内
		{"beyond", "2024-05-06"}, // 窗口外
		{"no due", ""},
		{"bad due", "soon"},
	} {
		_, err := gb.AddAssignment(st.ID, sub.ID, model.NewAssignment(a.name, "", 0, 0, a.due))
		require.NoError(t, err)
	}

	got := schedule.UpcomingAssignments(gb, 0)
	require.Len(t, got, 2)
	assert.Equal(t, "today", got[0].Title)
	assert.Equal(t, "2024-04-28", got[0].Due)
	assert.Equal(t, "edge", got[1].Title)
	assert.Equal(t, "Alice", got[0].StudentName)
	assert.Equal(t, "Math", got[0].SubjectName)
}

func TestUpcomingAssignments_SortedAndStable(t *testing.T) {
	schedule := newTestSchedule(t)

	gb := model.NewGradebook()
	st, err := gb.AddStudent("Alice")
	require.NoError(t, err)
	sub, err := gb.AddSubject(st.ID, "Math")
	require.NoError(t, err)
	for _, a := range []struct{ name, due string }{
		{"late", "2024-05-02"},
		{"first-equal", "2024-04-30"},
		{"second-equal", "2024-04-30"},
		{"early", "2024-04-29"},
	} {
		_, err := gb.AddAssignment(st.ID, sub.ID, model.NewAssignment(a.name, "", 0, 0, a.due))
		require.NoError(t, err)
	}

	got := schedule.UpcomingAssignments(gb, 7)
	require.Len(t, got, 4)
	assert.Equal(t, "early", got[0].Title)
	// 相同日期保持录入顺序
	assert.Equal(t, "first-equal", got[1].Title)
	assert.Equal(t, "second-equal", got[2].Title)
	assert.Equal(t, "late", got[3].Title)
}

func TestUpcomingAssignments_ScansAllStudents(t *testing.T) {
	schedule := newTestSchedule(t)

	gb := model.NewGradebook()
	for _, name := range []string{"Alice", "Bob"} {
		st, err := gb.AddStudent(name)
		require.NoError(t, err)
		sub, err := gb.AddSubject(st.ID, "Math")
		require.NoError(t, err)
		_, err = gb.AddAssignment(st.ID, sub.ID, model.NewAssignment("hw", "", 0, 0, "2024-04-29"))
		require.NoError(t, err)
	}

	got := schedule.UpcomingAssignments(gb, 7)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].StudentName)
	assert.Equal(t, "Bob", got[1].StudentName)
}

func TestUpcomingAssignments_EmptyGradebook(t *testing.T) {
	schedule := newTestSchedule(t)
	got := schedule.UpcomingAssignments(model.NewGradebook(), 7)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSetWindowDays(t *testing.T) {
	schedule := NewScheduleService(7)
	schedule.SetWindowDays(14)
	assert.Equal(t, 14, schedule.WindowDays)
	schedule.SetWindowDays(0) // 非法值忽略
	assert.Equal(t, 14, schedule.WindowDays)
}
