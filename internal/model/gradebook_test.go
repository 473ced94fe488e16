package model

import (
	"encoding/json"
	"testing"
	"time"

	"gradebook_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent(t *testing.T) {
	st, err := NewStudent("  Alice  ")
	require.NoError(t, err)

	assert.Equal(t, "Alice", st.Name)
	assert.NotEmpty(t, st.ID)
	require.Len(t, st.Years, 1)
	assert.Equal(t, time.Now().Year(), st.Years[0].Year)
	assert.Empty(t, st.Years[0].Subjects)
}

func TestNewStudent_BlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		_, err := NewStudent(name)
		assert.ErrorIs(t, err, util.ErrNameRequired)
	}
}

func TestNewSubject(t *testing.T) {
	sub, err := NewSubject("Math")
	require.NoError(t, err)

	assert.Equal(t, "Math", sub.Name)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, map[string]int{
		util.TypeHomework: 30,
		util.TypeQuiz:     30,
		util.TypeTest:     40,
	}, sub.Weights)
	assert.Empty(t, sub.Semesters[util.SemesterOne])
	assert.Empty(t, sub.Semesters[util.SemesterTwo])

	_, err = NewSubject(" ")
	assert.ErrorIs(t, err, util.ErrNameRequired)
}

func TestNewAssignment_Coercion(t *testing.T) {
	tests := []struct {
		name      string
		typ       string
		score     interface{}
		max       interface{}
		due       string
		wantType  string
		wantScore float64
		wantMax   float64
		wantDue   string
	}{
		{"explicit values", "Quiz", 8.0, 10.0, "2024-05-01", "Quiz", 8, 10, "2024-05-01"},
		{"blank type falls back", "", 1.0, 2.0, "", "Homework", 1, 2, ""},
		{"numeric strings parse", "Test", "7.5", "10", "", "Test", 7.5, 10, ""},
		{"garbage coerces to zero", "Project", "abc", nil, "  ", "Project", 0, 0, ""},
		{"due is trimmed", "Homework", nil, nil, " 2024-06-01 ", "Homework", 0, 0, "2024-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssignment("HW", tt.typ, tt.score, tt.max, tt.due)
			assert.NotEmpty(t, a.ID)
			assert.Equal(t, tt.wantType, a.Type)
			assert.Equal(t, tt.wantScore, a.Score)
			assert.Equal(t, tt.wantMax, a.Max)
			assert.Equal(t, tt.wantDue, a.Due)
		})
	}
}

func buildGradebook(t *testing.T) (*Gradebook, *Student, *Subject) {
	t.Helper()
	gb := NewGradebook()

	st, err := gb.AddStudent("Alice")
	require.NoError(t, err)
	sub, err := gb.AddSubject(st.ID, "Math")
	require.NoError(t, err)
	return gb, st, sub
}

func TestGradebook_Lookups(t *testing.T) {
	gb, st, sub := buildGradebook(t)

	got, err := gb.FindStudent(st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = gb.FindStudent("nope")
	assert.ErrorIs(t, err, util.ErrStudentNotFound)

	_, err = gb.FindSubject(st.ID, sub.ID)
	require.NoError(t, err)

	_, err = gb.FindSubject(st.ID, "nope")
	assert.ErrorIs(t, err, util.ErrSubjectNotFound)

	_, err = gb.FindSubject("nope", sub.ID)
	assert.ErrorIs(t, err, util.ErrStudentNotFound)
}

func TestGradebook_Assignments(t *testing.T) {
	gb, st, sub := buildGradebook(t)

	a, err := gb.AddAssignment(st.ID, sub.ID, NewAssignment("Essay", "", 8, 10, "2024-05-01"))
	require.NoError(t, err)

	got, err := gb.FindAssignment(st.ID, sub.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Essay", got.Name)
	assert.Equal(t, util.TypeHomework, got.Type)

	_, err = gb.FindAssignment(st.ID, sub.ID, "nope")
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)

	require.NoError(t, gb.DeleteAssignment(st.ID, sub.ID, a.ID))
	assert.ErrorIs(t, gb.DeleteAssignment(st.ID, sub.ID, a.ID), util.ErrAssignmentNotFound)

	sub2, err := gb.FindSubject(st.ID, sub.ID)
	require.NoError(t, err)
	assert.Empty(t, sub2.Assignments())
}

func TestGradebook_AppendOrderPreserved(t *testing.T) {
	gb, st, sub := buildGradebook(t)

	for _, name := range []string{"a", "b", "c"} {
		_, err := gb.AddAssignment(st.ID, sub.ID, NewAssignment(name, "", 0, 0, ""))
		require.NoError(t, err)
	}

	got, err := gb.FindSubject(st.ID, sub.ID)
	require.NoError(t, err)
	names := []string{}
	for _, a := range got.Assignments() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestSubject_SetWeights(t *testing.T) {
	_, _, sub := buildGradebook(t)

	sub.SetWeights(map[string]interface{}{
		util.TypeHomework: 50.0,
		util.TypeQuiz:     "20",
		util.TypeTest:     "garbage",
		util.TypeProject:  10.0,
	})

	assert.Equal(t, 50, sub.Weights[util.TypeHomework])
	assert.Equal(t, 20, sub.Weights[util.TypeQuiz])
	assert.Equal(t, 0, sub.Weights[util.TypeTest])
	assert.Equal(t, 10, sub.Weights[util.TypeProject])
}

func TestGradebook_JSONRoundTrip(t *testing.T) {
	gb, st, sub := buildGradebook(t)
	_, err := gb.AddAssignment(st.ID, sub.ID, NewAssignment("Essay", "Quiz", 8, 10, "2024-05-01"))
	require.NoError(t, err)
	_, err = gb.AddAssignment(st.ID, sub.ID, NewAssignment("No due", "", 0, 0, ""))
	require.NoError(t, err)

	data, err := json.Marshal(gb)
	require.NoError(t, err)

	loaded := NewGradebook()
	require.NoError(t, json.Unmarshal(data, loaded))
	assert.Equal(t, gb, loaded)
}
