package service

import (
	"testing"

	"gradebook_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	importSvc := NewImportService()

	parsed, err := importSvc.ParseAssignments("title,score,max,due\nEssay,8,10,2024-05-01\n,,,")
	require.NoError(t, err)
	require.Len(t, parsed, 1)

	a := parsed[0]
	assert.Equal(t, "Essay", a.Name)
	assert.Equal(t, util.TypeHomework, a.Type)
	assert.Equal(t, 8.0, a.Score)
	assert.Equal(t, 10.0, a.Max)
	assert.Equal(t, "2024-05-01", a.Due)
	assert.NotEmpty(t, a.ID)
}

func TestParseAssignments_MissingTitleColumn(t *testing.T) {
	importSvc := NewImportService()

	for _, text := range []string{
		"name,score\nEssay,8",
		"",
		"score,max,due",
	} {
		_, err := importSvc.ParseAssignments(text)
		assert.ErrorIs(t, err, util.ErrMissingTitleColumn)
	}
}

func TestParseAssignments_HeaderCaseInsensitive(t *testing.T) {
	importSvc := NewImportService()

	parsed, err := importSvc.ParseAssignments("TITLE, Score ,MAX\nEssay,5,10")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, 5.0, parsed[0].Score)
	assert.Equal(t, 10.0, parsed[0].Max)
}

func TestParseAssignments_OptionalColumnsDefault(t *testing.T) {
	importSvc := NewImportService()

	parsed, err := importSvc.ParseAssignments("title\nEssay\nQuiz prep")
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	for _, a := range parsed {
		assert.Equal(t, 0.0, a.Score)
		assert.Equal(t, 0.0, a.Max)
		assert.Equal(t, "", a.Due)
		assert.Equal(t, util.TypeHomework, a.Type)
	}
}

func TestParseAssignments_BadRowsCoerced(t *testing.T) {
	importSvc := NewImportService()

	parsed, err := importSvc.ParseAssignments("title,score,max,due\nEssay,abc,xyz,  2024-05-01 \nShort row")
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, 0.0, parsed[0].Score)
	assert.Equal(t, 0.0, parsed[0].Max)
	assert.Equal(t, "2024-05-01", parsed[0].Due)

	// 行太短时缺失的列按缺省处理
	assert.Equal(t, "Short row", parsed[1].Name)
	assert.Equal(t, 0.0, parsed[1].Score)
	assert.Equal(t, "", parsed[1].Due)
}

func TestParseAssignments_CRLFAndHeaderOnly(t *testing.T) {
	importSvc := NewImportService()

	parsed, err := importSvc.ParseAssignments("title,score\r\nEssay,8\r\n")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, 8.0, parsed[0].Score)

	// 只有表头也是合法输入
	parsed, err = importSvc.ParseAssignments("title,score,max,due")
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

func TestParseAssignments_FileOrderPreserved(t *testing.T) {
	importSvc := NewImportService()

	parsed, err := importSvc.ParseAssignments("title\nfirst\nsecond\nthird")
	require.NoError(t, err)
	require.Len(t, parsed, 3)
	assert.Equal(t, "first", parsed[0].Name)
	assert.Equal(t, "second", parsed[1].Name)
	assert.Equal(t, "third", parsed[2].Name)
}
