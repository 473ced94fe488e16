package util

const DateFormat = "2006-01-02"

// 学期键，引擎只读写 S1，S2 为预留结构
const (
	SemesterOne = "S1"
	SemesterTwo = "S2"
)

// 作业类型（同时作为加权分类）
const (
	TypeHomework = "Homework"
	TypeQuiz     = "Quiz"
	TypeTest     = "Test"
	TypeProject  = "Project"
)
