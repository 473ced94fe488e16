package controller

import (
	"io"
	"strings"

	"gradebook_backend/internal/service"
	"gradebook_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	Service *service.GradebookService
}

func NewSubjectController(svc *service.GradebookService) *SubjectController {
	return &SubjectController{Service: svc}
}

type SubjectRequest struct {
	Name string `json:"name"`
}

// @Summary 新增科目
// @Description 科目创建时带默认权重 Homework:30 Quiz:30 Test:40
// @Tags 科目
// @Accept json
// @Produce json
// @Param studentId path string true "学生ID"
// @Param body body SubjectRequest true "科目信息"
// @Success 201 {object} util.Response
// @Router /gradebook/students/{studentId}/subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.Service.AddSubject(ownerID(ctx), ctx.Param("studentId"), req.Name)
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Created(ctx, sub)
}

// @Summary 科目成绩汇总
// @Description 加权成绩、简单平均、最近截止日期和作业列表
// @Tags 科目
// @Produce json
// @Param studentId path string true "学生ID"
// @Param subjectId path string true "科目ID"
// @Success 200 {object} util.Response
// @Router /gradebook/students/{studentId}/subjects/{subjectId} [get]
func (c *SubjectController) GetSummary(ctx *gin.Context) {
	summary, err := c.Service.SubjectSummary(ownerID(ctx), ctx.Param("studentId"), ctx.Param("subjectId"))
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// @Summary 调整分类权重
// @Description 权重为任意非负整数，不要求总和为 100；非数字输入按 0 处理
// @Tags 科目
// @Accept json
// @Produce json
// @Param studentId path string true "学生ID"
// @Param subjectId path string true "科目ID"
// @Success 200 {object} util.Response
// @Router /gradebook/students/{studentId}/subjects/{subjectId}/weights [put]
func (c *SubjectController) UpdateWeights(ctx *gin.Context) {
	var req map[string]interface{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	weights, err := c.Service.SetWeights(ownerID(ctx), ctx.Param("studentId"), ctx.Param("subjectId"), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Success(ctx, weights)
}

type ImportRequest struct {
	CSV string `json:"csv"`
}

// @Summary 导入作业表格
// @Description 首行表头 + 逗号分隔数据行；title 列必须存在，否则整批失败。
// @Description 请求体可以是 {"csv": "..."} 或直接的 text/csv 文本。
// @Tags 科目
// @Accept json
// @Produce json
// @Param studentId path string true "学生ID"
// @Param subjectId path string true "科目ID"
// @Success 200 {object} util.Response
// @Router /gradebook/students/{studentId}/subjects/{subjectId}/import [post]
func (c *SubjectController) ImportCSV(ctx *gin.Context) {
	text := ""
	if strings.HasPrefix(ctx.ContentType(), "application/json") {
		var req ImportRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		text = req.CSV
	} else {
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		text = string(body)
	}

	count, err := c.Service.ImportAssignments(ownerID(ctx), ctx.Param("studentId"), ctx.Param("subjectId"), text)
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"imported": count})
}
