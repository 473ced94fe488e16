package controller

import (
	"gradebook_backend/internal/service"
	"gradebook_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	Service *service.GradebookService
}

func NewAssignmentController(svc *service.GradebookService) *AssignmentController {
	return &AssignmentController{Service: svc}
}

// @Summary 新增作业
// @Description 类型为空时回落为 Homework，非数字分数按 0 处理，空白截止日期视为缺省
// @Tags 作业
// @Accept json
// @Produce json
// @Param studentId path string true "学生ID"
// @Param subjectId path string true "科目ID"
// @Param body body service.AssignmentRequest true "作业信息"
// @Success 201 {object} util.Response
// @Router /gradebook/students/{studentId}/subjects/{subjectId}/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.AddAssignment(ownerID(ctx), ctx.Param("studentId"), ctx.Param("subjectId"), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// @Summary 更新作业字段
// @Tags 作业
// @Accept json
// @Produce json
// @Param studentId path string true "学生ID"
// @Param subjectId path string true "科目ID"
// @Param assignmentId path string true "作业ID"
// @Param body body service.AssignmentUpdateRequest true "要更新的字段"
// @Success 200 {object} util.Response
// @Router /gradebook/students/{studentId}/subjects/{subjectId}/assignments/{assignmentId} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req service.AssignmentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.UpdateAssignment(ownerID(ctx), ctx.Param("studentId"), ctx.Param("subjectId"), ctx.Param("assignmentId"), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// @Summary 删除作业
// @Tags 作业
// @Produce json
// @Param studentId path string true "学生ID"
// @Param subjectId path string true "科目ID"
// @Param assignmentId path string true "作业ID"
// @Success 200 {object} util.Response
// @Router /gradebook/students/{studentId}/subjects/{subjectId}/assignments/{assignmentId} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	err := c.Service.DeleteAssignment(ownerID(ctx), ctx.Param("studentId"), ctx.Param("subjectId"), ctx.Param("assignmentId"))
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
