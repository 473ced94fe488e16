package controller

import (
	"strconv"

	"gradebook_backend/internal/service"
	"gradebook_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GradebookController struct {
	Service *service.GradebookService
}

func NewGradebookController(svc *service.GradebookService) *GradebookController {
	return &GradebookController{Service: svc}
}

// @Summary 获取整本成绩册
// @Description 返回当前 owner 的完整成绩册文档，没有存档时返回空文档
// @Tags 成绩册
// @Produce json
// @Param owner query string false "账本标识，默认 local"
// @Success 200 {object} util.Response
// @Router /gradebook [get]
func (c *GradebookController) GetGradebook(ctx *gin.Context) {
	gb, err := c.Service.Load(ownerID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Success(ctx, gb)
}

// @Summary 学生科目概览
// @Description 每个学生的科目列表，附加权成绩和最近截止日期
// @Tags 成绩册
// @Produce json
// @Success 200 {object} util.Response
// @Router /gradebook/overview [get]
func (c *GradebookController) GetOverview(ctx *gin.Context) {
	overview, err := c.Service.Overview(ownerID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// @Summary 本周待办作业
// @Description 展望窗口内所有学生的作业，按截止日期升序
// @Tags 日程
// @Produce json
// @Param days query int false "展望天数，默认取配置值"
// @Success 200 {object} util.Response
// @Router /gradebook/upcoming [get]
func (c *GradebookController) GetUpcoming(ctx *gin.Context) {
	days := 0
	if v := ctx.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}

	upcoming, err := c.Service.Upcoming(ownerID(ctx), days)
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Success(ctx, upcoming)
}

type StudentRequest struct {
	Name string `json:"name"`
}

// @Summary 新增学生
// @Tags 成绩册
// @Accept json
// @Produce json
// @Param body body StudentRequest true "学生信息"
// @Success 201 {object} util.Response
// @Router /gradebook/students [post]
func (c *GradebookController) CreateStudent(ctx *gin.Context) {
	var req StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	st, err := c.Service.AddStudent(ownerID(ctx), req.Name)
	if err != nil {
		fail(ctx, err)
		return
	}
	util.Created(ctx, st)
}
