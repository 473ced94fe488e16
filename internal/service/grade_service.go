package service

import (
	"math"

	"gradebook_backend/internal/model"
)

// GradeService 计算单个科目的加权成绩，纯计算，无副作用
type GradeService struct{}

func NewGradeService() *GradeService {
	return &GradeService{}
}

// WeightedAverage 按分类加权计算百分比成绩。
// 每个分类取 type 匹配且 max > 0 的作业子集，子集为空的分类
// 连同其权重一起排除在分母之外；所有分类都为空时返回 0。
// 结果不做 100 封顶，得分超过满分时可以超过 100。
func (s *GradeService) WeightedAverage(assignments []model.Assignment, weights map[string]int) int {
	total := 0.0
	usedWeight := 0

	for typ, weight := range weights {
		earned := 0.0
		possible := 0.0
		for _, a := range assignments {
			if a.Type != typ || a.Max <= 0 {
				continue
			}
			earned += a.Score
			possible += a.Max
		}
		if possible == 0 {
			continue
		}
		total += earned / possible * float64(weight)
		usedWeight += weight
	}

	if usedWeight == 0 {
		return 0
	}
	return int(math.Round(total / float64(usedWeight) * 100))
}

// Average 不加权的简单平均，总满分为 0 时返回 0
func (s *GradeService) Average(assignments []model.Assignment) int {
	earned := 0.0
	possible := 0.0
	for _, a := range assignments {
		earned += a.Score
		possible += a.Max
	}
	if possible == 0 {
		return 0
	}
	return int(math.Round(earned / possible * 100))
}
