package dto

// GenerateContentDTO 正文生成请求
type GenerateContentDTO struct {
	Title    string   `json:"title" binding:"required" validate:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// GenerateResultDTO 生成结果，source 标记内容来源（remote / template）
type GenerateResultDTO struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Note    string `json:"note,omitempty"`
}

// ImproveContentDTO 正文优化请求
type ImproveContentDTO struct {
	Content string `json:"content" binding:"required" validate:"required"`
	Mode    string `json:"mode" validate:"omitempty,oneof=enhance expand simplify"`
}

// ImproveResultDTO 优化结果
type ImproveResultDTO struct {
	Content string `json:"content"`
}
