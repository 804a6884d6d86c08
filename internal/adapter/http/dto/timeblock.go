package dto

type TimeBlockItem struct {
	ID        uint64 `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CreateTimeBlockRequest struct {
	TaskID    uint64 `json:"task_id" binding:"required,gt=0"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
