package apierrors

const (
	MsgInvalidDate             = "invalidDate"
	MsgInvalidTimestamp        = "invalidTimestamp"
	MsgInvalidInterval         = "invalidInterval"
	MsgInvalidTaskID           = "invalidTaskID"
	MsgInvalidTaskPayload      = "invalidTaskPayload"
	MsgTaskNotFound            = "taskNotFound"
	MsgFailListTask            = "errorListTask"
	MsgFailCreateTask          = "failCreateTask"
	MsgFailUpdateTask          = "failUpdateTask"
	MsgFailDeleteTask          = "failDeleteTask"
	MsgInvalidTimeBlockID      = "invalidTimeBlockID"
	MsgInvalidTimeBlockPayload = "invalidTimeBlockPayload"
	MsgTimeBlockNotFound       = "timeBlockNotFound"
	MsgOverlappingInterval     = "overlappingInterval"
	MsgFailListTimeBlocks      = "failListTimeBlocks"
	MsgFailCreateTimeBlock     = "failCreateTimeBlock"
	MsgFailDeleteTimeBlock     = "failDeleteTimeBlock"
	MsgFailStats               = "failStats"
)
