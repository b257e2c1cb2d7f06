package envelope

// Message keys resolved through the translator bundle.
const (
	MsgMemberCreated        = "memberCreated"
	MsgMemberUpdated        = "memberUpdated"
	MsgMemberDeleted        = "memberDeleted"
	MsgMemberNotFound       = "memberNotFound"
	MsgMemberRequiredFields = "memberRequiredFields"
	MsgEmailExists          = "emailExists"
	MsgFailListMembers      = "failListMembers"
	MsgFailCreateMember     = "failCreateMember"
	MsgFailUpdateMember     = "failUpdateMember"
	MsgFailDeleteMember     = "failDeleteMember"

	MsgTaskCreated    = "taskCreated"
	MsgTaskUpdated    = "taskUpdated"
	MsgTaskDeleted    = "taskDeleted"
	MsgTaskNotFound   = "taskNotFound"
	MsgFailListTasks  = "failListTasks"
	MsgFailGetTask    = "failGetTask"
	MsgFailCreateTask = "failCreateTask"
	MsgFailUpdateTask = "failUpdateTask"
	MsgFailDeleteTask = "failDeleteTask"

	MsgValidationErrors = "validationErrors"
	MsgInvalidPayload   = "invalidPayload"
	MsgEndpointNotFound = "endpointNotFound"
	MsgInternalError    = "internalError"
)
