package msgs

const (
	MsgOperationSuccessful     = "operation successful"
	MsgOperationFailed         = "operation failed"
	MsgMessageSentSuccessfully = "message sent successfully"
	MsgThreadMarkedRead        = "thread marked as read"
	MsgYouMustLoginFirst       = "you must login first"
)
