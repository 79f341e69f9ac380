package constants

// NSQ topics
const (
	// SMS dispatch, consumed by the external SMS gateway
	TopicSMSVerification = "sms.verification"
	TopicSMSNotification = "sms.notification"
)
