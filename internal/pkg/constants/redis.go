package constants

// Redis key formats
const (
	KeyApplicantOTP = "applicant:otp:%s" // Format: applicant:otp:{phone}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
