package commons

const (
	MessageValidationFailed    = "validation failed"
	MessageClientNotFound      = "Client not found"
	MessageAccountNotFound     = "Account not found"
	MessageClientExists        = "Client already exists"
	MessageTransactionRejected = "Transaction rejected"
)
