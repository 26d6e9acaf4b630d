package mailservice

// SendEmailRequest запрос на отправку письма
// HTML уходит как есть: шаблоны писем собираются на стороне вызывающего
type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// ErrorResponse модель ошибки от MailService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
