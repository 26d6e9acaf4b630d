package book_meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBookingRequest() *Request {
	return &Request{
		MeetingID:  1,
		Name:       "Alice",
		Email:      "alice@example.com",
		BookedDate: "2023-08-23",
		BookedTime: "09:00",
	}
}

func TestValidateRequestEmails(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"plain address", "alice@example.com", false},
		{"plus and subdomain", "a.b+c@sub.example.co", false},
		{"not an email", "not-an-email", true},
		{"missing local part", "@nodomain.com", true},
		{"single letter tld", "user@tld.c", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			req.Email = tt.email

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmailInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequestGuestEmails(t *testing.T) {
	req := validBookingRequest()
	req.GuestEmails = []string{"bob@example.com", "carol@example.org"}
	assert.NoError(t, validateRequest(req))

	// один некорректный адрес отклоняет весь запрос
	req.GuestEmails = append(req.GuestEmails, "broken@")
	assert.ErrorIs(t, validateRequest(req), ErrEmailInvalid)
}

func TestValidateRequestFields(t *testing.T) {
	req := validBookingRequest()
	req.Name = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validBookingRequest()
	req.MeetingID = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validBookingRequest()
	req.BookedDate = "23-08-2023"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validBookingRequest()
	req.BookedTime = "9am"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}
