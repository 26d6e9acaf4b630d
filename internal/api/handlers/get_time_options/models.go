package get_time_options

// TimeOptionsResponse HTTP response model
type TimeOptionsResponse struct {
	MeetingID        int64    `json:"meetingId"`
	Increment        int      `json:"increment"`
	StartTimeOptions []string `json:"startTimeOptions"`
	EndTimeOptions   []string `json:"endTimeOptions"`
}
