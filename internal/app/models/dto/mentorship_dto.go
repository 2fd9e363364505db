package dto

// CreateMentorshipRequest is the payload for POST /mentorship-requests.
// The mentee is always the caller; the mentor is chosen by the caller.
type CreateMentorshipRequest struct {
	MentorID int64  `json:"mentor_id" binding:"required"`
	Message  string `json:"message" binding:"required"`
}
