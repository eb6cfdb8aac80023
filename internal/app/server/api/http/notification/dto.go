package notification

import "securenest/internal/domain/notification"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Notifications []notification.Notification `json:"notifications"`
	Unread        int                         `json:"unread"`
}

type readOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}
