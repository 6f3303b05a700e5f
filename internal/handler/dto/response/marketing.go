package response

import "salon-booking/internal/usecase/queries"

type EmailTemplateResponse = queries.EmailTemplateView

type SocialPostResponse = queries.SocialPostView

type SendEmailsResponse struct {
	Queued int `json:"queued"`
}

type SubscribeResponse struct {
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
	Created    bool   `json:"created"`
}
