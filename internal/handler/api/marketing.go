package api

import (
	"net/http"
	"strings"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MarketingHandler struct {
	cmds commands.MarketingCommands
	q    queries.MarketingQueries
}

func NewMarketingHandler(cmds commands.MarketingCommands, q queries.MarketingQueries) *MarketingHandler {
	return &MarketingHandler{cmds: cmds, q: q}
}

// @Summary List email templates
// @Tags marketing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EmailTemplateResponse
// @Router /admin/email-templates [get]
func (h *MarketingHandler) ListTemplates(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	templates, err := h.q.ListTemplates(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(templates))
}

// @Summary Create email template
// @Description Body placeholders use Go template syntax, e.g. {{.FirstName}}
// @Tags marketing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTemplateRequest true "Template"
// @Success 201 {object} resdto.EmailTemplateResponse
// @Failure 422 {object} httperr.Response
// @Router /admin/email-templates [post]
func (h *MarketingHandler) CreateTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tpl, err := h.cmds.CreateTemplate(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// @Summary Queue a mailing
// @Description One email job per recipient is written to the outbox
// @Tags marketing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendEmailsRequest true "Mailing"
// @Success 202 {object} resdto.SendEmailsResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/emails/send [post]
func (h *MarketingHandler) SendEmails(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.SendEmailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	queued, err := h.cmds.SendEmails(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.SendEmailsResponse{Queued: queued})
}

// @Summary List social posts
// @Tags marketing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SocialPostResponse
// @Router /admin/social-media [get]
func (h *MarketingHandler) ListPosts(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	posts, err := h.q.ListPosts(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(posts))
}

// @Summary Create social post
// @Tags marketing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PostRequest true "Post"
// @Success 201 {object} resdto.SocialPostResponse
// @Failure 422 {object} httperr.Response
// @Router /admin/social-media [post]
func (h *MarketingHandler) CreatePost(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.cmds.CreatePost(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// @Summary Update social post
// @Tags marketing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body reqdto.PostRequest true "Post"
// @Success 200 {object} resdto.SocialPostResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/social-media/{id} [put]
func (h *MarketingHandler) UpdatePost(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.cmds.UpdatePost(c.Request.Context(), actor, id, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary Delete social post
// @Tags marketing
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/social-media/{id} [delete]
func (h *MarketingHandler) DeletePost(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeletePost(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Publish social post
// @Description Marks the post published and queues a social job
// @Tags marketing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishPostRequest true "Post to publish"
// @Success 200 {object} resdto.SocialPostResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/social-media/publish [post]
func (h *MarketingHandler) PublishPost(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.PublishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.cmds.PublishPost(c.Request.Context(), actor, req.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary Subscribe to the newsletter
// @Description Public and idempotent
// @Tags marketing
// @Produce json
// @Param email query string true "Email"
// @Param organization query string true "Organization slug"
// @Success 200 {object} resdto.SubscribeResponse
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /newsletter/subscribe [get]
func (h *MarketingHandler) Subscribe(c *gin.Context) {
	var q reqdto.SubscribeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.cmds.Subscribe(c.Request.Context(), q.Organization, q.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SubscribeResponse{
		Email:      strings.ToLower(strings.TrimSpace(q.Email)),
		Subscribed: true,
		Created:    created,
	})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
