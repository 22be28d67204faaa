// Package server is the thin REST glue between HTTP and the content core.
// Handlers do translation only: resolve identity from the request context,
// call one content operation, map the outcome to a status code.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
	"github.com/rkuznetsov/inkwell/server/content"
	"github.com/rkuznetsov/inkwell/server/middlewares"
	"github.com/rkuznetsov/inkwell/utils"
	"github.com/rkuznetsov/inkwell/utils/log"
)

// ArticleDigest is the listing-level projection of an article.
type ArticleDigest struct {
	Id               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ArticleDetail adds the engagement data the detail page shows.
type ArticleDetail struct {
	ArticleDigest
	FullDescription string          `json:"full_description"`
	AgeLabel        string          `json:"age_label"`
	ViewCount       int64           `json:"view_count"`
	RatingSum       int             `json:"rating_sum"`
	Similar         []ArticleDigest `json:"similar"`
}

// Handlers bundles the shared dependencies of every route.
type Handlers struct {
	DB          *gorm.DB
	StatusStore *utils.OnlineStatusStore
}

// translateError maps the content failure taxonomy onto HTTP codes.
// Anything outside the taxonomy is a 500 and gets logged; conflict retries
// already happened inside content and never show up here.
func translateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Log.Error("internal error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func digests(articles []*model.Article) []ArticleDigest {
	out := make([]ArticleDigest, 0, len(articles))
	for _, article := range articles {
		var digest ArticleDigest
		copier.Copy(&digest, article)
		out = append(out, digest)
	}
	return out
}

// GetArticle renders the detail page payload. Loading the page is what
// counts the view, exactly once per client.
func (h *Handlers) GetArticle(c *gin.Context) {
	article, err := content.GetArticleBySlug(h.DB, c.Param("slug"))
	if err != nil {
		translateError(c, err)
		return
	}

	if _, err := content.RecordView(h.DB, article.Id, middlewares.ClientKey(c)); err != nil {
		translateError(c, err)
		return
	}

	similar, err := content.SimilarArticles(h.DB, article.Id)
	if err != nil {
		translateError(c, err)
		return
	}
	views, err := content.ViewCount(h.DB, article.Id)
	if err != nil {
		translateError(c, err)
		return
	}
	sum, err := content.RatingSum(h.DB, article.Id)
	if err != nil {
		translateError(c, err)
		return
	}

	var detail ArticleDetail
	copier.Copy(&detail, article)
	detail.AgeLabel = content.AgeLabel(article.UpdatedAt, time.Now())
	detail.ViewCount = views
	detail.RatingSum = sum
	detail.Similar = digests(similar)
	c.JSON(http.StatusOK, detail)
}

type createArticleRequest struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	CategoryID       *string  `json:"category_id"`
	TagIDs           []string `json:"tag_ids"`
	Status           string   `json:"status"`
}

func (h *Handlers) CreateArticle(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middlewares.UserID(c)
	author := ""
	if userID != nil {
		author = *userID
	}
	article, err := content.CreateArticle(h.DB, author, content.ArticleInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		CategoryID:       req.CategoryID,
		TagIDs:           req.TagIDs,
		Status:           req.Status,
	})
	if err != nil {
		translateError(c, err)
		return
	}
	var digest ArticleDigest
	copier.Copy(&digest, article)
	c.JSON(http.StatusCreated, digest)
}

type voteRequest struct {
	Value int `json:"value"`
}

func (h *Handlers) CastVote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	article, err := content.GetArticleBySlug(h.DB, c.Param("slug"))
	if err != nil {
		translateError(c, err)
		return
	}
	result, err := content.CastVote(h.DB, article.Id, middlewares.ClientKey(c), middlewares.UserID(c), req.Value)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handlers) ToggleFollow(c *gin.Context) {
	result, err := content.ToggleFollow(h.DB, middlewares.ProfileID(c), c.Param("slug"))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handlers) GetProfile(c *gin.Context) {
	profile, err := content.GetProfileBySlug(h.DB, c.Param("slug"))
	if err != nil {
		translateError(c, err)
		return
	}

	online := false
	if h.StatusStore != nil {
		online, err = content.IsProfileOnline(h.StatusStore, profile)
		if err != nil {
			log.Log.Warn("fail to check online status: ", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"slug":      profile.Slug,
		"username":  profile.User.Username,
		"bio":       profile.Bio,
		"is_online": online,
	})
}

func (h *Handlers) PopularArticles(c *gin.Context) {
	articles, err := content.PopularArticles(h.DB, time.Now())
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": digests(articles)})
}

func (h *Handlers) PopularTags(c *gin.Context) {
	tags, err := content.PopularTags(h.DB)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tags})
}

type createCommentRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parent_id"`
}

func (h *Handlers) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middlewares.UserID(c)
	author := ""
	if userID != nil {
		author = *userID
	}
	article, err := content.GetArticleBySlug(h.DB, c.Param("slug"))
	if err != nil {
		translateError(c, err)
		return
	}
	comment, err := content.CreateComment(h.DB, article.Id, author, req.ParentID, req.Content)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handlers) GetComments(c *gin.Context) {
	article, err := content.GetArticleBySlug(h.DB, c.Param("slug"))
	if err != nil {
		translateError(c, err)
		return
	}
	tree, err := content.CommentTree(h.DB, article.Id)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tree})
}

func (h *Handlers) LatestComments(c *gin.Context) {
	comments, err := content.LatestComments(h.DB, 5)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": comments})
}

func (h *Handlers) ArticlesByCategory(c *gin.Context) {
	articles, err := content.ArticlesByCategory(h.DB, c.Param("slug"))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": digests(articles)})
}

func (h *Handlers) ArticlesByTag(c *gin.Context) {
	articles, err := content.ArticlesByTag(h.DB, c.Param("slug"))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": digests(articles)})
}

func (h *Handlers) AuthorFeed(c *gin.Context) {
	articles, err := content.ArticlesByFollowedAuthors(h.DB, middlewares.ProfileID(c))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": digests(articles)})
}

func (h *Handlers) Search(c *gin.Context) {
	articles, err := content.SearchArticles(h.DB, c.Query("do"))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": digests(articles)})
}

func (h *Handlers) Categories(c *gin.Context) {
	tree, err := content.CategoryTree(h.DB)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tree})
}

type feedbackRequest struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

func (h *Handlers) CreateFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	feedback, err := content.CreateFeedback(h.DB, content.FeedbackInput{
		Subject: req.Subject,
		Email:   req.Email,
		Content: req.Content,
	}, middlewares.ClientKey(c), middlewares.UserID(c))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": feedback.Id})
}

// RegisterRoutes wires every endpoint onto the router.
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	router.GET("/articles/:slug", h.GetArticle)
	router.POST("/articles", h.CreateArticle)
	router.POST("/articles/:slug/vote", h.CastVote)
	router.POST("/articles/:slug/comments", h.CreateComment)
	router.GET("/articles/:slug/comments", h.GetComments)

	// Static segments would clash with the :slug wildcard above, so the
	// rankings live under their own prefix.
	router.GET("/popular/articles", h.PopularArticles)
	router.GET("/popular/tags", h.PopularTags)

	router.GET("/tags/:slug/articles", h.ArticlesByTag)

	router.GET("/categories", h.Categories)
	router.GET("/categories/:slug/articles", h.ArticlesByCategory)

	router.GET("/profiles/:slug", h.GetProfile)
	router.POST("/profiles/:slug/follow", h.ToggleFollow)

	router.GET("/comments/latest", h.LatestComments)

	router.GET("/feed", h.AuthorFeed)
	router.GET("/search", h.Search)
	router.POST("/feedback", h.CreateFeedback)
}
