package webapi

import (
	stdjson "encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/storage"
)

type blogPostPayload struct {
	Title     string  `json:"title" validate:"required"`
	Category  string  `json:"category" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	ImageURL  *string `json:"imageUrl"`
	Published *bool   `json:"published"`
}

func (a *API) listBlogPosts(c echo.Context) error {
	posts, err := a.store.GetAllBlogPosts()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch blog posts")
	}
	return ok(c, posts)
}

func (a *API) getBlogPost(c echo.Context) error {
	post, err := a.store.GetBlogPost(c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Blog post not found")
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch blog post")
	}
	return ok(c, post)
}

func (a *API) createBlogPost(c echo.Context) error {
	var payload blogPostPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid blog post data")
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid blog post data")
	}

	post, err := a.store.CreateBlogPost(domain.InsertBlogPost{
		Title:     payload.Title,
		Category:  payload.Category,
		Content:   payload.Content,
		ImageURL:  payload.ImageURL,
		Published: payload.Published,
	})
	if err != nil {
		zap.L().Error("blog post create failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to save blog post")
	}
	return ok(c, post)
}

// updateBlogPost decodes the body into a field map so a key that is
// present with an explicit null is not mistaken for an absent key.
// stdlib RawMessage is used here on purpose: jsoniter collapses a null
// value to an empty RawMessage and loses that distinction.
func (a *API) updateBlogPost(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Failed to update blog post")
	}
	var fields map[string]stdjson.RawMessage
	if err := stdjson.Unmarshal(body, &fields); err != nil {
		return fail(c, http.StatusBadRequest, "Failed to update blog post")
	}

	var patch domain.BlogPostPatch
	if raw, ok := fields["title"]; ok {
		if err := stdjson.Unmarshal(raw, &patch.Title); err != nil {
			return fail(c, http.StatusBadRequest, "Failed to update blog post")
		}
	}
	if raw, ok := fields["category"]; ok {
		if err := stdjson.Unmarshal(raw, &patch.Category); err != nil {
			return fail(c, http.StatusBadRequest, "Failed to update blog post")
		}
	}
	if raw, ok := fields["content"]; ok {
		if err := stdjson.Unmarshal(raw, &patch.Content); err != nil {
			return fail(c, http.StatusBadRequest, "Failed to update blog post")
		}
	}
	if raw, ok := fields["imageUrl"]; ok {
		patch.ImageURL.Set = true
		if string(raw) != "null" {
			var url string
			if err := stdjson.Unmarshal(raw, &url); err != nil {
				return fail(c, http.StatusBadRequest, "Failed to update blog post")
			}
			patch.ImageURL.Valid = true
			patch.ImageURL.Value = url
		}
	}
	if raw, ok := fields["published"]; ok {
		if err := stdjson.Unmarshal(raw, &patch.Published); err != nil {
			return fail(c, http.StatusBadRequest, "Failed to update blog post")
		}
	}

	post, err := a.store.UpdateBlogPost(c.Param("id"), patch)
	if errors.Is(err, storage.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Blog post not found")
	} else if err != nil {
		return fail(c, http.StatusBadRequest, "Failed to update blog post")
	}
	return ok(c, post)
}

func (a *API) deleteBlogPost(c echo.Context) error {
	removed, err := a.store.DeleteBlogPost(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to delete blog post")
	}
	if !removed {
		return fail(c, http.StatusNotFound, "Blog post not found")
	}
	return ok(c, echo.Map{"success": true})
}
