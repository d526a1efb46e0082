package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/social-media-api/internal/models"
)

type PostHandlerTestSuite struct {
	HandlerTestSuite
}

func (suite *PostHandlerTestSuite) TestCreatePost_Success() {
	alice := suite.createUser("alice@example.com", "alice")

	w, env := suite.request(http.MethodPost, "/posts", gin.H{
		"content": "hi",
		"userId":  alice.ID,
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(env.Success)

	var post models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &post))
	suite.Equal("hi", post.Content)
	suite.Equal(alice.ID, post.UserID)
}

func (suite *PostHandlerTestSuite) TestCreatePost_MissingContent() {
	alice := suite.createUser("alice@example.com", "alice")

	w, env := suite.request(http.MethodPost, "/posts", gin.H{
		"userId": alice.ID,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("content is required", env.Message)
}

func (suite *PostHandlerTestSuite) TestCreatePost_MissingUserID() {
	w, _ := suite.request(http.MethodPost, "/posts", gin.H{
		"content": "hi",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PostHandlerTestSuite) TestCreatePost_UnknownUser() {
	w, env := suite.request(http.MethodPost, "/posts", gin.H{
		"content": "hi",
		"userId":  999,
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("User not found", env.Message)
}

func (suite *PostHandlerTestSuite) TestCreatePost_DeletedUser() {
	alice := suite.createUser("alice@example.com", "alice")
	w, _ := suite.request(http.MethodDelete, userPath(alice.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w, _ = suite.request(http.MethodPost, "/posts", gin.H{
		"content": "hi",
		"userId":  alice.ID,
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestListPosts_NewestFirst() {
	alice := suite.createUser("alice@example.com", "alice")
	first := suite.createPost("first", alice.ID)
	second := suite.createPost("second", alice.ID)
	third := suite.createPost("third", alice.ID)

	w, env := suite.request(http.MethodGet, "/posts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var posts []models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &posts))
	suite.Require().Len(posts, 3)
	suite.Equal(third.ID, posts[0].ID)
	suite.Equal(second.ID, posts[1].ID)
	suite.Equal(first.ID, posts[2].ID)
}

func (suite *PostHandlerTestSuite) TestListPosts_VisibilityFilters() {
	alice := suite.createUser("alice@example.com", "alice")
	kept := suite.createPost("kept", alice.ID)
	removed := suite.createPost("removed", alice.ID)

	w, _ := suite.request(http.MethodDelete, postPath(removed.ID), gin.H{"userId": alice.ID})
	suite.Require().Equal(http.StatusOK, w.Code)

	w, env := suite.request(http.MethodGet, "/posts", nil)
	suite.Equal(http.StatusOK, w.Code)
	var active []models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &active))
	suite.Require().Len(active, 1)
	suite.Equal(kept.ID, active[0].ID)

	w, env = suite.request(http.MethodGet, "/posts?includeDeleted", nil)
	suite.Equal(http.StatusOK, w.Code)
	var all []models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &all))
	suite.Len(all, 2)

	w, env = suite.request(http.MethodGet, "/posts?onlyDeleted", nil)
	suite.Equal(http.StatusOK, w.Code)
	var deleted []models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &deleted))
	suite.Require().Len(deleted, 1)
	suite.Equal(removed.ID, deleted[0].ID)
}

func (suite *PostHandlerTestSuite) TestGetPost_NotFound() {
	w, env := suite.request(http.MethodGet, "/posts/999", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Post not found", env.Message)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_Success() {
	alice := suite.createUser("alice@example.com", "alice")
	post := suite.createPost("before", alice.ID)

	w, env := suite.request(http.MethodPut, postPath(post.ID), gin.H{
		"content": "after",
		"userId":  alice.ID,
	})

	suite.Equal(http.StatusOK, w.Code)
	var updated models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &updated))
	suite.Equal("after", updated.Content)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_NonOwnerForbidden() {
	alice := suite.createUser("alice@example.com", "alice")
	bob := suite.createUser("bob@example.com", "bob")
	post := suite.createPost("original", alice.ID)

	w, env := suite.request(http.MethodPut, postPath(post.ID), gin.H{
		"content": "hijacked",
		"userId":  bob.ID,
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.False(env.Success)

	// Content must be unchanged
	w, env = suite.request(http.MethodGet, postPath(post.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var unchanged models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &unchanged))
	suite.Equal("original", unchanged.Content)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_NotFoundBeforeOwnership() {
	w, env := suite.request(http.MethodPut, "/posts/999", gin.H{
		"content": "anything",
		"userId":  1,
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Post not found", env.Message)
}

func (suite *PostHandlerTestSuite) TestDeletePost_Success() {
	alice := suite.createUser("alice@example.com", "alice")
	post := suite.createPost("ephemeral", alice.ID)

	w, env := suite.request(http.MethodDelete, postPath(post.ID), gin.H{"userId": alice.ID})

	suite.Equal(http.StatusOK, w.Code)
	var deleted models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &deleted))
	suite.True(deleted.DeletedAt.Valid)

	w, _ = suite.request(http.MethodGet, postPath(post.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestDeletePost_NonOwnerForbidden() {
	alice := suite.createUser("alice@example.com", "alice")
	bob := suite.createUser("bob@example.com", "bob")
	post := suite.createPost("mine", alice.ID)

	w, _ := suite.request(http.MethodDelete, postPath(post.ID), gin.H{"userId": bob.ID})

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestPostHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
