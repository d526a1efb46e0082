package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/social-media-api/internal/config"
	"github.com/yukikurage/social-media-api/internal/database"
	"github.com/yukikurage/social-media-api/internal/models"
	"github.com/yukikurage/social-media-api/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// apiEnvelope mirrors the response wrapper for assertions
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// HandlerTestSuite boots the full router against an in-memory database
type HandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *HandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	gin.SetMode(gin.TestMode)
	suite.router = router.Setup(&config.Config{GinMode: gin.TestMode}, suite.db)
}

// TearDownTest runs after each test
func (suite *HandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// request performs an HTTP request against the router and decodes the envelope
func (suite *HandlerTestSuite) request(method, path string, body any) (*httptest.ResponseRecorder, apiEnvelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env apiEnvelope
	if w.Body.Len() > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// Helper functions to create test data through the API

func (suite *HandlerTestSuite) createUser(email, username string) models.User {
	w, env := suite.request(http.MethodPost, "/users", gin.H{
		"email":    email,
		"username": username,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var user models.User
	suite.Require().NoError(json.Unmarshal(env.Data, &user))
	return user
}

func (suite *HandlerTestSuite) createPost(content string, userID uint64) models.Post {
	w, env := suite.request(http.MethodPost, "/posts", gin.H{
		"content": content,
		"userId":  userID,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var post models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &post))
	return post
}

func userPath(id uint64) string {
	return "/users/" + strconv.FormatUint(id, 10)
}

func postPath(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10)
}

func commentPath(postID, id uint64) string {
	return postPath(postID) + "/comments/" + strconv.FormatUint(id, 10)
}

func (suite *HandlerTestSuite) createComment(postID uint64, content string, userID uint64) models.Comment {
	w, env := suite.request(http.MethodPost, postPath(postID)+"/comments", gin.H{
		"content": content,
		"userId":  userID,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var comment models.Comment
	suite.Require().NoError(json.Unmarshal(env.Data, &comment))
	return comment
}
