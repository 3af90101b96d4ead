package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/snonux/simpletalk/internal"
)

// RootMessage is returned by GET /.
const RootMessage = "SimpleTalk API 서버가 작동 중입니다."

// textForm is the body of the form endpoints.
type textForm struct {
	Text string `form:"text" binding:"required"`
}

// textInput is the JSON body of /translate-to-easy-korean. An empty string
// is a valid input, only a missing field is rejected.
type textInput struct {
	Text *string `json:"text" binding:"required"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": internal.Version})
}

func (s *Server) handleRomanize(c *gin.Context) {
	var form textForm
	if err := c.ShouldBind(&form); err != nil {
		s.unprocessable(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"input":     form.Text,
		"romanized": s.pipeline.Romanize(form.Text),
	})
}

func (s *Server) handleSpeak(c *gin.Context) {
	var form textForm
	if err := c.ShouldBind(&form); err != nil {
		s.unprocessable(c, err)
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	filename, err := s.speaker.Speak(ctx, form.Text)
	if err != nil {
		s.failed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tts_url": s.cfg.BaseURL + "/tts/" + filename})
}

func (s *Server) handleEasyKorean(c *gin.Context) {
	var input textInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.unprocessable(c, err)
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	result, err := s.pipeline.EasyKorean(ctx, *input.Text)
	if err != nil {
		s.failed(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.cfg.RequestTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
	}
	return context.WithCancel(c.Request.Context())
}

func (s *Server) unprocessable(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"detail": fmt.Sprintf("요청 형식이 올바르지 않습니다: %v", err),
	})
}

func (s *Server) failed(c *gin.Context, err error) {
	s.log.ErrorContext(c.Request.Context(), "request failed",
		"path", c.Request.URL.Path,
		"request_id", c.GetString(requestIDKey),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": fmt.Sprintf("API 처리 중 에러가 발생했습니다: %v", err),
	})
}
