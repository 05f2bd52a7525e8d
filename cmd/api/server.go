package main

import (
	"errors"
	"net/http"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/alok944/event-horizon-college-hub/intake"
	"github.com/alok944/event-horizon-college-hub/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	session *session.Session
	logger  *zap.Logger
}

func NewServer(s *session.Session, logger *zap.Logger) *Server {
	return &Server{
		session: s,
		logger:  logger,
	}
}

func (s *Server) Routes(r *gin.Engine) {
	r.GET("/events", s.listEvents)
	r.GET("/events/:eventId", s.findEvent)
	r.POST("/events", s.createEvent)

	r.PUT("/filters/:field", s.setFilter)
	r.DELETE("/filters", s.resetFilters)
	r.PUT("/sort", s.setSortKey)
	r.PUT("/tab", s.setActiveTab)
	r.PUT("/view", s.setViewMode)

	r.GET("/selection", s.getSelection)
	r.PUT("/selection/:eventId", s.selectEvent)
	r.DELETE("/selection", s.dismissSelection)

	r.GET("/colleges", s.listColleges)
}

type ValueInput struct {
	Value string `json:"value"`
}

func (s *Server) listEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.session.View()})
}

func (s *Server) findEvent(c *gin.Context) {
	event, err := s.session.FindByID(c.Param("eventId"))
	if err != nil {
		s.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"event": event,
	}})
}

func (s *Server) createEvent(c *gin.Context) {
	var draft intake.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := s.session.Submit(draft)
	if err != nil {
		s.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"event": event,
	}})
}

func (s *Server) setFilter(c *gin.Context) {
	var input ValueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.session.SetFilter(c.Param("field"), input.Value); err != nil {
		s.ErrorResponse(c, err)
		return
	}

	s.listEvents(c)
}

func (s *Server) resetFilters(c *gin.Context) {
	s.session.ResetFilters()
	s.listEvents(c)
}

func (s *Server) setSortKey(c *gin.Context) {
	s.setValue(c, func(value string) error {
		return s.session.SetSortKey(horizon.SortKey(value))
	})
}

func (s *Server) setActiveTab(c *gin.Context) {
	s.setValue(c, func(value string) error {
		return s.session.SetActiveTab(horizon.EventType(value))
	})
}

func (s *Server) setViewMode(c *gin.Context) {
	s.setValue(c, func(value string) error {
		return s.session.SetViewMode(horizon.ViewMode(value))
	})
}

func (s *Server) setValue(c *gin.Context, set func(value string) error) {
	var input ValueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := set(input.Value); err != nil {
		s.ErrorResponse(c, err)
		return
	}

	s.listEvents(c)
}

func (s *Server) getSelection(c *gin.Context) {
	event, open := s.session.Selection().Event()
	if !open {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"open": false}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"open":  true,
		"event": event,
	}})
}

func (s *Server) selectEvent(c *gin.Context) {
	event, err := s.session.SelectByID(c.Param("eventId"))
	if err != nil {
		s.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"open":  true,
		"event": event,
	}})
}

func (s *Server) dismissSelection(c *gin.Context) {
	s.session.Dismiss()
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"open": false}})
}

func (s *Server) listColleges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"colleges": s.session.Colleges(),
	}})
}

// ErrorResponse maps domain errors to a status code and logs the rest.
func (s *Server) ErrorResponse(c *gin.Context, err error) {
	var validationErr *horizon.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  validationErr.Error(),
			"fields": validationErr.Fields,
		})
	case errors.Is(err, horizon.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, horizon.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.logger.Error("error response", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
