package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/mdm/internal/core/model"
)

func (s *Server) Cleanse(c *gin.Context) {
	var req model.CleansingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	result, err := s.MDM.Cleanse(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) CheckDuplicates(c *gin.Context) {
	var req model.DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	result, err := s.MDM.DetectDuplicates(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"customers": s.MDM.Registry.ListCustomers()})
}

func (s *Server) GetCustomer(c *gin.Context) {
	customer, err := s.MDM.Registry.GetCustomer(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) AddCustomer(c *gin.Context) {
	var in model.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, err)
		return
	}
	customer, err := s.MDM.Registry.AddCustomer(in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var in model.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, err)
		return
	}
	customer, err := s.MDM.Registry.UpdateCustomer(c.Param("id"), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": s.MDM.Registry.ListUsers(c.Query("customerId"))})
}

func (s *Server) GetUser(c *gin.Context) {
	user, err := s.MDM.Registry.GetUser(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) AddUser(c *gin.Context) {
	var in model.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, err)
		return
	}
	user, err := s.MDM.Registry.AddUser(in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) UpdateUser(c *gin.Context) {
	var in model.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, err)
		return
	}
	user, err := s.MDM.Registry.UpdateUser(c.Param("id"), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) DeleteUser(c *gin.Context) {
	if err := s.MDM.Registry.DeleteUser(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
