package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Gin_postgres_rental_backoffice/app"
	"Gin_postgres_rental_backoffice/db"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RentController writes the rent and broken tables the availability
// calculation reads from.
type RentController struct{ *Srv }

func NewRentController(s *Srv) *RentController { return &RentController{Srv: s} }

func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"result": "error", "message": "Unauthorized."})
		return 0, false
	}
	uid, _ := v.(uint)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, app.H{"result": "error", "message": "Unauthorized."})
		return 0, false
	}
	return uid, true
}

type createRentInput struct {
	EquipmentID uint   `json:"equipmentId" binding:"required"`
	Count       int    `json:"count" binding:"required,min=1"`
	Note        string `json:"note"`
}

// POST /api/rents
func (rc *RentController) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var in createRentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": err.Error()})
		return
	}

	rent, err := rc.Repo.CreateRent(c.Request.Context(), uid, in.EquipmentID, in.Count, in.Note)
	if err != nil {
		if errors.Is(err, db.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, app.H{"result": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app.H{"result": "ok", "data": rent})
}

type rentStatusInput struct {
	Status string `json:"status" binding:"required,oneof=approved rejected pending"`
}

// POST /api/rents/:id/status
func (rc *RentController) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in rentStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": err.Error()})
		return
	}

	rent, err := rc.Repo.SetRentStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"result": "error", "message": "rent not found"})
			return
		}
		if errors.Is(err, db.ErrRentClosed) {
			c.JSON(http.StatusConflict, app.H{"result": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"result": "ok", "data": rent})
}

// POST /api/rents/:id/return
func (rc *RentController) Return(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rent, err := rc.Repo.ReturnRent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"result": "error", "message": "rent not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"result": "ok", "data": rent})
}

// GET /api/rents?equipmentId=&status=
func (rc *RentController) List(c *gin.Context) {
	var equipmentID uint
	if v := c.Query("equipmentId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": "invalid equipmentId"})
			return
		}
		equipmentID = uint(id)
	}

	rents, err := rc.Repo.ListRents(c.Request.Context(), equipmentID, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"result": "ok", "data": rents})
}

type createBrokenInput struct {
	EquipmentID uint   `json:"equipmentId" binding:"required"`
	Count       int    `json:"count" binding:"required,min=1"`
	Note        string `json:"note"`
}

// POST /api/brokens
func (rc *RentController) Report(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var in createBrokenInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": err.Error()})
		return
	}

	report, err := rc.Repo.CreateBroken(c.Request.Context(), uid, in.EquipmentID, in.Count, in.Note)
	if err != nil {
		if errors.Is(err, db.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, app.H{"result": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app.H{"result": "ok", "data": report})
}

// POST /api/brokens/:id/resolve
func (rc *RentController) Resolve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	report, err := rc.Repo.ResolveBroken(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"result": "error", "message": "report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"result": "ok", "data": report})
}
