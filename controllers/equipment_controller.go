package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Gin_postgres_rental_backoffice/app"
	"Gin_postgres_rental_backoffice/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EquipmentController struct{ *Srv }

func NewEquipmentController(s *Srv) *EquipmentController { return &EquipmentController{Srv: s} }

// pathID parses the :id path segment. Writes the 400 response itself so
// handlers can just bail out.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (ec *EquipmentController) storeError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"result": "error", "message": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
}

type createEquipmentInput struct {
	Name        string `json:"name" binding:"required"`
	Count       int    `json:"count" binding:"min=0"`
	BrandID     uint   `json:"brandId"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// POST /api/equipment
func (ec *EquipmentController) Create(c *gin.Context) {
	var in createEquipmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": err.Error()})
		return
	}

	e := &models.Equipment{
		Name:        in.Name,
		Count:       in.Count,
		BrandID:     in.BrandID,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := ec.Repo.CreateEquipment(c.Request.Context(), e); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}

	// A fresh id has no rents or breakage reports, so remain is the full count.
	c.JSON(http.StatusOK, app.H{
		"result": "ok",
		"data":   models.AugmentedEquipment{Equipment: *e, Remain: e.Count},
	})
}

// GET /api/equipment/:id
func (ec *EquipmentController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	e, err := ec.Repo.FindEquipmentByID(c.Request.Context(), id)
	if err != nil {
		ec.storeError(c, err, "equipment not found")
		return
	}
	data, err := ec.Repo.CalculateFields(c.Request.Context(), *e)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"result": "ok", "data": data})
}

// GET /api/equipment?name=&limit=&offset=
func (ec *EquipmentController) List(c *gin.Context) {
	name := c.Query("name")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": "invalid limit"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": "invalid offset"})
		return
	}

	page, err := ec.Repo.SearchEquipment(c.Request.Context(), name, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}

	data := make([]models.AugmentedEquipment, 0, len(page.Items))
	for _, e := range page.Items {
		aug, err := ec.Repo.CalculateFields(c.Request.Context(), e)
		if err != nil {
			c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
			return
		}
		data = append(data, aug)
	}

	c.JSON(http.StatusOK, app.H{
		"result": "ok",
		"data":   data,
		"limit":  limit,
		"offset": offset,
		"total":  page.Total,
	})
}

type updateEquipmentInput struct {
	Name        *string `json:"name"`
	Count       *int    `json:"count" binding:"omitempty,min=0"`
	BrandID     *uint   `json:"brandId"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func (in updateEquipmentInput) fields() map[string]any {
	m := map[string]any{}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Count != nil {
		m["count"] = *in.Count
	}
	if in.BrandID != nil {
		m["brand_id"] = *in.BrandID
	}
	if in.Description != nil {
		m["description"] = *in.Description
	}
	if in.ImageURL != nil {
		m["image_url"] = *in.ImageURL
	}
	return m
}

// PUT /api/equipment/:id
func (ec *EquipmentController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in updateEquipmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"result": "error", "message": err.Error()})
		return
	}

	var e *models.Equipment
	var err error
	if fields := in.fields(); len(fields) == 0 {
		// Nothing to change, still return the augmented record.
		e, err = ec.Repo.FindEquipmentByID(c.Request.Context(), id)
	} else {
		e, err = ec.Repo.UpdateEquipment(c.Request.Context(), id, fields)
	}
	if err != nil {
		ec.storeError(c, err, "equipment not found")
		return
	}

	data, err := ec.Repo.CalculateFields(c.Request.Context(), *e)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"result": "ok", "data": data})
}

// DELETE /api/equipment/:id
//
// Returns the deleted snapshot as stored, without recalculated fields.
func (ec *EquipmentController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	e, err := ec.Repo.DeleteEquipment(c.Request.Context(), id)
	if err != nil {
		ec.storeError(c, err, "equipment not found")
		return
	}
	c.JSON(http.StatusOK, app.H{"result": "ok", "data": e})
}

// GET /api/equipment/names
func (ec *EquipmentController) Names(c *gin.Context) {
	names, err := ec.Repo.DistinctEquipmentNames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"result": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"result": "ok", "data": names})
}
