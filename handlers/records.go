package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	recordsRepo "facilityai/database/repository/records"
	slotRepo "facilityai/database/repository/slot"
	"facilityai/models"
)

// RecordsHandler serves slot creation and the generic record endpoints for
// the contract entities.
type RecordsHandler struct {
	Slots   slotRepo.ScheduleSlotRepository
	Records recordsRepo.RecordRepository
	Logger  *zap.Logger
}

func NewRecordsHandler(slots slotRepo.ScheduleSlotRepository, records recordsRepo.RecordRepository, logger *zap.Logger) *RecordsHandler {
	return &RecordsHandler{Slots: slots, Records: records, Logger: logger}
}

// CreateSlot handles POST /api/slots.
func (h *RecordsHandler) CreateSlot(c *gin.Context) {
	var req models.SlotCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	id, err := h.Slots.Create(c.Request.Context(), req.Slot())
	if err != nil {
		h.Logger.Error("CreateSlot: insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create slot",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": "created"})
}

// CreateRecord handles POST /api/records/:collection for the contract
// entities. Each collection binds against its own schema so field constraints
// hold at the boundary.
func (h *RecordsHandler) CreateRecord(c *gin.Context) {
	collection := c.Param("collection")
	doc, err := bindRecord(c, collection)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   fmt.Sprintf("invalid %s record", collection),
			"message": err.Error(),
		})
		return
	}
	if doc == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection", "message": collection})
		return
	}

	id, err := h.Records.Insert(c.Request.Context(), collection, doc)
	if err != nil {
		h.Logger.Error("CreateRecord: insert failed", zap.String("collection", collection), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create record",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": "created"})
}

// GetRecord handles GET /api/records/:collection/:id.
func (h *RecordsHandler) GetRecord(c *gin.Context) {
	collection := c.Param("collection")
	if !readableCollections[collection] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection", "message": collection})
		return
	}

	doc, err := h.Records.GetByID(c.Request.Context(), collection, c.Param("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "failed to fetch record",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, doc)
}

var readableCollections = map[string]bool{
	"organization": true,
	"service":      true,
	"staff":        true,
	"customer":     true,
	"scheduleslot": true,
	"booking":      true,
	"paymentlink":  true,
	"transcript":   true,
	"message":      true,
}

// bindRecord binds and defaults the schema for a writable collection.
// Returns (nil, nil) for collections without a generic write surface.
func bindRecord(c *gin.Context, collection string) (interface{}, error) {
	switch collection {
	case "organization":
		var doc models.Organization
		if err := c.ShouldBindJSON(&doc); err != nil {
			return nil, err
		}
		doc.ApplyDefaults()
		return doc, nil
	case "service":
		var doc models.Service
		if err := c.ShouldBindJSON(&doc); err != nil {
			return nil, err
		}
		doc.ApplyDefaults()
		return doc, nil
	case "staff":
		var doc models.Staff
		if err := c.ShouldBindJSON(&doc); err != nil {
			return nil, err
		}
		doc.ApplyDefaults()
		return doc, nil
	case "customer":
		var doc models.Customer
		if err := c.ShouldBindJSON(&doc); err != nil {
			return nil, err
		}
		return doc, nil
	case "transcript":
		var doc models.Transcript
		if err := c.ShouldBindJSON(&doc); err != nil {
			return nil, err
		}
		doc.ApplyDefaults()
		return doc, nil
	case "message":
		var doc models.Message
		if err := c.ShouldBindJSON(&doc); err != nil {
			return nil, err
		}
		doc.ApplyDefaults()
		return doc, nil
	}
	return nil, nil
}
