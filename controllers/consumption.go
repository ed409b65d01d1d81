package controllers

import (
	"context"
	"net/http"
	"time"

	"burgerpos/config"
	"burgerpos/data"
	"burgerpos/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type consumptionInput struct {
	EmployeeName string `json:"employeeName" binding:"required"`
	ProductName  string `json:"productName" binding:"required"`
	Quantity     int    `json:"quantity"`
	SessionDay   string `json:"sessionDay" binding:"required"`
}

// LogConsumption records a staff meal. Quantity defaults to one; the
// category comes from the catalog so reports can group by it.
func LogConsumption(c *gin.Context) {
	var input consumptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !validDate(input.SessionDay) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sessionDay, expected YYYY-MM-DD"})
		return
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must not be negative"})
		return
	}
	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}

	entry := models.EmployeeConsumption{
		EmployeeName: input.EmployeeName,
		ProductName:  input.ProductName,
		Quantity:     qty,
		Category:     data.ItemCategory(input.ProductName),
		SessionDay:   input.SessionDay,
		Timestamp:    time.Now(),
	}
	res, err := config.ConsumptionCollection.InsertOne(context.TODO(), entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log consumption"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": res.InsertedID, "entry": entry})
}

// GetConsumption lists staff meals for a day.
func GetConsumption(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	cursor, err := config.ConsumptionCollection.Find(context.TODO(), bson.M{"sessionDay": date}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve consumption"})
		return
	}
	defer cursor.Close(context.TODO())

	entries := []models.EmployeeConsumption{}
	if err = cursor.All(context.TODO(), &entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode consumption"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// DeleteConsumption removes a mis-entered staff meal.
func DeleteConsumption(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	res, err := config.ConsumptionCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
