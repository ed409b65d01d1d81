package controllers

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"burgerpos/config"
	"burgerpos/data"
	"burgerpos/models"
	"burgerpos/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	CurrentStock float64 `json:"currentStock"`
	MinStock     float64 `json:"minStock"`
	Unit         string  `json:"unit" binding:"required"`
	Price        float64 `json:"price"`
	UpdatedBy    string  `json:"updatedBy"`
}

// GetWarehouse lists products that have not been soft-deleted.
func GetWarehouse(c *gin.Context) {
	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := config.WarehouseCollection.Find(context.TODO(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve warehouse"})
		return
	}
	defer cursor.Close(context.TODO())

	products := []models.WarehouseProduct{}
	if err = cursor.All(context.TODO(), &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode warehouse"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// AddProduct creates a product with an initial history entry. Duplicate
// names among live products are rejected.
func AddProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if input.CurrentStock < 0 || input.MinStock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock values must not be negative"})
		return
	}

	count, err := config.WarehouseCollection.CountDocuments(context.TODO(),
		bson.M{"name": input.Name, "isDeleted": bson.M{"$ne": true}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check product name"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Product with this name already exists"})
		return
	}

	minStock := input.MinStock
	if minStock == 0 {
		minStock = 1
	}
	now := time.Now()
	product := models.WarehouseProduct{
		Name:         input.Name,
		Category:     input.Category,
		CurrentStock: input.CurrentStock,
		MinStock:     minStock,
		Unit:         input.Unit,
		Price:        input.Price,
		IsAvailable:  input.CurrentStock > 0,
		History: []models.StockHistoryEntry{{
			Type:      models.HistoryInitial,
			Quantity:  input.CurrentStock,
			Timestamp: now,
			UpdatedBy: input.UpdatedBy,
		}},
		CreatedAt:   now,
		LastUpdated: now,
	}

	res, err := config.WarehouseCollection.InsertOne(context.TODO(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}
	product.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct changes stock or metadata. Every quantity change appends a
// history entry rather than overwriting the trail.
func UpdateProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if input.CurrentStock < 0 || input.MinStock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock values must not be negative"})
		return
	}

	var existing models.WarehouseProduct
	err = config.WarehouseCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	now := time.Now()
	set := bson.M{
		"name":         input.Name,
		"category":     input.Category,
		"currentStock": input.CurrentStock,
		"minStock":     input.MinStock,
		"unit":         input.Unit,
		"price":        input.Price,
		"isAvailable":  input.CurrentStock > 0,
		"lastUpdated":  now,
	}
	update := bson.M{"$set": set}
	if input.CurrentStock != existing.CurrentStock {
		update["$push"] = bson.M{"history": models.StockHistoryEntry{
			Type:      models.HistoryUpdate,
			Quantity:  input.CurrentStock,
			Timestamp: now,
			UpdatedBy: input.UpdatedBy,
		}}
	}

	if _, err := config.WarehouseCollection.UpdateOne(context.TODO(), bson.M{"_id": objID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

type adjustInput struct {
	Delta     float64 `json:"delta" binding:"required"`
	UpdatedBy string  `json:"updatedBy"`
}

// AdjustStock applies a quick +/- delta to a product's stock. The result
// is floored at zero.
func AdjustStock(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input adjustInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var product models.WarehouseProduct
	err = config.WarehouseCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	newStock := product.CurrentStock + input.Delta
	if newStock < 0 {
		newStock = 0
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"currentStock": newStock,
			"isAvailable":  newStock > 0,
			"lastUpdated":  now,
		},
		"$push": bson.M{"history": models.StockHistoryEntry{
			Type:      models.HistoryUpdate,
			Quantity:  newStock,
			Timestamp: now,
			UpdatedBy: input.UpdatedBy,
		}},
	}
	if _, err := config.WarehouseCollection.UpdateOne(context.TODO(), bson.M{"_id": objID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"currentStock": newStock})
}

// DeleteProduct soft-deletes. The document stays behind for history and
// past snapshots; listings filter it out.
func DeleteProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	update := bson.M{"$set": bson.M{"isDeleted": true, "deletedAt": time.Now()}}
	res, err := config.WarehouseCollection.UpdateOne(context.TODO(), bson.M{"_id": objID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// SeedWarehouse inserts the default product list, skipping names that
// already exist.
func SeedWarehouse(c *gin.Context) {
	inserted := 0
	now := time.Now()
	for _, seed := range data.WarehouseSeedProducts {
		count, err := config.WarehouseCollection.CountDocuments(context.TODO(),
			bson.M{"name": seed.Name, "isDeleted": bson.M{"$ne": true}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed warehouse"})
			return
		}
		if count > 0 {
			continue
		}
		product := models.WarehouseProduct{
			Name:        seed.Name,
			Category:    seed.Category,
			Unit:        seed.Unit,
			MinStock:    1,
			IsAvailable: false,
			History: []models.StockHistoryEntry{{
				Type:      models.HistoryInitial,
				Quantity:  0,
				Timestamp: now,
			}},
			CreatedAt:   now,
			LastUpdated: now,
		}
		if _, err := config.WarehouseCollection.InsertOne(context.TODO(), product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed warehouse"})
			return
		}
		inserted++
	}

	c.JSON(http.StatusOK, gin.H{"inserted": inserted})
}

type snapshotInput struct {
	SessionDay string                          `json:"sessionDay" binding:"required"`
	Type       string                          `json:"type" binding:"required"`
	Snapshot   map[string]models.SnapshotEntry `json:"snapshot" binding:"required"`
	UpdatedBy  string                          `json:"updatedBy"`
}

// SaveSnapshot persists a warehouse count and syncs product stock to the
// counted quantities. A start snapshot also opens the day session. The
// three writes are independent: a snapshot that lands without its stock
// sync is surfaced as an error but not rolled back.
func SaveSnapshot(c *gin.Context) {
	var input snapshotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !validDate(input.SessionDay) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sessionDay, expected YYYY-MM-DD"})
		return
	}
	if input.Type != models.SnapshotStart && input.Type != models.SnapshotEnd {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Snapshot type must be start or end"})
		return
	}
	if len(input.Snapshot) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Snapshot must not be empty"})
		return
	}
	for name, entry := range input.Snapshot {
		if entry.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Negative quantity for " + name})
			return
		}
	}

	ctx := context.TODO()
	doc := models.WarehouseSnapshot{
		SessionDay: input.SessionDay,
		Type:       input.Type,
		Snapshot:   input.Snapshot,
		Timestamp:  time.Now(),
	}
	if _, err := config.SnapshotCollection.InsertOne(ctx, doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save snapshot"})
		return
	}

	now := time.Now()
	for _, entry := range input.Snapshot {
		update := bson.M{
			"$set": bson.M{
				"currentStock": entry.Quantity,
				"isAvailable":  entry.Quantity > 0,
				"lastUpdated":  now,
			},
			"$push": bson.M{"history": models.StockHistoryEntry{
				Type:      models.HistoryUpdate,
				Quantity:  entry.Quantity,
				Timestamp: now,
				UpdatedBy: input.UpdatedBy,
			}},
		}
		filter := bson.M{"name": entry.Name, "isDeleted": bson.M{"$ne": true}}
		if _, err := config.WarehouseCollection.UpdateOne(ctx, filter, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Snapshot saved but stock sync failed for " + entry.Name})
			return
		}
	}

	if input.Type == models.SnapshotStart {
		if err := startDaySession(ctx, input.SessionDay); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Snapshot saved but day session was not started"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Snapshot saved"})
}

// GetSnapshots lists all snapshots recorded for a day.
func GetSnapshots(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	cursor, err := config.SnapshotCollection.Find(context.TODO(), bson.M{"sessionDay": date}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve snapshots"})
		return
	}
	defer cursor.Close(context.TODO())

	snapshots := []models.WarehouseSnapshot{}
	if err = cursor.All(context.TODO(), &snapshots); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode snapshots"})
		return
	}

	c.JSON(http.StatusOK, snapshots)
}

// GetPriorEndSnapshot returns the end snapshot of the previous day, for
// prefilling a new start count. A missing snapshot is the normal first-day
// case, reported as found=false rather than an error.
func GetPriorEndSnapshot(c *gin.Context) {
	date := c.Param("date")
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	prior := day.AddDate(0, 0, -1).Format(dateLayout)

	snap, err := latestSnapshot(context.TODO(), prior, models.SnapshotEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve snapshot"})
		return
	}
	if snap == nil {
		c.JSON(http.StatusOK, gin.H{"found": false, "sessionDay": prior})
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": true, "snapshot": snap})
}

// ExportSnapshotCSV streams one day's snapshots as CSV, one row per
// counted product.
func ExportSnapshotCSV(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	cursor, err := config.SnapshotCollection.Find(context.TODO(), bson.M{"sessionDay": date}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve snapshots"})
		return
	}
	defer cursor.Close(context.TODO())

	snapshots := []models.WarehouseSnapshot{}
	if err = cursor.All(context.TODO(), &snapshots); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode snapshots"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=warehouse-%s.csv", date))

	w := csv.NewWriter(c.Writer)
	defer w.Flush()
	w.Write([]string{"sessionDay", "type", "product", "category", "quantity", "unit"})
	for _, snap := range snapshots {
		for _, entry := range sortedEntries(snap.Snapshot) {
			w.Write([]string{
				snap.SessionDay,
				snap.Type,
				entry.Name,
				entry.Category,
				strconv.FormatFloat(entry.Quantity, 'f', -1, 64),
				entry.Unit,
			})
		}
	}
}

// ExportWarehouseCSV streams the current product list as CSV.
func ExportWarehouseCSV(c *gin.Context) {
	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := config.WarehouseCollection.Find(context.TODO(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve warehouse"})
		return
	}
	defer cursor.Close(context.TODO())

	products := []models.WarehouseProduct{}
	if err = cursor.All(context.TODO(), &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode warehouse"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=warehouse.csv")

	w := csv.NewWriter(c.Writer)
	defer w.Flush()
	w.Write([]string{"name", "category", "stock", "minStock", "price", "unit", "availability"})
	for _, product := range products {
		w.Write([]string{
			product.Name,
			product.Category,
			strconv.FormatFloat(product.CurrentStock, 'f', -1, 64),
			strconv.FormatFloat(product.MinStock, 'f', -1, 64),
			strconv.FormatFloat(product.Price, 'f', 2, 64),
			product.Unit,
			strconv.FormatBool(product.IsAvailable),
		})
	}
}

type lowStockInput struct {
	ProductID  string `json:"productId" binding:"required"`
	Comment    string `json:"comment"`
	ReportedBy string `json:"reportedBy" binding:"required"`
}

// ReportLowStock files a restock request for a product and mails the
// manager. The mail is best-effort.
func ReportLowStock(c *gin.Context) {
	var input lowStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	objID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.WarehouseProduct
	err = config.WarehouseCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	report := models.LowStockReport{
		ProductID:    input.ProductID,
		ProductName:  product.Name,
		CurrentStock: product.CurrentStock,
		MinStock:     product.MinStock,
		Comment:      input.Comment,
		ReportedBy:   input.ReportedBy,
		Status:       "open",
		Timestamp:    time.Now(),
	}
	if _, err := config.LowStockReportCollection.InsertOne(context.TODO(), report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	if to := os.Getenv("MANAGER_EMAIL"); to != "" {
		body := fmt.Sprintf("%s reported low stock for %s: %.2f %s on hand (minimum %.2f).\n\n%s",
			input.ReportedBy, product.Name, product.CurrentStock, product.Unit, product.MinStock, input.Comment)
		if err := utils.SendEmail(to, "Low stock: "+product.Name, body); err != nil {
			c.JSON(http.StatusCreated, gin.H{"message": "Report saved, email notification failed"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report saved"})
}

// GetLowStockReports lists restock requests, open ones first.
func GetLowStockReports(c *gin.Context) {
	opts := options.Find().SetSort(bson.D{{Key: "status", Value: 1}, {Key: "timestamp", Value: -1}})
	cursor, err := config.LowStockReportCollection.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reports"})
		return
	}
	defer cursor.Close(context.TODO())

	reports := []models.LowStockReport{}
	if err = cursor.All(context.TODO(), &reports); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// ResolveLowStockReport closes a restock request.
func ResolveLowStockReport(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	res, err := config.LowStockReportCollection.UpdateOne(context.TODO(),
		bson.M{"_id": objID}, bson.M{"$set": bson.M{"status": "resolved"}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report resolved"})
}
