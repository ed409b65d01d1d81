package controllers

import (
	"context"
	"net/http"
	"sort"

	"burgerpos/config"
	"burgerpos/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Stock levels.
const (
	StockEmpty = "empty"
	StockLow   = "low"
	StockOK    = "ok"
)

// ClassifyStockLevel buckets a quantity against its minimum. Empty means
// exactly zero; anything at or under twice the minimum counts as low.
func ClassifyStockLevel(quantity, minStock float64) string {
	if minStock <= 0 {
		minStock = 1
	}
	if quantity == 0 {
		return StockEmpty
	}
	if quantity > 2*minStock {
		return StockOK
	}
	return StockLow
}

// ReconciliationRow compares one product across the start and end counts.
type ReconciliationRow struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	StartQty     float64 `json:"startQty"`
	EndQty       float64 `json:"endQty"`
	Used         float64 `json:"used"`
	UsagePercent float64 `json:"usagePercent"`
	StockLevel   string  `json:"stockLevel"`
}

// BuildReconciliation joins a start and end snapshot over the union of
// product names. A product missing from one side counts as zero there.
// Usage percent is zero when there was nothing to start with.
func BuildReconciliation(start, end *models.WarehouseSnapshot) []ReconciliationRow {
	startByName := map[string]models.SnapshotEntry{}
	endByName := map[string]models.SnapshotEntry{}
	if start != nil {
		for _, entry := range start.Snapshot {
			startByName[entry.Name] = entry
		}
	}
	if end != nil {
		for _, entry := range end.Snapshot {
			endByName[entry.Name] = entry
		}
	}

	names := map[string]models.SnapshotEntry{}
	for name, entry := range startByName {
		names[name] = entry
	}
	for name, entry := range endByName {
		if _, seen := names[name]; !seen {
			names[name] = entry
		}
	}

	rows := make([]ReconciliationRow, 0, len(names))
	for name, meta := range names {
		startQty := startByName[name].Quantity
		endQty := endByName[name].Quantity

		used := startQty - endQty
		percent := 0.0
		if startQty > 0 {
			percent = used / startQty * 100
		}
		rows = append(rows, ReconciliationRow{
			Name:         name,
			Category:     meta.Category,
			Unit:         meta.Unit,
			StartQty:     startQty,
			EndQty:       endQty,
			Used:         used,
			UsagePercent: percent,
			StockLevel:   ClassifyStockLevel(endQty, meta.MinStock),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// latestSnapshot returns the newest snapshot of the given type for a day,
// or nil when none exists. When a day has duplicates the latest count wins.
func latestSnapshot(ctx context.Context, date, snapType string) (*models.WarehouseSnapshot, error) {
	opts := options.FindOne().SetSort(bson.M{"timestamp": -1})
	var snap models.WarehouseSnapshot
	err := config.SnapshotCollection.FindOne(ctx, bson.M{"sessionDay": date, "type": snapType}, opts).Decode(&snap)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}

// sortedEntries flattens a snapshot map into a name-ordered slice.
func sortedEntries(snapshot map[string]models.SnapshotEntry) []models.SnapshotEntry {
	entries := make([]models.SnapshotEntry, 0, len(snapshot))
	for _, entry := range snapshot {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// GetReconciliation compares the day's start and end counts.
func GetReconciliation(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	ctx := context.TODO()
	start, err := latestSnapshot(ctx, date, models.SnapshotStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve snapshots"})
		return
	}
	end, err := latestSnapshot(ctx, date, models.SnapshotEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve snapshots"})
		return
	}

	if start == nil && end == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No snapshots for " + date})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionDay": date,
		"hasStart":   start != nil,
		"hasEnd":     end != nil,
		"rows":       BuildReconciliation(start, end),
	})
}

// GetStockLevels classifies every live product for the dashboard.
func GetStockLevels(c *gin.Context) {
	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	cursor, err := config.WarehouseCollection.Find(context.TODO(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve warehouse"})
		return
	}
	defer cursor.Close(context.TODO())

	type levelRow struct {
		Name         string  `json:"name"`
		Category     string  `json:"category"`
		CurrentStock float64 `json:"currentStock"`
		MinStock     float64 `json:"minStock"`
		Unit         string  `json:"unit"`
		StockLevel   string  `json:"stockLevel"`
	}
	rows := []levelRow{}
	for cursor.Next(context.TODO()) {
		var product models.WarehouseProduct
		if err := cursor.Decode(&product); err != nil {
			continue
		}
		rows = append(rows, levelRow{
			Name:         product.Name,
			Category:     product.Category,
			CurrentStock: product.CurrentStock,
			MinStock:     product.MinStock,
			Unit:         product.Unit,
			StockLevel:   ClassifyStockLevel(product.CurrentStock, product.MinStock),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	c.JSON(http.StatusOK, rows)
}
